package recording

import (
	"errors"
	"fmt"

	"github.com/gogpu/canvas2d"
)

// ErrUnknownCommand is returned by Apply for command types it cannot run.
var ErrUnknownCommand = errors.New("recording: unknown command")

// ReplayPolicy decides what happens to commands once they have replayed.
type ReplayPolicy int

const (
	// ReplayAll keeps every command and resets the context before each
	// pass.
	ReplayAll ReplayPolicy = iota

	// DrainOnce drops commands after they replay and keeps context state
	// between passes.
	DrainOnce
)

func (p ReplayPolicy) String() string {
	switch p {
	case ReplayAll:
		return "replay-all"
	case DrainOnce:
		return "drain-once"
	}
	return fmt.Sprintf("ReplayPolicy(%d)", int(p))
}

// Entry is a queued command and the revision it was issued at.
type Entry struct {
	Revision uint64
	Command  Command
}

// Queue holds drawing commands in issue order. Every appended command
// gets the next revision number.
//
// Queue is not safe for concurrent use; surface.Surface wraps it with a
// mutex.
type Queue struct {
	policy   ReplayPolicy
	entries  []Entry
	revision uint64
}

// NewQueue creates an empty queue with the given policy.
func NewQueue(policy ReplayPolicy) *Queue {
	return &Queue{policy: policy, entries: make([]Entry, 0, 64)}
}

// Policy returns the queue's replay policy.
func (q *Queue) Policy() ReplayPolicy { return q.policy }

// Append adds commands in order and returns the revision of the last one.
// Nil commands are skipped.
func (q *Queue) Append(cmds ...Command) uint64 {
	for _, cmd := range cmds {
		if cmd == nil {
			continue
		}
		q.revision++
		q.entries = append(q.entries, Entry{Revision: q.revision, Command: cmd})
	}
	return q.revision
}

// Revision returns the revision of the most recently appended command.
func (q *Queue) Revision() uint64 { return q.revision }

// Len returns the number of queued commands.
func (q *Queue) Len() int { return len(q.entries) }

// Snapshot returns a copy of the queued entries.
func (q *Queue) Snapshot() []Entry {
	return append([]Entry(nil), q.entries...)
}

// DropThrough removes every entry with a revision at or below rev.
func (q *Queue) DropThrough(rev uint64) {
	i := 0
	for i < len(q.entries) && q.entries[i].Revision <= rev {
		i++
	}
	q.entries = append(q.entries[:0], q.entries[i:]...)
}

// Clear removes every entry. Revisions keep counting.
func (q *Queue) Clear() {
	q.entries = q.entries[:0]
}

// Replay runs the queued commands against ctx according to the policy.
func (q *Queue) Replay(ctx *canvas2d.Context) error {
	last, err := ReplayEntries(ctx, q.Snapshot(), q.policy)
	if q.policy == DrainOnce {
		q.DropThrough(last)
	}
	return err
}

// ReplayEntries runs entries in order against ctx, resetting ctx first
// under ReplayAll. It stops at the first failing command and returns the
// revision of the last command it ran, failed or not, with the error
// wrapped with that command's name and revision.
func ReplayEntries(ctx *canvas2d.Context, entries []Entry, policy ReplayPolicy) (uint64, error) {
	if policy == ReplayAll {
		ctx.Reset()
	}
	canvas2d.Logger().Debug("recording: replay", "commands", len(entries), "policy", policy.String())

	var last uint64
	for _, e := range entries {
		last = e.Revision
		if err := Apply(ctx, e.Command); err != nil {
			return last, fmt.Errorf("recording: %s at revision %d: %w", e.Command.Type(), e.Revision, err)
		}
	}
	return last, nil
}
