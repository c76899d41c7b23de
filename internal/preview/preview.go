// Package preview serves the most recently rendered frame over HTTP and
// tells connected browsers when a new one is available.
//
// Routes:
//
//	GET /           viewer page
//	GET /frame.png  latest frame
//	GET /ws         websocket; one {"revision":N} text message per frame
//	GET /health     liveness
package preview

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/coder/websocket"
	"github.com/gorilla/mux"

	"github.com/gogpu/canvas2d"
)

const (
	writeWait  = 10 * time.Second
	pingPeriod = 30 * time.Second
)

// Server holds the latest frame and its subscribers.
//
// Server is safe for concurrent use.
type Server struct {
	mu       sync.Mutex
	frame    []byte
	revision uint64
	subs     map[chan uint64]struct{}
}

// New creates a server with no frame.
func New() *Server {
	return &Server{subs: make(map[chan uint64]struct{})}
}

// Publish replaces the current frame with png and notifies subscribers.
func (s *Server) Publish(png []byte) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.frame = png
	s.revision++
	for ch := range s.subs {
		// Subscribers only need the newest revision.
		select {
		case <-ch:
		default:
		}
		ch <- s.revision
	}
	return s.revision
}

// Frame returns the current frame and its revision. The revision is 0
// before the first Publish.
func (s *Server) Frame() ([]byte, uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.frame, s.revision
}

// Subscribers returns the number of connected websocket clients.
func (s *Server) Subscribers() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.subs)
}

func (s *Server) subscribe() chan uint64 {
	ch := make(chan uint64, 1)
	s.mu.Lock()
	s.subs[ch] = struct{}{}
	s.mu.Unlock()
	return ch
}

func (s *Server) unsubscribe(ch chan uint64) {
	s.mu.Lock()
	delete(s.subs, ch)
	s.mu.Unlock()
}

// Handler returns the HTTP routes.
func (s *Server) Handler() http.Handler {
	r := mux.NewRouter()
	r.HandleFunc("/", s.handleIndex).Methods("GET")
	r.HandleFunc("/frame.png", s.handleFrame).Methods("GET")
	r.HandleFunc("/ws", s.handleWebSocket)
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")
	return r
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(indexHTML))
}

func (s *Server) handleFrame(w http.ResponseWriter, r *http.Request) {
	frame, rev := s.Frame()
	if rev == 0 {
		http.Error(w, "no frame rendered yet", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("X-Frame-Revision", strconv.FormatUint(rev, 10))
	w.Write(frame)
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, nil)
	if err != nil {
		canvas2d.Logger().Debug("preview: websocket accept", "err", err)
		return
	}
	defer conn.Close(websocket.StatusNormalClosure, "")

	ch := s.subscribe()
	defer s.unsubscribe(ch)

	// Clients never send; CloseRead handles control frames and ends ctx
	// when the peer goes away.
	ctx := conn.CloseRead(r.Context())

	if _, rev := s.Frame(); rev > 0 {
		if err := notify(ctx, conn, rev); err != nil {
			return
		}
	}

	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()
	for {
		select {
		case rev := <-ch:
			if err := notify(ctx, conn, rev); err != nil {
				canvas2d.Logger().Debug("preview: websocket write", "err", err)
				return
			}
		case <-ticker.C:
			pingCtx, cancel := context.WithTimeout(ctx, writeWait)
			err := conn.Ping(pingCtx)
			cancel()
			if err != nil {
				return
			}
		case <-ctx.Done():
			return
		}
	}
}

// FrameMessage is sent to websocket clients for each new frame.
type FrameMessage struct {
	Revision uint64 `json:"revision"`
}

func notify(ctx context.Context, conn *websocket.Conn, rev uint64) error {
	msg, err := json.Marshal(FrameMessage{Revision: rev})
	if err != nil {
		return err
	}
	writeCtx, cancel := context.WithTimeout(ctx, writeWait)
	defer cancel()
	return conn.Write(writeCtx, websocket.MessageText, msg)
}
