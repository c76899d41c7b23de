package canvas2d

import "testing"

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"#ff0", "#ffff00"},
		{"#0000ff", "#0000ff"},
		{"#F000FF", "#f000ff"},
		{"#ff000080", "rgba(255, 0, 0, 0.502)"},
		{"#f008", "rgba(255, 0, 0, 0.533)"},
		{"blue", "#0000ff"},
		{"Green", "#008000"},
		{"red", "#ff0000"},
		{"rgb(10, 20, 30)", "#0a141e"},
		{"rgba(255,0,0,0.5)", "rgba(255, 0, 0, 0.5)"},
		{"rgb(100% 0% 0%)", "#ff0000"},
		{"rgba(0 0 0 / 25%)", "rgba(0, 0, 0, 0.25)"},
		{"transparent", "rgba(0, 0, 0, 0)"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			c, err := ParseColor(tt.in)
			if err != nil {
				t.Fatalf("ParseColor(%q) error: %v", tt.in, err)
			}
			if got := c.String(); got != tt.want {
				t.Errorf("ParseColor(%q) = %s, want %s", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseColorInvalid(t *testing.T) {
	for _, in := range []string{"", "#12", "#ggg", "notacolor", "rgb(1,2)", "rgb(1,2,3", "rgb(a,b,c)"} {
		if _, err := ParseColor(in); err == nil {
			t.Errorf("ParseColor(%q) should fail", in)
		}
	}
}

func TestHex(t *testing.T) {
	if got := Hex("#ff0000"); got != RGB(1, 0, 0) {
		t.Errorf("Hex(#ff0000) = %v", got)
	}
	if got := Hex("zz"); got != Black {
		t.Errorf("Hex(zz) = %v, want black", got)
	}
}

func TestFromColorRoundTrip(t *testing.T) {
	c := RGBA{R: 1, G: 0.5, B: 0, A: 1}
	got := FromColor(c.Color())
	if got.String() != c.String() {
		t.Errorf("round trip = %s, want %s", got, c)
	}
}
