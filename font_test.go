package canvas2d

import (
	"reflect"
	"testing"
)

func TestParseFont(t *testing.T) {
	tests := []struct {
		in   string
		want Font
	}{
		{"30px Arial", Font{Weight: 400, Size: 30, Family: "Arial"}},
		{"10px sans-serif", DefaultFont},
		{"bold 12px serif", Font{Weight: 700, Size: 12, Family: "serif"}},
		{"italic 600 12pt/1.5 'Go Mono', monospace", Font{Style: FontStyleItalic, Weight: 600, Size: 16, Family: "Go Mono, monospace"}},
		{"2em \"Times New Roman\"", Font{Weight: 400, Size: 32, Family: "Times New Roman"}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFont(tt.in)
			if err != nil {
				t.Fatalf("ParseFont(%q) error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseFont(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseFontInvalid(t *testing.T) {
	for _, in := range []string{"", "Arial", "30px", "-3px Arial", "big Arial"} {
		if _, err := ParseFont(in); err == nil {
			t.Errorf("ParseFont(%q) should fail", in)
		}
	}
}

func TestFontStringRoundTrip(t *testing.T) {
	f := Font{Style: FontStyleItalic, Weight: FontWeightBold, Size: 30, Family: "Arial, sans-serif"}
	if got := f.String(); got != "italic bold 30px Arial, sans-serif" {
		t.Errorf("String() = %q", got)
	}
	back, err := ParseFont(f.String())
	if err != nil || back != f {
		t.Errorf("round trip = %+v, %v", back, err)
	}
}

func TestFontFamilies(t *testing.T) {
	f := Font{Family: "Go Mono, monospace"}
	if got := f.Families(); !reflect.DeepEqual(got, []string{"Go Mono", "monospace"}) {
		t.Errorf("Families() = %v", got)
	}
}
