package fonts

import (
	"testing"

	"golang.org/x/image/font"
)

func TestFont(t *testing.T) {
	for _, w := range []Weight{Regular, Bold} {
		f, err := Font(w)
		if err != nil {
			t.Fatalf("Font(%d): %v", w, err)
		}
		if f == nil {
			t.Fatalf("Font(%d) returned nil", w)
		}
	}
}

func TestFaceScalesWithDPI(t *testing.T) {
	small, err := NewFace(Regular, 10, 72)
	if err != nil {
		t.Fatal(err)
	}
	large, err := NewFace(Regular, 10, 300)
	if err != nil {
		t.Fatal(err)
	}
	ws := font.MeasureString(small, "Sample_1")
	wl := font.MeasureString(large, "Sample_1")
	if wl <= ws*3 {
		t.Errorf("300dpi width %v not ~4x 72dpi width %v", wl, ws)
	}
}

func TestFaceCached(t *testing.T) {
	a, err := Face(Bold, 12, 96)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Face(Bold, 12, 96)
	if err != nil {
		t.Fatal(err)
	}
	if a != b {
		t.Error("Face did not return the cached face")
	}
}
