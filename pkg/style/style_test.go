package style

import (
	"fmt"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/facetplot/pkg/errors"
)

func samples(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("Sample_%d", i+1)
	}
	return out
}

func TestBuildDefaultAssignment(t *testing.T) {
	a := DefaultAssignment()
	m, err := Build(samples(8), a)
	require.NoError(t, err)
	require.Equal(t, 8, m.Len())

	assert.Equal(t, a.Colors, m.Names())
	assert.Equal(t, samples(8), m.Categories())

	c, ok := m.Color("Sample_1")
	require.True(t, ok)
	assert.Equal(t, color.RGBA{0x2e, 0x8b, 0x57, 0xff}, c) // seagreen
}

func TestBuildMissingStyle(t *testing.T) {
	_, err := Build(samples(10), DefaultAssignment())
	require.Error(t, err)

	var mse *errors.MissingStyleError
	require.ErrorAs(t, err, &mse)
	assert.Equal(t, []string{"Sample_9", "Sample_10"}, mse.Categories)
	assert.True(t, errors.Is(err, errors.ErrCodeMissingStyle))
}

func TestBuildFallback(t *testing.T) {
	a := DefaultAssignment()
	a.Fallback = "gray"

	m, err := Build([]string{"Sample_1", "Sample_42"}, a)
	require.NoError(t, err)

	e, ok := m.Lookup("Sample_42")
	require.True(t, ok)
	assert.True(t, e.Fallback)
	assert.Equal(t, "gray", e.Name)
	assert.Equal(t, color.RGBA{0x80, 0x80, 0x80, 0xff}, e.Color)

	e, _ = m.Lookup("Sample_1")
	assert.False(t, e.Fallback)
}

func TestBuildInvalidColor(t *testing.T) {
	tests := []struct {
		name string
		a    Assignment
	}{
		{"unknown name", Assignment{Colors: map[string]string{"Sample_1": "notacolor"}}},
		{"bad hex", Assignment{Colors: map[string]string{"Sample_1": "#12345"}}},
		{"bad fallback", Assignment{Colors: map[string]string{"Sample_1": "red"}, Fallback: "#zzz"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Build([]string{"Sample_1"}, tt.a)
			assert.True(t, errors.Is(err, errors.ErrCodeInvalidStyle), "got %v", err)
		})
	}
}

func TestBuildDuplicatesCollapsed(t *testing.T) {
	m, err := Build([]string{"Sample_2", "Sample_1", "Sample_2"}, DefaultAssignment())
	require.NoError(t, err)
	assert.Equal(t, []string{"Sample_2", "Sample_1"}, m.Categories())
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want color.RGBA
	}{
		{"#96bddd", color.RGBA{0x96, 0xbd, 0xdd, 0xff}},
		{"#99BEE8", color.RGBA{0x99, 0xbe, 0xe8, 0xff}},
		{"#fff", color.RGBA{0xff, 0xff, 0xff, 0xff}},
		{"SkyBlue", color.RGBA{0x87, 0xce, 0xeb, 0xff}},
		{" gold ", color.RGBA{0xff, 0xd7, 0x00, 0xff}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			if err != nil {
				t.Fatalf("ParseColor(%q): %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseColor(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseColorInvalidHex(t *testing.T) {
	for _, in := range []string{"#12345", "#1234567", "#12g456", "#ab", "#"} {
		_, err := ParseColor(in)
		if !errors.Is(err, errors.ErrCodeInvalidStyle) {
			t.Errorf("ParseColor(%q) = %v, want INVALID_STYLE", in, err)
		}
	}
}

func TestHex(t *testing.T) {
	if got := Hex(color.RGBA{0x96, 0xbd, 0xdd, 0xff}); got != "#96bddd" {
		t.Errorf("Hex = %q", got)
	}
	for _, in := range []string{"#000000", "#ffffff", "#010203", "#7f807e"} {
		c, err := ParseColor(in)
		if err != nil {
			t.Fatal(err)
		}
		if got := Hex(c); got != in {
			t.Errorf("Hex(ParseColor(%q)) = %q", in, got)
		}
	}
}

func TestGroupColors(t *testing.T) {
	m, err := Build([]string{"ctrl"}, Assignment{Colors: map[string]string{"ctrl": "black"}})
	require.NoError(t, err)

	got := GroupColors([]string{"ctrl", "trt", "sham"}, m)
	assert.Equal(t, color.RGBA{0, 0, 0, 0xff}, got["ctrl"])
	assert.Equal(t, PaletteColor(0), got["trt"])
	assert.Equal(t, PaletteColor(1), got["sham"])
}

func TestMerge(t *testing.T) {
	base := DefaultAssignment()
	over := Assignment{Colors: map[string]string{"Sample_1": "#000000", "Sample_9": "red"}, Fallback: "gray"}

	got := Merge(base, over)
	assert.Equal(t, "#000000", got.Colors["Sample_1"])
	assert.Equal(t, "red", got.Colors["Sample_9"])
	assert.Equal(t, "skyblue", got.Colors["Sample_2"])
	assert.Equal(t, "gray", got.Fallback)
	assert.Equal(t, "seagreen", base.Colors["Sample_1"], "base must not be modified")
}
