package cli

import (
	"strings"
	"testing"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"

	fptable "github.com/matzehuels/facetplot/pkg/table"
)

func testTidy(t *testing.T) *fptable.TidyTable {
	t.Helper()
	raw := &fptable.Table{
		Header: []string{"Sample_1", "Sample_2", "Sample_3", "Sample_4"},
		Rows: [][]string{
			{"1", "2", "3", "4"},
			{"2", "3", "NA", "5"},
			{"3", "4", "5", "6"},
		},
	}
	tidy, err := fptable.Reshape(raw, "Sample", nil)
	if err != nil {
		t.Fatal(err)
	}
	return tidy
}

func press(m SummaryModel, key string) SummaryModel {
	var msg tea.KeyMsg
	switch key {
	case "down":
		msg = tea.KeyMsg{Type: tea.KeyDown}
	case "up":
		msg = tea.KeyMsg{Type: tea.KeyUp}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
	next, _ := m.Update(msg)
	return next.(SummaryModel)
}

func TestSummaryModelNavigation(t *testing.T) {
	m := newSummaryModel(testTidy(t), nil)
	if len(m.Summaries) != 4 {
		t.Fatalf("got %d summaries, want 4", len(m.Summaries))
	}

	m = press(m, "up")
	if m.Cursor != 0 {
		t.Errorf("up at top: cursor = %d", m.Cursor)
	}
	m = press(m, "down")
	m = press(m, "j")
	if m.Cursor != 2 {
		t.Errorf("cursor = %d, want 2", m.Cursor)
	}
	m = press(m, "G")
	if m.Cursor != 3 {
		t.Errorf("end: cursor = %d, want 3", m.Cursor)
	}
	m = press(m, "down")
	if m.Cursor != 3 {
		t.Errorf("down at bottom: cursor = %d", m.Cursor)
	}
	m = press(m, "k")
	if m.Cursor != 2 {
		t.Errorf("cursor = %d, want 2", m.Cursor)
	}
	m = press(m, "g")
	if m.Cursor != 0 || m.Offset != 0 {
		t.Errorf("home: cursor = %d offset = %d", m.Cursor, m.Offset)
	}
}

func TestSummaryModelScrolls(t *testing.T) {
	m := newSummaryModel(testTidy(t), nil)
	m.Height = 2

	m = press(m, "down")
	m = press(m, "down")
	if m.Offset != 1 {
		t.Errorf("offset = %d, want 1", m.Offset)
	}
	m = press(m, "up")
	m = press(m, "up")
	if m.Offset != 0 {
		t.Errorf("offset = %d, want 0", m.Offset)
	}
}

func TestSummaryModelWindowSize(t *testing.T) {
	m := newSummaryModel(testTidy(t), nil)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 10})
	if got := next.(SummaryModel).Height; got != 3 {
		t.Errorf("Height = %d, want minimum 3", got)
	}
	next, _ = m.Update(tea.WindowSizeMsg{Width: 80, Height: 40})
	if got := next.(SummaryModel).Height; got != 24 {
		t.Errorf("Height = %d, want 24", got)
	}
}

func TestSummaryModelQuit(t *testing.T) {
	m := newSummaryModel(testTidy(t), nil)
	if _, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")}); cmd == nil {
		t.Error("q should quit")
	}
	if _, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc}); cmd == nil {
		t.Error("esc should quit")
	}
	if _, cmd := m.Update(tea.KeyMsg{Type: tea.KeyDown}); cmd != nil {
		t.Error("navigation should not return a command")
	}
}

func TestSummaryModelView(t *testing.T) {
	m := newSummaryModel(testTidy(t), map[string]string{"Sample_1": "seagreen"})
	m = press(m, "down")

	view := m.View()
	for _, want := range []string{"Sample_1", "Sample_2", "seagreen", "[2/4]", "median"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestSummaryModelEmptyView(t *testing.T) {
	m := newSummaryModel(&fptable.TidyTable{}, nil)
	if !strings.Contains(m.View(), "no categories") {
		t.Error("empty model should say so")
	}
}

func TestSparkline(t *testing.T) {
	s := sparkline([]float64{1, 2, 2, 3, 3, 3, 4, 4, 4, 4}, 4)
	if got := utf8.RuneCountInString(s); got != 4 {
		t.Fatalf("sparkline has %d blocks, want 4: %q", got, s)
	}
	runes := []rune(s)
	if runes[3] != '█' {
		t.Errorf("tallest bin should be a full block, got %q", s)
	}
	if sparkline(nil, 4) != "" {
		t.Error("no values should draw nothing")
	}
}
