package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/neurolab/eegpos/pkg/montage"
	"github.com/neurolab/eegpos/pkg/sphere"
)

func newTestBrowser(t *testing.T) browserModel {
	t.Helper()
	sys, err := montage.Compute(montage.Options{
		Density: montage.Density1020,
		Sort:    true,
	})
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	flat, err := sys.Project(sphere.DefaultPole)
	if err != nil {
		t.Fatalf("Project: %v", err)
	}
	return newBrowserModel(sys, flat)
}

func TestBrowserModelRows(t *testing.T) {
	m := newTestBrowser(t)

	// 21 electrodes + 3 landmarks
	if len(m.Rows) != 24 {
		t.Errorf("%d rows, want 24", len(m.Rows))
	}
	if !strings.Contains(m.Title, "10-20") {
		t.Errorf("Title = %q, should name the density", m.Title)
	}
}

func TestBrowserModelFilter(t *testing.T) {
	m := newTestBrowser(t)

	for _, key := range []string{"f", "p"} {
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)})
		m = next.(browserModel)
	}
	if m.Filter != "fp" {
		t.Fatalf("Filter = %q, want fp", m.Filter)
	}

	// Fp1, Fp2, Fpz match case-insensitively.
	visible := m.visible()
	if len(visible) != 3 {
		t.Errorf("%d visible rows, want 3: %+v", len(visible), visible)
	}

	// Backspace shrinks the filter; esc clears it.
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	m = next.(browserModel)
	if m.Filter != "f" {
		t.Errorf("Filter = %q after backspace, want f", m.Filter)
	}
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(browserModel)
	if m.Filter != "" {
		t.Errorf("Filter = %q after esc, want empty", m.Filter)
	}
}

func TestBrowserModelNavigation(t *testing.T) {
	m := newTestBrowser(t)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(browserModel)
	if m.Cursor != 1 {
		t.Errorf("Cursor = %d after down, want 1", m.Cursor)
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m = next.(browserModel)
	if m.Cursor != 0 {
		t.Errorf("Cursor = %d after up, want 0", m.Cursor)
	}

	// Cursor never goes negative.
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m = next.(browserModel)
	if m.Cursor != 0 {
		t.Errorf("Cursor = %d, want 0", m.Cursor)
	}
}

func TestBrowserModelView(t *testing.T) {
	m := newTestBrowser(t)
	view := m.View()

	for _, want := range []string{"Label", "2D X", "[1/24]"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}
