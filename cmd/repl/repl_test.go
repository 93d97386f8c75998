package repl

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestTranslateBothDirections(t *testing.T) {
	m := initialModel()

	m.mode = modeEncode
	m.input.SetValue("sos")
	m = m.translate()
	if m.result != "... --- ..." {
		t.Errorf("encode result = %q, want %q", m.result, "... --- ...")
	}

	m.mode = modeDecode
	m.input.SetValue("... --- ...")
	m = m.translate()
	if m.result != "SOS" {
		t.Errorf("decode result = %q, want %q", m.result, "SOS")
	}
	if len(m.diags) != 0 {
		t.Errorf("unexpected diagnostics: %v", m.diags)
	}
}

func TestTranslateReportsMalformedMarks(t *testing.T) {
	m := initialModel()
	m.mode = modeDecode
	m.input.SetValue("..x.")
	m = m.translate()
	if m.result != "?" {
		t.Errorf("result = %q, want %q", m.result, "?")
	}
	if len(m.diags) != 1 {
		t.Errorf("got %d diagnostics, want 1", len(m.diags))
	}
}

func TestMenuNavigation(t *testing.T) {
	m := initialModel()

	next, _ := m.updateMenu(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(model)
	if m.cursor != 1 {
		t.Fatalf("cursor = %d, want 1", m.cursor)
	}

	next, _ = m.updateMenu(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(model)
	if m.mode != modeDecode {
		t.Errorf("mode = %v, want decode", m.mode)
	}
}
