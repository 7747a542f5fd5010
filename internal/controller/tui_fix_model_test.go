package controller

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestFixModel_ViewBeforeFirstMessage(t *testing.T) {
	model := newFixModel(4)

	if got := model.View(); got != "Preparing fixes…\n" {
		t.Fatalf("View() before render = %q", got)
	}
}

func TestFixModel_ProgressAndOutcome(t *testing.T) {
	model := newFixModel(2)

	updated, _ := model.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	model = updated.(fixModel)

	updated, _ = model.Update(progressMsg{index: 1, total: 2, path: "src/lib.rs", sites: 3})
	model = updated.(fixModel)

	if !model.rendered || model.currentPath != "src/lib.rs" {
		t.Fatalf("progressMsg not applied: %+v", model)
	}

	view := model.View()
	for _, want := range []string{"Redress Batch Fix", "src/lib.rs", "Press q to quit"} {
		if !strings.Contains(view, want) {
			t.Fatalf("View() missing %q\n%s", want, view)
		}
	}

	updated, _ = model.Update(outcomeMsg{path: "src/lib.rs", outcome: "kept"})
	model = updated.(fixModel)

	if model.completed != 1 {
		t.Fatalf("completed = %d, want 1", model.completed)
	}

	if !strings.Contains(model.View(), "kept") {
		t.Fatalf("View() missing outcome\n%s", model.View())
	}
}

func TestFixModel_ReportSwitchesToResults(t *testing.T) {
	model := newFixModel(1)

	updated, _ := model.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	model = updated.(fixModel)

	updated, _ = model.Update(outcomeMsg{path: "src/lib.rs", outcome: "reverted", detail: "exit status 1\ngarbage"})
	model = updated.(fixModel)

	updated, _ = model.Update(reportMsg{kept: 0, reverted: 1, failed: 0, skipped: 0})
	model = updated.(fixModel)

	if !model.finished {
		t.Fatalf("reportMsg did not finish the model")
	}

	view := model.View()
	for _, want := range []string{"Redress Fix Results", "Reverted", "reverted", "exit status 1"} {
		if !strings.Contains(view, want) {
			t.Fatalf("View() missing %q\n%s", want, view)
		}
	}

	if strings.Contains(view, "garbage") {
		t.Fatalf("detail must stay on one line\n%s", view)
	}
}

func TestFixModel_QuitKeys(t *testing.T) {
	model := newFixModel(1)

	for _, key := range []string{"q", "ctrl+c", "esc"} {
		var msg tea.KeyMsg

		switch key {
		case "ctrl+c":
			msg = tea.KeyMsg{Type: tea.KeyCtrlC}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
		}

		_, cmd := model.Update(msg)
		if cmd == nil {
			t.Fatalf("key %q did not quit", key)
		}
	}
}

func TestFixModel_QuitMsg(t *testing.T) {
	model := newFixModel(1)

	_, cmd := model.Update(quitMsg{})
	if cmd == nil {
		t.Fatalf("quitMsg did not quit")
	}
}

func TestFixModel_WindowSizeClampsBar(t *testing.T) {
	model := newFixModel(1)

	updated, _ := model.Update(tea.WindowSizeMsg{Width: 10, Height: 5})
	model = updated.(fixModel)

	if model.progressBar.Width != 20 {
		t.Fatalf("progressBar.Width = %d, want 20", model.progressBar.Width)
	}
}

func TestClipLine(t *testing.T) {
	if got := clipLine("hello", 0); got != "" {
		t.Fatalf("clipLine width 0 = %q, want empty", got)
	}

	if got := clipLine("hello", 10); got != "hello" {
		t.Fatalf("clipLine no truncation = %q", got)
	}

	if got := clipLine("hello", 1); got != "…" {
		t.Fatalf("clipLine width 1 = %q, want ellipsis", got)
	}

	if got := clipLine("hello", 3); got != "he…" {
		t.Fatalf("clipLine width 3 = %q, want he…", got)
	}
}
