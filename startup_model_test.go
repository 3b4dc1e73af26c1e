package main

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/olivier-w/sdrforge/internal/config"
	"github.com/olivier-w/sdrforge/internal/ui"
)

func TestStartupHandsOverToDashboard(t *testing.T) {
	m := newStartupModel(config.Default(), zap.NewNop())

	model, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	m = model.(startupModel)

	next, cmd := m.Update(preflightDoneMsg{logoPath: ""})
	if _, ok := next.(ui.Model); !ok {
		t.Fatalf("expected dashboard model after preflight, got %T", next)
	}
	if cmd == nil {
		t.Fatal("expected init command for dashboard")
	}
}

func TestStartupQuitKey(t *testing.T) {
	m := newStartupModel(config.Default(), zap.NewNop())

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
}

func TestStartupViewShowsSpinner(t *testing.T) {
	m := newStartupModel(config.Default(), zap.NewNop())
	view := m.View()
	if !strings.Contains(view, "SDRForge") {
		t.Fatal("expected app name in startup view")
	}
	if !strings.Contains(view, "Preparing assets...") {
		t.Fatal("expected preflight status in startup view")
	}
}

func TestPreflightCmdFallsBackToBanner(t *testing.T) {
	cfg := config.Default()
	cfg.Assets.LogoPath = "does/not/exist.png"
	cfg.Assets.LogoCachePath = "does/not/exist_small.png"

	msg := preflightCmd(cfg, zap.NewNop())()
	done, ok := msg.(preflightDoneMsg)
	if !ok {
		t.Fatalf("expected preflightDoneMsg, got %T", msg)
	}
	if done.logoPath != "" {
		t.Fatalf("expected empty logo path, got %q", done.logoPath)
	}
}
