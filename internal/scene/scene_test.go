package scene

import (
	"strings"
	"testing"
)

func TestComposeIsDeterministic(t *testing.T) {
	a := Compose(7, 1, 100)
	b := Compose(7, 1, 100)
	if a != b {
		t.Fatal("expected identical frames for identical inputs")
	}
}

func TestComposeContainsArtAndLabels(t *testing.T) {
	frame := Compose(0, 0, 80)
	for _, want := range []string{"[Doorbell]", "[Laptop]", "[House]", ".----.", "_____________", "/____\\", ")))"} {
		if !strings.Contains(frame, want) {
			t.Fatalf("expected frame to contain %q", want)
		}
	}
}

func TestComposeLinesShareWidth(t *testing.T) {
	lines := strings.Split(Compose(12, 0, 120), "\n")
	if len(lines) == 0 {
		t.Fatal("expected non-empty frame")
	}
	width := len([]rune(lines[0]))
	for i, line := range lines {
		if got := len([]rune(line)); got != width {
			t.Fatalf("line %d width %d, expected %d", i, got, width)
		}
	}
}

func markerColumn(t *testing.T, frame string) int {
	t.Helper()
	for _, line := range strings.Split(frame, "\n") {
		if idx := strings.Index(line, ")))"); idx >= 0 {
			return idx
		}
	}
	t.Fatal("marker not found in frame")
	return -1
}

func TestComposeMarkerMovesMonotonically(t *testing.T) {
	prev := -1
	for frame := 0; frame < FrameCount; frame++ {
		col := markerColumn(t, Compose(frame, 0, 80))
		if col < prev {
			t.Fatalf("marker moved backwards at frame %d: %d -> %d", frame, prev, col)
		}
		prev = col
	}
}

func TestComposeStageOffsetsMarker(t *testing.T) {
	first := markerColumn(t, Compose(0, 0, 80))
	second := markerColumn(t, Compose(0, 1, 80))
	if second <= first {
		t.Fatalf("expected stage 1 marker right of stage 0: %d vs %d", second, first)
	}
}

func TestComposeNarrowTerminalStillFits(t *testing.T) {
	lines := strings.Split(Compose(29, 1, 1), "\n")
	// The scene enforces its own minimum width, so even a 1-column terminal
	// produces a full-width canvas.
	if len([]rune(lines[0])) < 72 {
		t.Fatalf("expected canvas at least scene width, got %d", len([]rune(lines[0])))
	}
}

func TestAnimatorWrapsAndFlipsStage(t *testing.T) {
	a := NewAnimator()
	for i := 0; i < FrameCount; i++ {
		a.Tick()
	}
	if a.Frame() != 0 {
		t.Fatalf("expected frame 0 after %d ticks, got %d", FrameCount, a.Frame())
	}
	if a.Stage() != 1 {
		t.Fatalf("expected stage flip after %d ticks, got %d", FrameCount, a.Stage())
	}

	for i := 0; i < FrameCount; i++ {
		a.Tick()
	}
	if a.Stage() != 0 {
		t.Fatal("expected stage to flip back after a full cycle")
	}
}

func TestAnimatorToggleFreezesState(t *testing.T) {
	a := NewAnimator()
	a.Tick()
	a.Tick()
	if running := a.Toggle(); running {
		t.Fatal("expected toggle to stop the animator")
	}

	frame, stage := a.Frame(), a.Stage()
	for i := 0; i < 100; i++ {
		a.Tick()
	}
	if a.Frame() != frame || a.Stage() != stage {
		t.Fatal("expected state frozen while stopped")
	}

	if running := a.Toggle(); !running {
		t.Fatal("expected toggle to resume the animator")
	}
	a.Tick()
	if a.Frame() != frame+1 {
		t.Fatalf("expected frame %d after resume, got %d", frame+1, a.Frame())
	}
}
