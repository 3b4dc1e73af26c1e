package asset

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writePNG(t *testing.T, path string, width, height int) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 128, A: 255})
		}
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
}

func TestResolveRegeneratesMissingCache(t *testing.T) {
	dir := t.TempDir()
	orig := filepath.Join(dir, "logo.png")
	cache := filepath.Join(dir, ".logo_small.png")
	writePNG(t, orig, 40, 20)

	got := Resolve(orig, cache, 10, true)
	if got != cache {
		t.Fatalf("expected cache path, got %q", got)
	}

	f, err := os.Open(cache)
	if err != nil {
		t.Fatalf("expected cache written: %v", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	if img.Bounds().Dx() != 10 {
		t.Fatalf("expected 10px wide cache, got %d", img.Bounds().Dx())
	}
	if img.Bounds().Dy() != 5 {
		t.Fatalf("expected aspect preserved (5px), got %d", img.Bounds().Dy())
	}
}

func TestResolvePrefersFreshCache(t *testing.T) {
	dir := t.TempDir()
	orig := filepath.Join(dir, "logo.png")
	cache := filepath.Join(dir, ".logo_small.png")
	writePNG(t, orig, 40, 20)
	writePNG(t, cache, 10, 5)

	past := time.Now().Add(-time.Hour)
	if err := os.Chtimes(orig, past, past); err != nil {
		t.Fatal(err)
	}

	if got := Resolve(orig, cache, 10, true); got != cache {
		t.Fatalf("expected fresh cache preferred, got %q", got)
	}
}

func TestResolveSmallOriginalIsCachedUnscaled(t *testing.T) {
	dir := t.TempDir()
	orig := filepath.Join(dir, "logo.png")
	cache := filepath.Join(dir, ".logo_small.png")
	writePNG(t, orig, 8, 4)

	if got := Resolve(orig, cache, 460, true); got != cache {
		t.Fatalf("expected cache path, got %q", got)
	}
}

func TestResolveWithoutResize(t *testing.T) {
	dir := t.TempDir()
	orig := filepath.Join(dir, "logo.png")
	writePNG(t, orig, 8, 4)

	if got := Resolve(orig, filepath.Join(dir, "cache.png"), 10, false); got != orig {
		t.Fatalf("expected original, got %q", got)
	}
	if got := Resolve(filepath.Join(dir, "missing.png"), "", 10, false); got != "" {
		t.Fatalf("expected empty path, got %q", got)
	}
}

func TestResolveMissingOriginalFallsBackToLeftoverCache(t *testing.T) {
	dir := t.TempDir()
	cache := filepath.Join(dir, ".logo_small.png")
	writePNG(t, cache, 10, 5)

	if got := Resolve(filepath.Join(dir, "gone.png"), cache, 10, true); got != cache {
		t.Fatalf("expected leftover cache, got %q", got)
	}
	if got := Resolve(filepath.Join(dir, "gone.png"), filepath.Join(dir, "also-gone.png"), 10, true); got != "" {
		t.Fatalf("expected no logo, got %q", got)
	}
}

func TestResolveUndecodableOriginalFallsBackToOriginalPath(t *testing.T) {
	dir := t.TempDir()
	orig := filepath.Join(dir, "logo.png")
	if err := os.WriteFile(orig, []byte("not a png"), 0o644); err != nil {
		t.Fatal(err)
	}

	// The cache cannot be written, so the caller gets the original and the
	// renderer degrades to the banner from there.
	if got := Resolve(orig, filepath.Join(dir, "cache.png"), 10, true); got != orig {
		t.Fatalf("expected original path, got %q", got)
	}
}

func TestRenderFallsBackToBanner(t *testing.T) {
	if got := Render("", 40, 10); got != Banner() {
		t.Fatal("expected banner for empty path")
	}
	if got := Render(filepath.Join(t.TempDir(), "missing.png"), 40, 10); got != Banner() {
		t.Fatal("expected banner for missing file")
	}
}

func TestRenderFitsRequestedCells(t *testing.T) {
	dir := t.TempDir()
	orig := filepath.Join(dir, "logo.png")
	writePNG(t, orig, 64, 32)

	got := Render(orig, 20, 6)
	lines := strings.Split(got, "\n")
	if len(lines) > 6 {
		t.Fatalf("expected at most 6 rows, got %d", len(lines))
	}
	if !strings.Contains(got, "▀") {
		t.Fatal("expected half-block cells in rendering")
	}
}
