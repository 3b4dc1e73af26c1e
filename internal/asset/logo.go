// Package asset resolves and renders the dashboard logo image. Every
// failure degrades instead of propagating: a stale or unwritable cache falls
// back to the original file, and a missing or undecodable image falls back
// to a plain text banner.
package asset

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	_ "image/gif"
	_ "image/jpeg"
)

// Resolve picks the logo path to render. With resizing enabled it prefers a
// cache file at least as new as the original, regenerating it otherwise.
// It returns "" when no usable image exists; callers render without a logo.
func Resolve(orig, cache string, targetWidth int, resize bool) string {
	origInfo, origErr := os.Stat(orig)
	if !resize {
		if origErr != nil {
			return ""
		}
		return orig
	}

	if origErr != nil {
		// No original to downsize; a leftover cache is still usable.
		if _, err := os.Stat(cache); err == nil {
			return cache
		}
		return ""
	}

	if cacheInfo, err := os.Stat(cache); err == nil && !cacheInfo.ModTime().Before(origInfo.ModTime()) {
		return cache
	}

	if err := writeCache(orig, cache, targetWidth); err != nil {
		return orig
	}
	return cache
}

// writeCache regenerates the downsized cache copy. Fewer pixels per
// character cell means a less blocky terminal rendering.
func writeCache(orig, cache string, targetWidth int) error {
	img, err := loadImage(orig)
	if err != nil {
		return err
	}
	if targetWidth > 0 && img.Bounds().Dx() > targetWidth {
		img = shrink(img, targetWidth)
	}

	if dir := filepath.Dir(cache); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	f, err := os.Create(cache)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, img)
}

func loadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}

// shrink box-averages img down to targetWidth, preserving aspect ratio.
func shrink(img image.Image, targetWidth int) image.Image {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	targetHeight := h * targetWidth / w
	if targetHeight < 1 {
		targetHeight = 1
	}

	out := image.NewRGBA(image.Rect(0, 0, targetWidth, targetHeight))
	for y := 0; y < targetHeight; y++ {
		y0 := b.Min.Y + y*h/targetHeight
		y1 := b.Min.Y + (y+1)*h/targetHeight
		if y1 <= y0 {
			y1 = y0 + 1
		}
		for x := 0; x < targetWidth; x++ {
			x0 := b.Min.X + x*w/targetWidth
			x1 := b.Min.X + (x+1)*w/targetWidth
			if x1 <= x0 {
				x1 = x0 + 1
			}

			var r, g, bl, a, n uint64
			for yy := y0; yy < y1; yy++ {
				for xx := x0; xx < x1; xx++ {
					pr, pg, pb, pa := img.At(xx, yy).RGBA()
					r += uint64(pr)
					g += uint64(pg)
					bl += uint64(pb)
					a += uint64(pa)
					n++
				}
			}
			out.Pix[out.PixOffset(x, y)+0] = uint8(r / n >> 8)
			out.Pix[out.PixOffset(x, y)+1] = uint8(g / n >> 8)
			out.Pix[out.PixOffset(x, y)+2] = uint8(bl / n >> 8)
			out.Pix[out.PixOffset(x, y)+3] = uint8(a / n >> 8)
		}
	}
	return out
}
