package asset

import (
	"image"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var bannerLines = []string{
	" ____  ____  ____  _____",
	"/ ___||  _ \\|  _ \\|  ___|__  _ __ __ _  ___",
	"\\___ \\| | | | |_) | |_ / _ \\| '__/ _` |/ _ \\",
	" ___) | |_| |  _ <|  _| (_) | | | (_| |  __/",
	"|____/|____/|_| \\_\\_|  \\___/|_|  \\__, |\\___|",
	"                                 |___/",
}

// Banner is the text fallback shown when no logo image can be rendered.
func Banner() string {
	return strings.Join(bannerLines, "\n")
}

// Render draws the image at path as half-block cells, at most
// maxWidth x maxHeight terminal cells. It degrades to Banner when the image
// cannot be read or decoded.
func Render(path string, maxWidth, maxHeight int) string {
	if path == "" {
		return Banner()
	}
	img, err := loadImage(path)
	if err != nil {
		return Banner()
	}
	return renderCells(img, maxWidth, maxHeight)
}

// renderCells maps two vertically stacked pixels onto one '▀' cell, the top
// pixel as foreground and the bottom as background.
func renderCells(img image.Image, maxWidth, maxHeight int) string {
	if maxWidth < 1 {
		maxWidth = 1
	}
	if maxHeight < 1 {
		maxHeight = 1
	}

	b := img.Bounds()
	w, h := b.Dx(), b.Dy()

	cols := maxWidth
	rows := cols * h / (2 * w)
	if rows > maxHeight {
		rows = maxHeight
		cols = rows * 2 * w / h
		if cols < 1 {
			cols = 1
		}
	}
	if rows < 1 {
		rows = 1
	}

	var out strings.Builder
	for row := 0; row < rows; row++ {
		if row > 0 {
			out.WriteByte('\n')
		}
		for col := 0; col < cols; col++ {
			top := sampleHex(img, col, 2*row, cols, 2*rows)
			bottom := sampleHex(img, col, 2*row+1, cols, 2*rows)
			cell := lipgloss.NewStyle().
				Foreground(lipgloss.Color(top)).
				Background(lipgloss.Color(bottom)).
				Render("▀")
			out.WriteString(cell)
		}
	}
	return out.String()
}

// sampleHex averages the pixel block backing cell (cx, cy) of a gridW x gridH
// grid and returns it as a hex color.
func sampleHex(img image.Image, cx, cy, gridW, gridH int) string {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()

	x0 := b.Min.X + cx*w/gridW
	x1 := b.Min.X + (cx+1)*w/gridW
	y0 := b.Min.Y + cy*h/gridH
	y1 := b.Min.Y + (cy+1)*h/gridH
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}

	var r, g, bl, n uint64
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			pr, pg, pb, _ := img.At(x, y).RGBA()
			r += uint64(pr >> 8)
			g += uint64(pg >> 8)
			bl += uint64(pb >> 8)
			n++
		}
	}

	const hexDigits = "0123456789abcdef"
	avg := [3]uint64{r / n, g / n, bl / n}
	hex := make([]byte, 7)
	hex[0] = '#'
	for i, v := range avg {
		hex[1+2*i] = hexDigits[v>>4]
		hex[2+2*i] = hexDigits[v&0xf]
	}
	return string(hex)
}
