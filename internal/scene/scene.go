// Package scene builds the doorbell→laptop→house ASCII animation shown on
// the main screen. Frames are pure functions of the frame counter, the
// travel stage and the terminal width, so the driver simply recomposes the
// whole frame on every tick.
package scene

import "strings"

// FrameCount is the number of ticks the marker spends in one stage before
// the animation wraps and switches stage.
const FrameCount = 30

const (
	leftPad  = 2
	colWidth = 24
	marker   = ")))"
)

var doorbellArt = []string{
	"  .----.",
	" / .--. \\",
	"| | () | |",
	"|  `--'  |",
	" \\      /",
	"  `----'",
}

var laptopArt = []string{
	"   _____________",
	"  |  _________  |",
	"  | |         | |",
	"  | |         | |",
	"  | |_________| |",
	"  |_____________|",
	"   \\___________/",
}

var houseArt = []string{
	"      /\\",
	"     /  \\",
	"    /____\\",
	"    | __ |",
	"    ||  ||",
	"    ||__||",
	"    |____|",
}

// Compose renders one frame of the animation, horizontally centered for the
// given terminal width. It is deterministic: identical arguments always
// produce the identical string.
func Compose(frameIndex, stage, termWidth int) string {
	bellCol := leftPad
	laptopCol := colWidth + leftPad
	houseCol := 2*colWidth + leftPad

	bell := doorbellArt
	laptop := laptopArt
	house := houseArt

	artH := len(bell)
	if len(laptop) > artH {
		artH = len(laptop)
	}
	if len(house) > artH {
		artH = len(house)
	}

	sceneW := houseCol + 22
	if termWidth < sceneW+4 {
		termWidth = sceneW + 4
	}
	padLeft := (termWidth - sceneW) / 2
	if padLeft < 0 {
		padLeft = 0
	}
	width := padLeft + sceneW

	canvas := make([][]rune, 0, artH+6)
	for i := 0; i < artH; i++ {
		row := blankRow(width)
		if i < len(bell) {
			stamp(row, padLeft+bellCol, bell[i])
		}
		if i < len(laptop) {
			stamp(row, padLeft+laptopCol, laptop[i])
		}
		if i < len(house) {
			stamp(row, padLeft+houseCol, house[i])
		}
		canvas = append(canvas, row)
	}

	pathY := artH + 2
	for len(canvas) <= pathY+3 {
		canvas = append(canvas, blankRow(width))
	}

	for x := padLeft + bellCol + 10; x < padLeft+houseCol+8; x++ {
		if x >= 0 && x < width {
			canvas[pathY][x] = '-'
		}
	}

	labelsY := pathY + 2
	stamp(canvas[labelsY], padLeft+bellCol, "[Doorbell]")
	stamp(canvas[labelsY], padLeft+laptopCol, "[Laptop]")
	stamp(canvas[labelsY], padLeft+houseCol, "[House]")

	sigY := pathY - 1
	var startX, endX int
	if stage == 0 {
		startX = padLeft + bellCol + 10
		endX = padLeft + laptopCol - 2
	} else {
		startX = padLeft + laptopCol + 8
		endX = padLeft + houseCol - 2
	}
	span := endX - startX
	if span < 1 {
		span = 1
	}
	offset := frameIndex
	if offset < 0 {
		offset = 0
	}
	if offset > span {
		offset = span
	}
	stamp(canvas[sigY], startX+offset, marker)

	lines := make([]string, len(canvas))
	for i, row := range canvas {
		lines[i] = string(row)
	}
	return strings.Join(lines, "\n")
}

func blankRow(width int) []rune {
	row := make([]rune, width)
	for i := range row {
		row[i] = ' '
	}
	return row
}

// stamp writes s into row starting at x, dropping anything outside bounds.
func stamp(row []rune, x int, s string) {
	for i, ch := range []rune(s) {
		xx := x + i
		if xx >= 0 && xx < len(row) {
			row[xx] = ch
		}
	}
}
