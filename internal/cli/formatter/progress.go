package formatter

import (
	"fmt"
	"strings"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderProgress renders a progress bar like [████░░░░] 45%.
// The bar is colored based on percentage: green >66%, yellow 33-66%, red <33%.
func RenderProgress(pct float64, width int) string {
	if pct < 0 {
		pct = 0
	}
	if pct > 1 {
		pct = 1
	}
	if width < 2 {
		width = 2
	}

	filled := int(pct * float64(width))
	if filled > width {
		filled = width
	}
	empty := width - filled

	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, empty)

	var style = StyleGreen
	if pct < 0.33 {
		style = StyleRed
	} else if pct < 0.66 {
		style = StyleYellow
	}

	pctStr := fmt.Sprintf("%3.0f%%", pct*100)
	return fmt.Sprintf("[%s] %s", style.Render(bar), pctStr)
}

// RenderTimeBar renders elapsed school days as a neutral bar with a
// "day 5 of 10" suffix. Elapsed time is not good or bad, so it is not
// colored by threshold.
func RenderTimeBar(elapsed, total, width int) string {
	if total < 1 {
		total = 1
	}
	if elapsed > total {
		elapsed = total
	}
	if elapsed < 0 {
		elapsed = 0
	}
	if width < 2 {
		width = 2
	}
	filled := elapsed * width / total
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)
	return fmt.Sprintf("[%s] day %d of %d", StyleBlue.Render(bar), elapsed, total)
}

// Fraction renders "done/total" colored like RenderProgress.
func Fraction(done, total int) string {
	text := fmt.Sprintf("%d/%d", done, total)
	if total == 0 {
		return Dim(text)
	}
	pct := float64(done) / float64(total)
	switch {
	case pct >= 0.66:
		return StyleGreen.Render(text)
	case pct >= 0.33:
		return StyleYellow.Render(text)
	}
	return StyleRed.Render(text)
}
