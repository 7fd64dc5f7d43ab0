package theme

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
)

// Wrapper decorates a Theme with derived presentation helpers that every
// registered palette gets for free: a dimmed variant for read/unfocused rows
// and raw ANSI background sequences for the cell canvas's background fill.
type Wrapper struct {
	Theme
}

// wrap adapts any concrete Theme to the exported Wrapper so Current() always
// returns something with Dimmed/BackgroundANSI available.
func wrap(t Theme) Wrapper {
	return Wrapper{Theme: t}
}

// Dimmed returns a theme variant with foreground colors blended toward the
// background, used for read-story rows that aren't the current selection.
func (w Wrapper) Dimmed() Theme {
	return dimmedTheme{base: w.Theme}
}

// BackgroundANSI returns a raw ANSI background-color escape sequence for the
// dark-mode background color, used by fillBackground to rewrite ANSI resets
// outside of lipgloss's own styling path.
func (w Wrapper) BackgroundANSI() string {
	return ansiBackground(w.Background())
}

// BackgroundSecondaryANSI is the BackgroundANSI equivalent for the secondary
// (selected-row) background color.
func (w Wrapper) BackgroundSecondaryANSI() string {
	return ansiBackground(w.BackgroundSecondary())
}

func ansiBackground(c lipgloss.AdaptiveColor) string {
	hex := c.Dark
	if hex == "" {
		hex = c.Light
	}
	r, g, b, ok := parseHex(hex)
	if !ok {
		return "\x1b[49m"
	}
	return fmt.Sprintf("\x1b[48;2;%d;%d;%dm", r, g, b)
}

const dimFactor = 0.35

// dimmedTheme blends the foreground accessors toward the background;
// background/border colors are left untouched so panel chrome doesn't shift.
type dimmedTheme struct {
	base Theme
}

func (d dimmedTheme) Primary() lipgloss.AdaptiveColor   { return blend(d.base.Primary(), d.base.Background()) }
func (d dimmedTheme) Secondary() lipgloss.AdaptiveColor { return blend(d.base.Secondary(), d.base.Background()) }
func (d dimmedTheme) Accent() lipgloss.AdaptiveColor    { return blend(d.base.Accent(), d.base.Background()) }
func (d dimmedTheme) Error() lipgloss.AdaptiveColor     { return blend(d.base.Error(), d.base.Background()) }
func (d dimmedTheme) Warning() lipgloss.AdaptiveColor   { return blend(d.base.Warning(), d.base.Background()) }
func (d dimmedTheme) Success() lipgloss.AdaptiveColor   { return blend(d.base.Success(), d.base.Background()) }
func (d dimmedTheme) Info() lipgloss.AdaptiveColor      { return blend(d.base.Info(), d.base.Background()) }
func (d dimmedTheme) Text() lipgloss.AdaptiveColor      { return blend(d.base.Text(), d.base.Background()) }
func (d dimmedTheme) TextMuted() lipgloss.AdaptiveColor {
	return blend(d.base.TextMuted(), d.base.Background())
}
func (d dimmedTheme) TextEmphasized() lipgloss.AdaptiveColor {
	return blend(d.base.TextEmphasized(), d.base.Background())
}
func (d dimmedTheme) Background() lipgloss.AdaptiveColor          { return d.base.Background() }
func (d dimmedTheme) BackgroundSecondary() lipgloss.AdaptiveColor { return d.base.BackgroundSecondary() }
func (d dimmedTheme) BackgroundDarker() lipgloss.AdaptiveColor    { return d.base.BackgroundDarker() }
func (d dimmedTheme) BorderNormal() lipgloss.AdaptiveColor        { return d.base.BorderNormal() }
func (d dimmedTheme) BorderFocused() lipgloss.AdaptiveColor       { return d.base.BorderFocused() }
func (d dimmedTheme) BorderDim() lipgloss.AdaptiveColor           { return d.base.BorderDim() }

func blend(fg, bg lipgloss.AdaptiveColor) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{
		Dark:  blendHex(fg.Dark, bg.Dark, dimFactor),
		Light: blendHex(fg.Light, bg.Light, dimFactor),
	}
}

// blendHex linearly interpolates between two "#rrggbb" colors; factor 0
// returns hex1 unchanged, factor 1 returns hex2.
func blendHex(hex1, hex2 string, factor float64) string {
	r1, g1, b1, ok1 := parseHex(hex1)
	r2, g2, b2, ok2 := parseHex(hex2)
	if !ok1 || !ok2 {
		return hex1
	}
	r := int(float64(r1) + (float64(r2)-float64(r1))*factor)
	g := int(float64(g1) + (float64(g2)-float64(g1))*factor)
	b := int(float64(b1) + (float64(b2)-float64(b1))*factor)
	return fmt.Sprintf("#%02x%02x%02x", clampByte(r), clampByte(g), clampByte(b))
}

func clampByte(v int) int {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}

func parseHex(hex string) (r, g, b int, ok bool) {
	if len(hex) != 7 || hex[0] != '#' {
		return 0, 0, 0, false
	}
	rv, err1 := strconv.ParseInt(hex[1:3], 16, 32)
	gv, err2 := strconv.ParseInt(hex[3:5], 16, 32)
	bv, err3 := strconv.ParseInt(hex[5:7], 16, 32)
	if err1 != nil || err2 != nil || err3 != nil {
		return 0, 0, 0, false
	}
	return int(rv), int(gv), int(bv), true
}
