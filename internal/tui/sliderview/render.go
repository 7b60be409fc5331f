package sliderview

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/alexisbeaulieu97/originslider/internal/slider"
)

type cellKind int

const (
	cellBackground cellKind = iota
	cellGuide
	cellTracking
	cellThumb
)

// Glyphs used for the track and the thumb.
const (
	GlyphThin       = "─"
	GlyphMedium     = "━"
	GlyphThick      = "▬"
	GlyphThumb      = "●"
	GlyphLargeThumb = "⬤"
)

// BarGlyph picks the track glyph that best matches a bar height.
func BarGlyph(height float64) string {
	switch {
	case height <= 2:
		return GlyphThin
	case height <= 4:
		return GlyphMedium
	default:
		return GlyphThick
	}
}

// ThumbGlyph picks the thumb glyph for a thumb size.
func ThumbGlyph(size float64) string {
	if size >= 20 {
		return GlyphLargeThumb
	}
	return GlyphThumb
}

// Render rasterizes a render description into a single terminal line, one
// cell per layout unit.
func Render(desc slider.RenderDescription) string {
	cells := int(desc.ContainerWidth)
	if cells <= 0 {
		return ""
	}

	kinds := make([]cellKind, cells)
	pad := int(desc.SidePadding)
	trackEnd := pad + int(desc.DrawableWidth)
	if trackEnd > cells {
		trackEnd = cells
	}

	for i := pad; i < trackEnd; i++ {
		kinds[i] = cellGuide
	}

	if t := desc.Tracking; t != nil {
		from := int(math.Floor(t.X))
		to := int(math.Ceil(t.X + t.Width))
		for i := max(from, pad); i < min(to, trackEnd); i++ {
			kinds[i] = cellTracking
		}
	}

	if th := desc.Thumb; th != nil {
		col := pad + int(math.Round(th.Offset))
		if col >= cells {
			col = cells - 1
		}
		if col >= 0 {
			kinds[col] = cellThumb
		}
	}

	styles := newPalette(desc)
	var b strings.Builder
	runStart := 0
	for i := 1; i <= cells; i++ {
		if i < cells && kinds[i] == kinds[runStart] {
			continue
		}
		kind := kinds[runStart]
		b.WriteString(styles.style(kind).Render(strings.Repeat(styles.glyph(kind), i-runStart)))
		runStart = i
	}
	return b.String()
}

// Labels renders the debug row under a slider: minimum on the left, default in
// the middle and maximum on the right, each with two decimals.
func Labels(minValue, defaultValue, maxValue float64, width int) string {
	left := fmt.Sprintf("%.2f", minValue)
	mid := fmt.Sprintf("%.2f", defaultValue)
	right := fmt.Sprintf("%.2f", maxValue)

	free := width - ansi.StringWidth(left) - ansi.StringWidth(mid) - ansi.StringWidth(right)
	if free < 2 {
		return left + " " + mid + " " + right
	}
	leftGap := free / 2
	return left + strings.Repeat(" ", leftGap) + mid + strings.Repeat(" ", free-leftGap) + right
}

type palette struct {
	base   colorful.Color
	bg     *lipgloss.Color
	guide  string
	track  string
	thumb  string
	styles map[cellKind]lipgloss.Style
}

func newPalette(desc slider.RenderDescription) palette {
	p := palette{
		guide:  BarGlyph(desc.Guide.Height),
		track:  GlyphMedium,
		thumb:  GlyphThumb,
		styles: make(map[cellKind]lipgloss.Style, 4),
	}
	if !desc.Background.IsClear() {
		p.base = desc.Background.Over(colorful.Color{})
		bg := lipgloss.Color(p.base.Hex())
		p.bg = &bg
	}

	withBackground := func(s lipgloss.Style) lipgloss.Style {
		if p.bg != nil {
			return s.Background(*p.bg)
		}
		return s
	}

	p.styles[cellBackground] = withBackground(lipgloss.NewStyle())
	p.styles[cellGuide] = withBackground(lipgloss.NewStyle().Foreground(p.fg(desc.Guide.Color)))

	if t := desc.Tracking; t != nil {
		p.track = BarGlyph(t.Height)
		p.styles[cellTracking] = withBackground(lipgloss.NewStyle().Foreground(p.fg(t.Color)))
	}

	if th := desc.Thumb; th != nil {
		p.thumb = ThumbGlyph(th.Size)
		style := lipgloss.NewStyle().Foreground(p.fg(th.Color))
		if th.HasShadow() {
			style = style.Background(p.fg(th.ShadowColor))
		} else {
			style = withBackground(style)
		}
		p.styles[cellThumb] = style
	}
	return p
}

func (p palette) fg(c slider.Color) lipgloss.Color {
	return lipgloss.Color(c.Over(p.base).Hex())
}

func (p palette) style(kind cellKind) lipgloss.Style {
	return p.styles[kind]
}

func (p palette) glyph(kind cellKind) string {
	switch kind {
	case cellGuide:
		return p.guide
	case cellTracking:
		return p.track
	case cellThumb:
		return p.thumb
	default:
		return " "
	}
}
