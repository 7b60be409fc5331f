package slider

// Style is the immutable set of visual parameters a slider is built with.
// Sizes are in layout units; the terminal renderer treats one unit as one cell
// horizontally.
type Style struct {
	ThumbSize            float64
	ThumbColor           Color
	GuideBarCornerRadius float64
	GuideBarColor        Color
	GuideBarHeight       float64
	TrackingBarColor     Color
	TrackingBarHeight    float64
	Shadow               float64
	ShadowColor          Color
	Background           Color
}

// DefaultStyle returns the stock look: white thumb and tracking bar on a faint
// white guide bar, no shadow, clear background.
func DefaultStyle() Style {
	return Style{
		ThumbSize:            16,
		ThumbColor:           White,
		GuideBarCornerRadius: 2,
		GuideBarColor:        White.WithOpacity(0.15),
		GuideBarHeight:       4,
		TrackingBarColor:     White,
		TrackingBarHeight:    4,
		Shadow:               0,
		ShadowColor:          Clear,
		Background:           Clear,
	}
}
