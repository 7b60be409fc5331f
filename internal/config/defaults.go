package config

// Default returns the built-in scene: four sliders over different ranges,
// the last one with a custom look.
func Default() *Scene {
	return &Scene{
		Version: "1.0",
		Title:   "Custom origin sliders",
		Sliders: []SliderConfig{
			{ID: "value1", Label: "Value1", Min: -30, Max: 50},
			{ID: "value2", Label: "Value2", Min: 0, Max: 100},
			{ID: "value3", Label: "Value3", Min: 50, Max: 100, Value: 60},
			{
				ID:    "value4",
				Label: "Value4",
				Min:   -50,
				Max:   50,
				Value: 20,
				Style: StyleConfig{
					ThumbSize:            size(24),
					ThumbColor:           "#ff0000",
					GuideBarCornerRadius: size(4),
					GuideBarColor:        "#0000ff33",
					GuideBarHeight:       size(6),
					TrackingBarColor:     "#0000ff",
					TrackingBarHeight:    size(6),
					Shadow:               size(2),
					ShadowColor:          "#808080",
					BackgroundColor:      "clear",
				},
			},
		},
	}
}

func size(v float64) *float64 {
	return &v
}
