package consumer

type widgetParams struct {
	size  int
	color string
}

type brokenParams struct {
	size missingType
}

// Size refers to code generated from widgetParams.
func Size(w Widget) int {
	return CallWidget(w, func(n int, _ string) int { return n })
}
