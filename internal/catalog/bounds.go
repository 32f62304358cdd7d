package catalog

// Slider bounds for the numeric entity fields.
const (
	CostMin  = -5
	CostMax  = 10
	RangeMin = 0
	RangeMax = 5
	LimitMin = 1
	LimitMax = 5
)
