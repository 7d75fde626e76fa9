package domain

// Classification describes the direction of a line.
type Classification string

const (
	Increasing Classification = "increasing"
	Decreasing Classification = "decreasing"
	Horizontal Classification = "horizontal"
	Vertical   Classification = "vertical"
)

// Classifications lists every classification in display order.
func Classifications() []Classification {
	return []Classification{Increasing, Decreasing, Horizontal, Vertical}
}
