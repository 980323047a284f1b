package dto

// ChartResponse describes a chart available in the viewer.
type ChartResponse struct {
	Index int    `json:"index"`
	Name  string `json:"name"`
	Title string `json:"title"`
	URL   string `json:"url"`
}
