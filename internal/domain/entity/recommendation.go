package entity

// Recommendation is the supportive message and suggested actions
// returned alongside a sentiment
type Recommendation struct {
	Message string   `json:"message"`
	Tips    []string `json:"tips"`
}
