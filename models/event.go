package models

// Event is a planner's listed event package.
type Event struct {
	ID        int     `json:"id"`
	Name      string  `json:"name"`
	Date      string  `json:"date"`
	Theme     string  `json:"theme"`
	Price     float64 `json:"price"`
	Image     string  `json:"image,omitempty"`
	PlannerID int     `json:"plannerId,omitempty"`
}
