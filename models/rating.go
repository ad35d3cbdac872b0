package models

// Rating is a customer rating for a planner, submitted after a paid booking.
type Rating struct {
	PlannerID int    `json:"plannerId"`
	UserEmail string `json:"userEmail"`
	UserName  string `json:"userName"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment,omitempty"`
}
