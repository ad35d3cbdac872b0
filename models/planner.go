package models

// Planner is a bookable service provider as returned by the marketplace API.
type Planner struct {
	ID             int     `json:"id"`
	FullName       string  `json:"fullName"`
	Email          string  `json:"email,omitempty"`
	Phone          string  `json:"phone,omitempty"`
	City           string  `json:"city,omitempty"`
	Specialization string  `json:"specialization,omitempty"`
	ProfilePhoto   string  `json:"profilePhoto,omitempty"`
	AverageRating  float64 `json:"averageRating"`
	TotalRatings   int     `json:"totalRatings"`
	Events         []Event `json:"events,omitempty"`
}

// PlannerFilter is the directory search form: a free-text query plus optional
// event type, city and budget selections. All matching is case-insensitive
// and applied client-side over the fetched list.
type PlannerFilter struct {
	Query    string `json:"query" form:"query"`
	Type     string `json:"type" form:"type"`
	Location string `json:"location" form:"location"`
	Budget   string `json:"budget" form:"budget"`
}
