package models

// RecommendRequest asks the AI assistant for planner recommendations.
type RecommendRequest struct {
	Criteria string `json:"criteria"`
}

// BudgetRequest asks the AI assistant for an event budget prediction.
type BudgetRequest struct {
	Type     string `json:"type"`
	Theme    string `json:"theme"`
	Guests   string `json:"guests"`
	Location string `json:"location"`
}
