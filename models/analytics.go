package models

// Overview is the upstream analytics summary for the admin dashboard.
type Overview struct {
	TotalBookings     int64   `json:"totalBookings"`
	CompletedBookings int64   `json:"completedBookings"`
	PendingBookings   int64   `json:"pendingBookings"`
	TotalRevenue      float64 `json:"totalRevenue"`
}

// StatusCount is one bar of the dashboard charts: a status label and how many
// bookings or enquiries currently carry it.
type StatusCount struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}
