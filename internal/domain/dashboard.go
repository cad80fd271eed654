package domain

// DashboardCounts are the pending-work counters shown on the admin home.
type DashboardCounts struct {
	PendingFeeds              int `json:"pendingFeeds"`
	PendingEventRegistrations int `json:"pendingEventRegistrations"`
	PendingUsers              int `json:"pendingUsers"`
	PendingProducts           int `json:"pendingProducts"`
	TotalUsers                int `json:"totalUsers"`
}
