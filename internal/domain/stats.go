package domain

// DashboardStats are the counters shown on the admin landing page.
type DashboardStats struct {
	Products        int
	PendingHolds    int
	UnreadOffers    int
	UnreadInquiries int
}
