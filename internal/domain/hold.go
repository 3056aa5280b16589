package domain

import "time"

type HoldStatus string

const (
	HoldStatusPending  HoldStatus = "pending"
	HoldStatusApproved HoldStatus = "approved"
	HoldStatusDeclined HoldStatus = "declined"
	HoldStatusReleased HoldStatus = "released"
)

// Hold is a time-boxed reservation of a product for a prospective buyer.
// Expiry is informational only: holds are released by staff, never by a timer.
type Hold struct {
	ID            string
	ProductID     string
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	Notes         string
	Status        HoldStatus
	ExpiresAt     time.Time
	CreatedAt     time.Time

	// ProductName is resolved on admin listings.
	ProductName string
}
