package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type InquiryType string

const (
	InquiryTypeQuestion InquiryType = "question"
	InquiryTypeOffer    InquiryType = "offer"
	InquiryTypePurchase InquiryType = "purchase"
)

type InquiryStatus string

const (
	InquiryStatusPending  InquiryStatus = "pending"
	InquiryStatusApproved InquiryStatus = "approved"
	InquiryStatusDeclined InquiryStatus = "declined"
)

// Inquiry is a customer question, offer, or purchase request against one
// product. The type is fixed at creation. OfferAmount is set iff the type
// is offer; ShippingZip iff the type is purchase.
type Inquiry struct {
	ID            string
	ProductID     string
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	Type          InquiryType
	OfferAmount   *decimal.Decimal
	ShippingZip   string
	Message       string
	Status        InquiryStatus
	IsRead        bool
	CreatedAt     time.Time

	// ProductName is resolved on admin listings.
	ProductName string
}

// InquiryFilter narrows admin inbox listings.
type InquiryFilter struct {
	Type   InquiryType
	Status InquiryStatus
}
