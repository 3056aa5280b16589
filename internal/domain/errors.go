package domain

import "errors"

var (
	ErrProductNotFound     = errors.New("product not found")
	ErrProductNotAvailable = errors.New("product not available")
	ErrProductOnHold       = errors.New("product already on hold")
	ErrHoldNotFound        = errors.New("hold not found")
	ErrHoldNotPending      = errors.New("hold is not pending")
	ErrHoldNotApproved     = errors.New("hold is not approved")
	ErrInquiryNotFound     = errors.New("inquiry not found")
	ErrCollectionNotFound  = errors.New("collection not found")
	ErrInquiryNotPending   = errors.New("inquiry is not pending")
	ErrNameRequired        = errors.New("customer name is required")
	ErrEmailRequired       = errors.New("customer email is required")
	ErrInvalidEmail        = errors.New("customer email is invalid")
	ErrMessageRequired     = errors.New("message is required")
	ErrOfferAmountRequired = errors.New("offer amount must be greater than zero")
	ErrShippingZipRequired = errors.New("shipping zip is required")
	ErrInvalidInquiryType  = errors.New("invalid inquiry type")
	ErrTaxonomyNotFound    = errors.New("taxonomy entry not found")
	ErrTaxonomyNameTaken   = errors.New("taxonomy name already exists")
	ErrTaxonomyInUse       = errors.New("taxonomy entry is referenced by products")
	ErrInvalidTaxonomyKind = errors.New("invalid taxonomy kind")
	ErrProductNameRequired = errors.New("product name is required")
	ErrInvalidStatus       = errors.New("invalid status")
	ErrInvalidID           = errors.New("invalid id")
	ErrInvalidCredentials  = errors.New("invalid credentials")
)
