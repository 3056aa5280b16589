package http

import (
	"encoding/json"
	"net/http"

	"github.com/seveneightfive/warehouse-414-vintage-finds/internal/domain"
)

const (
	codeMethodNotAllowed     = "method_not_allowed"
	codeNotFound             = "not_found"
	codeInvalidRequestBody   = "invalid_request_body"
	codeNameRequired         = "name_required"
	codeEmailRequired        = "email_required"
	codeInvalidEmail         = "invalid_email"
	codeMessageRequired      = "message_required"
	codeOfferAmountRequired  = "offer_amount_required"
	codeShippingZipRequired  = "shipping_zip_required"
	codeInvalidInquiryType   = "invalid_inquiry_type"
	codeProductNotFound      = "product_not_found"
	codeProductNotAvailable  = "product_not_available"
	codeProductOnHold        = "product_on_hold"
	codeHoldNotFound         = "hold_not_found"
	codeHoldNotPending       = "hold_not_pending"
	codeHoldNotApproved      = "hold_not_approved"
	codeInquiryNotFound      = "inquiry_not_found"
	codeCollectionNotFound   = "collection_not_found"
	codeInquiryNotPending    = "inquiry_not_pending"
	codeTaxonomyNotFound     = "taxonomy_not_found"
	codeTaxonomyNameTaken    = "taxonomy_name_taken"
	codeTaxonomyInUse        = "taxonomy_in_use"
	codeInvalidTaxonomyKind  = "invalid_taxonomy_kind"
	codeProductNameRequired  = "product_name_required"
	codeInvalidStatus        = "invalid_status"
	codeInvalidID            = "invalid_id"
	codeInvalidCredentials   = "invalid_credentials"
	codeUnauthorized         = "unauthorized"
	codeForbidden            = "forbidden"
	codeInternalError        = "internal_error"
)

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func writeError(w http.ResponseWriter, status int, code, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	payload, err := json.Marshal(errorResponse{
		Error: msg,
		Code:  code,
	})
	if err != nil {
		_, _ = w.Write([]byte(`{"error":"internal error","code":"internal_error"}`))
		return
	}
	_, _ = w.Write(payload)
}

// writeDomainError maps a service error onto a status and machine code.
// Unknown errors become opaque 500s.
func writeDomainError(w http.ResponseWriter, err error) {
	status, code := http.StatusInternalServerError, codeInternalError
	msg := "internal error"

	switch err {
	case domain.ErrNameRequired:
		status, code = http.StatusBadRequest, codeNameRequired
	case domain.ErrEmailRequired:
		status, code = http.StatusBadRequest, codeEmailRequired
	case domain.ErrInvalidEmail:
		status, code = http.StatusBadRequest, codeInvalidEmail
	case domain.ErrMessageRequired:
		status, code = http.StatusBadRequest, codeMessageRequired
	case domain.ErrOfferAmountRequired:
		status, code = http.StatusBadRequest, codeOfferAmountRequired
	case domain.ErrShippingZipRequired:
		status, code = http.StatusBadRequest, codeShippingZipRequired
	case domain.ErrInvalidInquiryType:
		status, code = http.StatusBadRequest, codeInvalidInquiryType
	case domain.ErrProductNameRequired:
		status, code = http.StatusBadRequest, codeProductNameRequired
	case domain.ErrInvalidStatus:
		status, code = http.StatusBadRequest, codeInvalidStatus
	case domain.ErrInvalidTaxonomyKind:
		status, code = http.StatusBadRequest, codeInvalidTaxonomyKind
	case domain.ErrProductNotFound:
		status, code = http.StatusNotFound, codeProductNotFound
	case domain.ErrHoldNotFound:
		status, code = http.StatusNotFound, codeHoldNotFound
	case domain.ErrInquiryNotFound:
		status, code = http.StatusNotFound, codeInquiryNotFound
	case domain.ErrCollectionNotFound:
		status, code = http.StatusNotFound, codeCollectionNotFound
	case domain.ErrTaxonomyNotFound:
		status, code = http.StatusNotFound, codeTaxonomyNotFound
	case domain.ErrInvalidID:
		status, code = http.StatusNotFound, codeInvalidID
	case domain.ErrProductNotAvailable:
		status, code = http.StatusConflict, codeProductNotAvailable
	case domain.ErrProductOnHold:
		status, code = http.StatusConflict, codeProductOnHold
	case domain.ErrHoldNotPending:
		status, code = http.StatusConflict, codeHoldNotPending
	case domain.ErrHoldNotApproved:
		status, code = http.StatusConflict, codeHoldNotApproved
	case domain.ErrInquiryNotPending:
		status, code = http.StatusConflict, codeInquiryNotPending
	case domain.ErrTaxonomyNameTaken:
		status, code = http.StatusConflict, codeTaxonomyNameTaken
	case domain.ErrTaxonomyInUse:
		status, code = http.StatusConflict, codeTaxonomyInUse
	case domain.ErrInvalidCredentials:
		status, code = http.StatusUnauthorized, codeInvalidCredentials
	}

	if status != http.StatusInternalServerError {
		msg = err.Error()
	}
	writeError(w, status, code, msg)
}
