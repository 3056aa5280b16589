package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/seveneightfive/warehouse-414-vintage-finds/internal/app"
	"github.com/seveneightfive/warehouse-414-vintage-finds/internal/domain"
	"github.com/shopspring/decimal"
)

// InquirySubmitter is the minimal interface needed for the public
// question/offer/purchase forms.
type InquirySubmitter interface {
	Submit(ctx context.Context, in app.SubmitInquiryInput) (domain.Inquiry, error)
}

type submitInquiryRequest struct {
	InquiryType   string           `json:"inquiry_type"`
	CustomerName  string           `json:"customer_name"`
	CustomerEmail string           `json:"customer_email"`
	CustomerPhone string           `json:"customer_phone,omitempty"`
	OfferAmount   *decimal.Decimal `json:"offer_amount,omitempty"`
	ShippingZip   string           `json:"shipping_zip,omitempty"`
	Message       string           `json:"message,omitempty"`
}

type submitInquiryResponse struct {
	inquiryResponse
	Message string `json:"message"`
}

// confirmations are the intent-specific success lines shown by the
// storefront modal.
var confirmations = map[domain.InquiryType]string{
	domain.InquiryTypeQuestion: "Your question has been sent. We'll be in touch shortly.",
	domain.InquiryTypeOffer:    "Your offer has been received. We'll respond within 1-2 business days.",
	domain.InquiryTypePurchase: "Thank you! We'll prepare a shipping quote and invoice for you shortly.",
}

// HandleSubmitInquiry returns the handler for customer inquiry submissions.
func HandleSubmitInquiry(svc InquirySubmitter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req submitInquiryRequest
		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, codeInvalidRequestBody, "invalid request body")
			return
		}

		inquiry, err := svc.Submit(r.Context(), app.SubmitInquiryInput{
			ProductID:     chi.URLParam(r, "productID"),
			Type:          domain.InquiryType(req.InquiryType),
			CustomerName:  req.CustomerName,
			CustomerEmail: req.CustomerEmail,
			CustomerPhone: req.CustomerPhone,
			OfferAmount:   req.OfferAmount,
			ShippingZip:   req.ShippingZip,
			Message:       req.Message,
		})
		if err != nil {
			writeDomainError(w, err)
			return
		}

		resp := submitInquiryResponse{
			inquiryResponse: toInquiryResponse(inquiry),
			Message:         confirmations[inquiry.Type],
		}
		writeJSON(w, http.StatusCreated, resp)
	}
}
