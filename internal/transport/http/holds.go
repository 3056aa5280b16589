package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/seveneightfive/warehouse-414-vintage-finds/internal/app"
	"github.com/seveneightfive/warehouse-414-vintage-finds/internal/domain"
)

// HoldPlacer is the minimal interface needed for the public hold form.
type HoldPlacer interface {
	PlaceHold(ctx context.Context, in app.PlaceHoldInput) (domain.Hold, error)
}

type placeHoldRequest struct {
	CustomerName  string `json:"customer_name"`
	CustomerEmail string `json:"customer_email"`
	CustomerPhone string `json:"customer_phone,omitempty"`
	Notes         string `json:"notes,omitempty"`
}

type placeHoldResponse struct {
	holdResponse
	Message string `json:"message"`
}

// HandlePlaceHold returns the handler for customer hold submissions. The
// response message carries the long-form expiry date the storefront shows
// in its confirmation line.
func HandlePlaceHold(svc HoldPlacer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req placeHoldRequest
		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, codeInvalidRequestBody, "invalid request body")
			return
		}

		hold, err := svc.PlaceHold(r.Context(), app.PlaceHoldInput{
			ProductID:     chi.URLParam(r, "productID"),
			CustomerName:  req.CustomerName,
			CustomerEmail: req.CustomerEmail,
			CustomerPhone: req.CustomerPhone,
			Notes:         req.Notes,
		})
		if err != nil {
			writeDomainError(w, err)
			return
		}

		resp := placeHoldResponse{
			holdResponse: toHoldResponse(hold),
			Message: fmt.Sprintf("This item has been placed on hold for you until %s.",
				hold.ExpiresAt.Format("January 2, 2006")),
		}
		writeJSON(w, http.StatusCreated, resp)
	}
}
