package http

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/seveneightfive/warehouse-414-vintage-finds/internal/domain"
)

// HoldReviewer covers the staff side of the hold lifecycle.
type HoldReviewer interface {
	ListHolds(ctx context.Context, status domain.HoldStatus) ([]domain.Hold, error)
	Approve(ctx context.Context, holdID string) (domain.Hold, error)
	Decline(ctx context.Context, holdID string) (domain.Hold, error)
	Release(ctx context.Context, holdID string) (domain.Hold, error)
}

// HandleListHolds lists holds for the review queue, optionally filtered by
// ?status=pending|approved|declined|released.
func HandleListHolds(svc HoldReviewer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := domain.HoldStatus(r.URL.Query().Get("status"))
		holds, err := svc.ListHolds(r.Context(), status)
		if err != nil {
			writeDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toHoldResponses(holds))
	}
}

// HandleApproveHold approves a pending hold and marks its product on_hold.
func HandleApproveHold(svc HoldReviewer) http.HandlerFunc {
	return holdTransition(svc.Approve)
}

// HandleDeclineHold declines a pending hold. The product is untouched.
func HandleDeclineHold(svc HoldReviewer) http.HandlerFunc {
	return holdTransition(svc.Decline)
}

// HandleReleaseHold releases an approved hold and returns its product to
// the available pool.
func HandleReleaseHold(svc HoldReviewer) http.HandlerFunc {
	return holdTransition(svc.Release)
}

func holdTransition(fn func(context.Context, string) (domain.Hold, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		hold, err := fn(r.Context(), chi.URLParam(r, "holdID"))
		if err != nil {
			writeDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toHoldResponse(hold))
	}
}
