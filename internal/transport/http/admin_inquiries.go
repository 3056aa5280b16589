package http

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/seveneightfive/warehouse-414-vintage-finds/internal/domain"
)

// InquiryReviewer covers the staff side of the inquiry inbox.
type InquiryReviewer interface {
	ListInquiries(ctx context.Context, filter domain.InquiryFilter) ([]domain.Inquiry, error)
	Approve(ctx context.Context, inquiryID string) (domain.Inquiry, error)
	Decline(ctx context.Context, inquiryID string) (domain.Inquiry, error)
	MarkRead(ctx context.Context, inquiryID string) error
}

// HandleListInquiries lists inbox entries, optionally narrowed by
// ?type=question|offer|purchase and ?status=pending|approved|declined.
func HandleListInquiries(svc InquiryReviewer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		inquiries, err := svc.ListInquiries(r.Context(), domain.InquiryFilter{
			Type:   domain.InquiryType(q.Get("type")),
			Status: domain.InquiryStatus(q.Get("status")),
		})
		if err != nil {
			writeDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toInquiryResponses(inquiries))
	}
}

// HandleApproveInquiry accepts a pending offer or purchase request.
func HandleApproveInquiry(svc InquiryReviewer) http.HandlerFunc {
	return inquiryTransition(svc.Approve)
}

// HandleDeclineInquiry declines a pending offer or purchase request.
func HandleDeclineInquiry(svc InquiryReviewer) http.HandlerFunc {
	return inquiryTransition(svc.Decline)
}

func inquiryTransition(fn func(context.Context, string) (domain.Inquiry, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		inquiry, err := fn(r.Context(), chi.URLParam(r, "inquiryID"))
		if err != nil {
			writeDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toInquiryResponse(inquiry))
	}
}

// HandleMarkInquiryRead clears an entry from the unread counters.
func HandleMarkInquiryRead(svc InquiryReviewer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.MarkRead(r.Context(), chi.URLParam(r, "inquiryID")); err != nil {
			writeDomainError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
