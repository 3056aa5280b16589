package http

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/seveneightfive/warehouse-414-vintage-finds/internal/domain"
)

// TokenIssuer verifies staff credentials and mints a bearer token.
type TokenIssuer interface {
	Login(email, password string) (string, error)
}

// TokenVerifier validates a bearer token and returns the staff identity.
type TokenVerifier interface {
	Verify(token string) (string, error)
}

// StatsReader serves the dashboard counters.
type StatsReader interface {
	DashboardStats(ctx context.Context) (domain.DashboardStats, error)
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

// HandleAdminLogin exchanges staff credentials for a bearer token.
func HandleAdminLogin(svc TokenIssuer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, codeInvalidRequestBody, "invalid request body")
			return
		}

		token, err := svc.Login(req.Email, req.Password)
		if err != nil {
			writeDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, loginResponse{Token: token})
	}
}

// RequireAdmin gates the back-office routes behind a valid bearer token.
func RequireAdmin(verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				writeError(w, http.StatusUnauthorized, codeUnauthorized, "missing bearer token")
				return
			}
			if _, err := verifier.Verify(token); err != nil {
				writeError(w, http.StatusUnauthorized, codeUnauthorized, "invalid bearer token")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

type statsResponse struct {
	Products        int `json:"products"`
	PendingHolds    int `json:"pending_holds"`
	UnreadOffers    int `json:"unread_offers"`
	UnreadInquiries int `json:"unread_inquiries"`
}

// HandleAdminStats returns the dashboard counters.
func HandleAdminStats(svc StatsReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats, err := svc.DashboardStats(r.Context())
		if err != nil {
			writeDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, statsResponse{
			Products:        stats.Products,
			PendingHolds:    stats.PendingHolds,
			UnreadOffers:    stats.UnreadOffers,
			UnreadInquiries: stats.UnreadInquiries,
		})
	}
}
