package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/seveneightfive/warehouse-414-vintage-finds/internal/app"
	"github.com/seveneightfive/warehouse-414-vintage-finds/internal/domain"
)

// TaxonomyEditor covers CRUD over the lookup vocabularies.
type TaxonomyEditor interface {
	ListTaxonomyEntries(ctx context.Context, kind domain.TaxonomyKind) ([]domain.TaxonomyEntry, error)
	CreateTaxonomyEntry(ctx context.Context, kind domain.TaxonomyKind, in app.TaxonomyInput) (domain.TaxonomyEntry, error)
	UpdateTaxonomyEntry(ctx context.Context, kind domain.TaxonomyKind, entryID string, in app.TaxonomyInput) (domain.TaxonomyEntry, error)
	DeleteTaxonomyEntry(ctx context.Context, kind domain.TaxonomyKind, entryID string) error
}

type taxonomyRequest struct {
	Name     string `json:"name"`
	Slug     string `json:"slug,omitempty"`
	Code     string `json:"code,omitempty"`
	HexValue string `json:"hex_value,omitempty"`
}

func taxonomyKind(r *http.Request) domain.TaxonomyKind {
	return domain.TaxonomyKind(chi.URLParam(r, "kind"))
}

func HandleListTaxonomy(svc TaxonomyEditor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entries, err := svc.ListTaxonomyEntries(r.Context(), taxonomyKind(r))
		if err != nil {
			writeDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toTaxonomyResponses(entries))
	}
}

func HandleCreateTaxonomy(svc TaxonomyEditor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req taxonomyRequest
		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, codeInvalidRequestBody, "invalid request body")
			return
		}

		entry, err := svc.CreateTaxonomyEntry(r.Context(), taxonomyKind(r), app.TaxonomyInput{
			Name:     req.Name,
			Slug:     req.Slug,
			Code:     req.Code,
			HexValue: req.HexValue,
		})
		if err != nil {
			writeDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, toTaxonomyResponse(entry))
	}
}

func HandleUpdateTaxonomy(svc TaxonomyEditor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req taxonomyRequest
		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, codeInvalidRequestBody, "invalid request body")
			return
		}

		entry, err := svc.UpdateTaxonomyEntry(r.Context(), taxonomyKind(r), chi.URLParam(r, "entryID"), app.TaxonomyInput{
			Name:     req.Name,
			Slug:     req.Slug,
			Code:     req.Code,
			HexValue: req.HexValue,
		})
		if err != nil {
			writeDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toTaxonomyResponse(entry))
	}
}

func HandleDeleteTaxonomy(svc TaxonomyEditor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.DeleteTaxonomyEntry(r.Context(), taxonomyKind(r), chi.URLParam(r, "entryID")); err != nil {
			writeDomainError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
