package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/seveneightfive/warehouse-414-vintage-finds/internal/app"
)

// SpecSheetGenerator is the minimal interface needed for the spec-sheet
// download form.
type SpecSheetGenerator interface {
	Generate(ctx context.Context, in app.SpecSheetRequest) (app.SpecSheetResult, error)
}

type specSheetRequest struct {
	CustomerName  string `json:"customer_name"`
	CustomerEmail string `json:"customer_email"`
	IncludePrice  *bool  `json:"include_price,omitempty"`
}

// HandleSpecSheet records the download request and streams back the PDF.
// Price is included unless the requester opts out.
func HandleSpecSheet(svc SpecSheetGenerator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req specSheetRequest
		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, codeInvalidRequestBody, "invalid request body")
			return
		}

		includePrice := true
		if req.IncludePrice != nil {
			includePrice = *req.IncludePrice
		}

		result, err := svc.Generate(r.Context(), app.SpecSheetRequest{
			ProductID:     chi.URLParam(r, "productID"),
			CustomerName:  req.CustomerName,
			CustomerEmail: req.CustomerEmail,
			IncludePrice:  includePrice,
		})
		if err != nil {
			writeDomainError(w, err)
			return
		}

		filename := result.Product.SKU
		if filename == "" {
			filename = result.Product.ID
		}

		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename+"-spec-sheet.pdf"))
		w.Header().Set("Content-Length", strconv.Itoa(len(result.PDF)))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(result.PDF)
	}
}
