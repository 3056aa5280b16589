package domain

import "time"

// SpecSheetDownload is a pure audit record of who requested a spec sheet
// and whether the price was included. It has no lifecycle effect.
type SpecSheetDownload struct {
	ID            string
	ProductID     string
	CustomerName  string
	CustomerEmail string
	IncludePrice  bool
	CreatedAt     time.Time
}
