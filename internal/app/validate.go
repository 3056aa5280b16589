package app

import (
	"net/mail"
	"strings"

	"github.com/seveneightfive/warehouse-414-vintage-finds/internal/domain"
)

// validateContact checks the name/email pair required by every
// customer-facing submission.
func validateContact(name, email string) error {
	if strings.TrimSpace(name) == "" {
		return domain.ErrNameRequired
	}
	if strings.TrimSpace(email) == "" {
		return domain.ErrEmailRequired
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return domain.ErrInvalidEmail
	}
	return nil
}
