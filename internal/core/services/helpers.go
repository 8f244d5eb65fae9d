package services

import (
	"errors"

	"github.com/SscSPs/news_management_app/internal/apperrors"
	"github.com/SscSPs/news_management_app/internal/core/domain"
)

func isNotFound(err error) bool {
	return errors.Is(err, apperrors.ErrNotFound)
}

// requireAdmin denies every role but Admin.
func requireAdmin(actor domain.Actor, operation string) error {
	if actor.Role != domain.RoleAdmin {
		return apperrors.Deny(apperrors.ErrForbidden, apperrors.ReasonRole, "Only Admin can %s.", operation)
	}
	return nil
}
