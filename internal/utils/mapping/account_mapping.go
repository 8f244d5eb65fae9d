package mapping

import (
	"github.com/SscSPs/news_management_app/internal/core/domain"
	"github.com/SscSPs/news_management_app/internal/models"
)

// ToModelAccount converts a domain Account to a model Account
func ToModelAccount(d domain.Account) models.Account {
	return models.Account{
		AccountID:    d.AccountID,
		Name:         d.Name,
		Email:        d.Email,
		Role:         string(d.Role),
		PasswordHash: d.PasswordHash,
		GoogleID:     d.GoogleID,
		AvatarURL:    d.AvatarURL,
		AuditFields:  ToModelAuditFields(d.AuditFields),
		SoftDelete:   ToModelSoftDelete(d.SoftDelete),
	}
}

// ToDomainAccount converts a model Account to a domain Account
func ToDomainAccount(m models.Account) domain.Account {
	return domain.Account{
		AccountID:    m.AccountID,
		Name:         m.Name,
		Email:        m.Email,
		Role:         domain.Role(m.Role),
		PasswordHash: m.PasswordHash,
		GoogleID:     m.GoogleID,
		AvatarURL:    m.AvatarURL,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
		SoftDelete:   ToDomainSoftDelete(m.SoftDelete),
	}
}

// ToDomainAccountSlice converts a slice of model Accounts to a slice of domain Accounts
func ToDomainAccountSlice(ms []models.Account) []domain.Account {
	ds := make([]domain.Account, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainAccount(m)
	}
	return ds
}
