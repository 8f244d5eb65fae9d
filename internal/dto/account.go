package dto

import (
	"time"

	"github.com/SscSPs/news_management_app/internal/core/domain"
)

// CreateAccountRequest defines the data needed to provision a new account.
type CreateAccountRequest struct {
	Name     string      `json:"name" binding:"required,max=100"`
	Email    string      `json:"email" binding:"required,email"`
	Password string      `json:"password" binding:"required,min=8"`
	Role     domain.Role `json:"role" binding:"required,oneof=ADMIN STAFF"`
}

// UpdateAccountRequest defines the data allowed for updating an account.
// Only the role is updatable.
type UpdateAccountRequest struct {
	Role domain.Role `json:"role" binding:"required,oneof=ADMIN STAFF"`
}

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	AccountID     int         `json:"accountID"`
	Name          string      `json:"name"`
	Email         string      `json:"email"`
	Role          domain.Role `json:"role"`
	AvatarURL     string      `json:"avatarURL,omitempty"`
	GoogleLinked  bool        `json:"googleLinked"`
	CreatedAt     time.Time   `json:"createdAt"`
	LastUpdatedAt time.Time   `json:"lastUpdatedAt"`
}

// ToAccountResponse converts a domain.Account to AccountResponse DTO
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:     acc.AccountID,
		Name:          acc.Name,
		Email:         acc.Email,
		Role:          acc.Role,
		AvatarURL:     acc.AvatarURL,
		GoogleLinked:  acc.GoogleID != nil,
		CreatedAt:     acc.CreatedAt,
		LastUpdatedAt: acc.LastUpdatedAt,
	}
}

// ToListAccountResponse converts a slice of domain.Account to a slice of AccountResponse DTOs
func ToListAccountResponse(accounts []domain.Account) []AccountResponse {
	res := make([]AccountResponse, len(accounts))
	for i := range accounts {
		res[i] = ToAccountResponse(&accounts[i])
	}
	return res
}

// ListAccountsParams defines query parameters for listing accounts.
type ListAccountsParams struct {
	Search string `form:"q"`
	Limit  int    `form:"limit,default=20" binding:"min=0,max=200"`
	Offset int    `form:"offset,default=0" binding:"min=0"`
}

// ListAccountsResponse wraps the list of accounts.
type ListAccountsResponse struct {
	Accounts []AccountResponse `json:"accounts"`
}
