package domain

// Account is a system account. Role is the only authorization attribute.
type Account struct {
	AccountID    int     `json:"accountID"`
	Name         string  `json:"name"`
	Email        string  `json:"email"`
	Role         Role    `json:"role"`
	PasswordHash *string `json:"-"`
	GoogleID     *string `json:"-"`
	AvatarURL    string  `json:"avatarURL,omitempty"`
	AuditFields
	SoftDelete
}

// Actor returns the workflow identity of the account.
func (a *Account) Actor() Actor {
	return Actor{Role: a.Role, AccountID: a.AccountID}
}

// GoogleUserInfo is the profile returned by the Google userinfo endpoint.
type GoogleUserInfo struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	VerifiedEmail bool   `json:"verified_email"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
}
