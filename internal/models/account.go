package models

// Account is a row of the accounts table.
type Account struct {
	AccountID    int     `db:"account_id"`
	Name         string  `db:"name"`
	Email        string  `db:"email"`
	Role         string  `db:"role"`
	PasswordHash *string `db:"password_hash"`
	GoogleID     *string `db:"google_id"`
	AvatarURL    string  `db:"avatar_url"`
	AuditFields
	SoftDelete
}
