package models

// User is the row shape of the users table.
type User struct {
	UserID       string `db:"user_id"`
	Name         string `db:"name"`
	Email        string `db:"email"` // unique on lower(email)
	PasswordHash string `db:"password_hash"`
	AuditFields
}
