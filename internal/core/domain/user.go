package domain

// User owns zero or more transactions. Email is unique.
type User struct {
	UserID       string `json:"userID"` // Primary Key (UUID)
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	AuditFields
}
