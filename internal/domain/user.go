package domain

// User represents an authenticated user of the system.
type User struct {
	ID           int64
	Username     string
	PasswordHash string
}
