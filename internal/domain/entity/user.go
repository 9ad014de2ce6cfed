package entity

import "time"

// User is a customer account.
type User struct {
	ID           string    // Opaque identifier assigned by the store on creation.
	LastName     string    // Family name.
	FirstName    string    // Given name.
	Phone        string    // Contact phone number.
	Email        string    // Login identifier, unique across users.
	PasswordHash string    // bcrypt digest of the credential; never the plaintext.
	Cart         []string  // Ordered product IDs. Soft references, not owned copies.
	CreatedAt    time.Time // Timestamp of when this account was created.
	UpdatedAt    time.Time // Timestamp of the last modification.
}
