package models

// User is the account record returned by the expense API.
// Timestamps are kept exactly as the server formats them.
type User struct {
	// ID is the server-assigned identifier of the user.
	ID int64 `json:"id"`

	// Name is the display name of the user.
	Name string `json:"name"`

	// Email is the unique login e-mail of the user.
	Email string `json:"email"`

	// EmailVerifiedAt is set once the user has confirmed the e-mail address.
	// It is nil for unverified accounts.
	EmailVerifiedAt *string `json:"email_verified_at,omitempty"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt string `json:"created_at"`

	// UpdatedAt is the timestamp of the last account modification.
	UpdatedAt string `json:"updated_at"`
}

// IsZero reports whether u carries no identifying data at all.
func (u User) IsZero() bool {
	return u.ID == 0 && u.Email == "" && u.Name == ""
}

// AuthPair is the normalized result of a login or registration: a bearer
// token together with the user it belongs to.
type AuthPair struct {
	Token string
	User  User
}
