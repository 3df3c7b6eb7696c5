package models

import "time"

// User represents an account entity used for authentication and authorization.
// Accounts are created either through local registration or by an OAuth
// strategy on first login. Sensitive fields must never be exposed outside
// trusted boundaries.
type User struct {
	// UserID is the unique identifier of the user document.
	UserID string `json:"id" bson:"_id"`

	// Email is the unique address the user authenticates with.
	Email string `json:"email" bson:"email"`

	// Name is the display name of the user.
	// It is non-sensitive and may be shown in UI.
	Name string `json:"name" bson:"name"`

	// PasswordHash stores the bcrypt digest of the user's password.
	// Empty for accounts created by an OAuth strategy.
	// Never serialized to JSON.
	PasswordHash string `json:"-" bson:"password_hash"`

	// Provider names the authentication strategy that created the account:
	// "local", "google" or "facebook".
	Provider string `json:"provider" bson:"provider"`

	// ProviderID is the subject identifier assigned by the external
	// provider. Empty for local accounts.
	ProviderID string `json:"-" bson:"provider_id,omitempty"`

	// AvatarURL is an optional profile picture location, either supplied
	// by an OAuth provider or produced by the image-host adapter.
	AvatarURL string `json:"avatar_url,omitempty" bson:"avatar_url,omitempty"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

// Credentials carries the payload of local register/login requests.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name,omitempty"`
}
