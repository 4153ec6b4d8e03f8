package models

type Account struct {
	ID           string `bson:"_id,omitempty"`
	Name         string `bson:"name"`
	Email        string `bson:"email"`
	PasswordHash string `bson:"passwordHash"`
	Role         string `bson:"role"`
	TimeModel    `bson:",inline"`
}

// AccountClaims is what a verified session token resolves to.
type AccountClaims struct {
	AccountID string
	Role      string
}
