package account

import (
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Domain errors recovered into specific HTTP responses by the handler layer.
// Everything else surfaces as an opaque internal failure.
var (
	ErrNotFound       = errors.New("account not found")
	ErrDuplicateEmail = errors.New("email already registered")
	ErrWrongPassword  = errors.New("wrong password")
)

// User is one account document in the "users" collection. Email is the
// natural lookup key and must stay unique; the id is assigned by the store
// on insert and never changes afterwards.
type User struct {
	ID           bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Email        string        `bson:"email" json:"email"`
	FirstName    string        `bson:"firstName" json:"firstName"`
	LastName     string        `bson:"lastName" json:"lastName"`
	PasswordHash string        `bson:"password" json:"-"`
	CreatedAt    time.Time     `bson:"createdAt" json:"createdAt"`
	UpdatedAt    *time.Time    `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

// ProfileChanges carries the mutable fields of an update request. A nil
// field means "leave unchanged". Email is deliberately absent: changing the
// lookup key is not supported on this path.
type ProfileChanges struct {
	FirstName *string
	LastName  *string
	Password  *string
}
