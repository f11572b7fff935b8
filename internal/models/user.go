// internal/models/user.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// User is a profile mirrored from the external identity provider. The uid
// is the provider's stable id and, together with the email, determines
// record identity. Role, status, email, phone and createdAt are written
// only on first insert; subsequent upserts refresh the mutable fields.
type User struct {
	ID          bson.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	UID         string        `bson:"uid" json:"uid"`
	Name        string        `bson:"name" json:"name"`
	PhotoURL    string        `bson:"photoURL" json:"photoURL"`
	Email       string        `bson:"email" json:"email"`
	Phone       *string       `bson:"phone" json:"phone"`
	Role        UserRole      `bson:"role" json:"role"`
	Status      UserStatus    `bson:"status" json:"status"`
	CreatedAt   time.Time     `bson:"createdAt" json:"createdAt"`
	LastLoginAt time.Time     `bson:"lastLoginAt" json:"lastLoginAt"`
}

type UpsertUserRequest struct {
	UID         string     `json:"uid" validate:"required"`
	Email       string     `json:"email" validate:"required"`
	Name        string     `json:"name"`
	PhotoURL    string     `json:"photoURL"`
	Phone       *string    `json:"phone"`
	CreatedAt   *time.Time `json:"createdAt"`
	LastLoginAt *time.Time `json:"lastLoginAt"`
}

// UserUpsert is the normalized write handed to the store. The store applies
// Set on every write and Insert only when the uid is seen for the first
// time, in a single atomic upsert.
type UserUpsert struct {
	UID         string
	Name        string
	PhotoURL    string
	LastLoginAt time.Time

	Email     string
	Phone     *string
	Role      UserRole
	Status    UserStatus
	CreatedAt time.Time
}
