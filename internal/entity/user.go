package entity

import "github.com/gofrs/uuid/v5"

// User is the identity returned by the external auth service. The document
// service only forwards it into the request context.
type User struct {
	ID        uuid.UUID `json:"id"`
	LastName  string    `json:"lastName"`
	FirstName string    `json:"firstName"`
	Email     string    `json:"email"`
	Role      UserRole  `json:"role"`
}

type UserRole struct {
	ID   uuid.UUID `json:"role_id"`
	Name string    `json:"role_name"`
}
