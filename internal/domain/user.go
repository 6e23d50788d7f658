package domain

import "time"

// RoleCustomer is assigned when a registration does not specify a role.
const RoleCustomer = "CLIENTE"

// User represents a registered account. PasswordHash is never serialized.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Name         string    `json:"name"`
	Lastname     string    `json:"lastname"`
	Role         string    `json:"role"`
	Address      string    `json:"address"`
	Phone        string    `json:"phone,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}
