package user

import (
	"errors"
	"time"

	userDatamodel "github.com/frahmantamala/shift-roster/internal/core/datamodel/user"
)

type User struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	FullName     string    `json:"full_name"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	ManagerID    *int64    `json:"manager_id,omitempty"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ManagerEntry is the shape the signup form consumes: enough to pick a
// manager by email, nothing more.
type ManagerEntry struct {
	ID       int64  `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
}

// AssociateEntry is a roster row: an associate plus their schedule, if one
// has been defined yet.
type AssociateEntry struct {
	ID       int64              `json:"id"`
	Email    string             `json:"email"`
	FullName string             `json:"full_name"`
	Schedule *AssociateSchedule `json:"schedule,omitempty"`
}

type AssociateSchedule struct {
	Weekoff1   int    `json:"weekoff_1"`
	Weekoff2   int    `json:"weekoff_2"`
	ShiftStart string `json:"shift_start"`
	ShiftEnd   string `json:"shift_end"`
}

var ErrNotFound = errors.New("user not found")

func FromDataModel(u *userDatamodel.User) *User {
	return &User{
		ID:           u.ID,
		Email:        u.Email,
		FullName:     u.FullName,
		PasswordHash: u.PasswordHash,
		Role:         u.Role,
		ManagerID:    u.ManagerID,
		IsActive:     u.IsActive,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

func ToDataModel(u *User) *userDatamodel.User {
	return &userDatamodel.User{
		ID:           u.ID,
		Email:        u.Email,
		FullName:     u.FullName,
		PasswordHash: u.PasswordHash,
		Role:         u.Role,
		ManagerID:    u.ManagerID,
		IsActive:     u.IsActive,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}
