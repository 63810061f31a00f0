package auth

import (
	"github.com/quadrosga/dndapp/internal/models"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_directory.go github.com/quadrosga/dndapp/internal/services/auth Directory

// Directory resolves members of the group's credential directory. It is an
// interface so a real credential backend can replace the demo set without
// touching callers
type Directory interface {
	// FindByEmail returns the user with the given email, or nil
	FindByEmail(email string) *models.User

	// Authenticate returns the user matching both email and password, or nil
	Authenticate(email, password string) *models.User
}

// StaticDirectory is the closed demo credential set. Matching is
// case-sensitive and exact
type StaticDirectory struct {
	users []*models.User
}

// NewStaticDirectory creates the demo directory
func NewStaticDirectory() *StaticDirectory {
	return &StaticDirectory{
		users: []*models.User{
			{
				Email:    "ana@dnd.com",
				Password: "senha123",
				Name:     "Ana (DM)",
				Role:     models.RoleDM,
			},
			{
				Email:    "carla@dnd.com",
				Password: "senha123",
				Name:     "Carla",
				Role:     models.RolePlayer,
			},
			{
				Email:    "beatriz@dnd.com",
				Password: "senha123",
				Name:     "Beatriz",
				Role:     models.RolePlayer,
			},
		},
	}
}

// FindByEmail returns the user with the given email, or nil
func (d *StaticDirectory) FindByEmail(email string) *models.User {
	for _, u := range d.users {
		if u.Email == email {
			return u
		}
	}
	return nil
}

// Authenticate returns the user matching both email and password, or nil
func (d *StaticDirectory) Authenticate(email, password string) *models.User {
	for _, u := range d.users {
		if u.Email == email && u.Password == password {
			return u
		}
	}
	return nil
}
