package repo

import (
	"errors"

	"github.com/rogerio-castellano/product-catalog/internal/models"
)

type UserRepository interface {
	GetByUsername(username string) (models.User, error)
	CreateUser(u models.User) (models.User, error)
}

var (
	// ErrUserNotFound is returned when no user matches the lookup.
	ErrUserNotFound = errors.New("user not found")
	// ErrDuplicatedValueUnique is returned when an insert violates a
	// uniqueness constraint.
	ErrDuplicatedValueUnique = errors.New("duplicated value for unique column")
)
