package repo

import "github.com/AnkitPandit120/DukaanMate1/internal/models"

// UserRepository defines the interface for user data operations.
type UserRepository interface {
	CreateUser(user models.User) (models.User, error)
	GetByUsername(username string) (models.User, error)
}
