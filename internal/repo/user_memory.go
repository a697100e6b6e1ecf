package repo

import "github.com/AnkitPandit120/DukaanMate1/internal/models"

// InMemoryUserRepository is an in-memory implementation of UserRepository.
type InMemoryUserRepository struct {
	users  []models.User
	nextID int
}

// NewInMemoryUserRepository creates a new instance of InMemoryUserRepository.
func NewInMemoryUserRepository() *InMemoryUserRepository {
	return &InMemoryUserRepository{
		users:  []models.User{},
		nextID: 1,
	}
}

// CreateUser adds a new user to the repository.
func (r *InMemoryUserRepository) CreateUser(user models.User) (models.User, error) {
	for _, u := range r.users {
		if u.Username == user.Username {
			return models.User{}, ErrDuplicatedValueUnique
		}
	}
	user.ID = r.nextID
	r.nextID++
	r.users = append(r.users, user)
	return user, nil
}

// GetByUsername retrieves a user by username.
func (r *InMemoryUserRepository) GetByUsername(username string) (models.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return models.User{}, ErrUserNotFound
}

func (r *InMemoryUserRepository) Clear() {
	r.users = []models.User{}
	r.nextID = 1
}
