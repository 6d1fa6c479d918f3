package repositories

import (
	"context"
	"strings"

	"github.com/alawael/platform/internal/app/models"
	"github.com/alawael/platform/internal/storage"
)

// UserRepository handles storage operations for registered users.
type UserRepository struct {
	store storage.Store
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(store storage.Store) *UserRepository {
	return &UserRepository{store: store}
}

// GetAll retrieves all registered users.
func (r *UserRepository) GetAll(ctx context.Context) ([]models.User, error) {
	return getList[models.User](ctx, r.store, storage.KeyUsers)
}

// FindByID retrieves a user by id, or nil if absent.
func (r *UserRepository) FindByID(ctx context.Context, id string) (*models.User, error) {
	users, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].ID == id {
			return &users[i], nil
		}
	}
	return nil, nil
}

// FindByEmail retrieves a user by email (case-insensitive), or nil.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	users, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if strings.EqualFold(users[i].Email, email) {
			return &users[i], nil
		}
	}
	return nil, nil
}

// Create prepends a new user record and persists the whole collection.
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	users, err := r.GetAll(ctx)
	if err != nil {
		return err
	}
	users = append([]models.User{*user}, users...)
	return saveList(ctx, r.store, storage.KeyUsers, users)
}

// Update replaces the stored record matching the user's id. Unknown ids are
// a silent no-op write.
func (r *UserRepository) Update(ctx context.Context, user *models.User) error {
	users, err := r.GetAll(ctx)
	if err != nil {
		return err
	}
	for i := range users {
		if users[i].ID == user.ID {
			users[i] = *user
			break
		}
	}
	return saveList(ctx, r.store, storage.KeyUsers, users)
}
