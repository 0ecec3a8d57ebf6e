package repository

import (
	"context"
	"errors"
	"sync"

	"user-service/internal/entity"
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrDuplicateID  = errors.New("user id already exists")
)

const defaultPageSize = 10

// UserRepository holds the user records in memory, in insertion order.
// A single instance is created at startup and injected into the service;
// the mutex makes concurrent requests safe to interleave.
type UserRepository struct {
	mu    sync.RWMutex
	users []entity.User
}

// NewUserRepository creates an empty repository.
func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

// List returns the page of users starting at offset (page-1)*pageSize.
// Values below 1 fall back to page 1 and the default page size, and a page
// past the end yields an empty slice.
func (r *UserRepository) List(ctx context.Context, page, pageSize int) []entity.User {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = defaultPageSize
	}

	offset := (page - 1) * pageSize
	if offset >= len(r.users) {
		return []entity.User{}
	}

	end := offset + pageSize
	if end > len(r.users) {
		end = len(r.users)
	}

	out := make([]entity.User, end-offset)
	copy(out, r.users[offset:end])
	return out
}

// Get returns the first user with the given ID, or ErrUserNotFound.
func (r *UserRepository) Get(ctx context.Context, id int) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.ID == id {
			user := u
			return &user, nil
		}
	}
	return nil, ErrUserNotFound
}

// Add appends the user, rejecting IDs that are already present.
func (r *UserRepository) Add(ctx context.Context, user entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.ID == user.ID {
			return ErrDuplicateID
		}
	}
	r.users = append(r.users, user)
	return nil
}

// Update replaces the record with the given ID in place, keeping its
// position. The stored ID is forced to the id argument so a mismatched
// body cannot re-key the record.
func (r *UserRepository) Update(ctx context.Context, id int, user entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, u := range r.users {
		if u.ID == id {
			user.ID = id
			r.users[i] = user
			return nil
		}
	}
	return ErrUserNotFound
}

// Delete removes every record with the given ID and returns
// ErrUserNotFound when nothing matched.
func (r *UserRepository) Delete(ctx context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	kept := r.users[:0]
	removed := 0
	for _, u := range r.users {
		if u.ID == id {
			removed++
			continue
		}
		kept = append(kept, u)
	}
	r.users = kept

	if removed == 0 {
		return ErrUserNotFound
	}
	return nil
}

// Len returns the number of stored records.
func (r *UserRepository) Len(ctx context.Context) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.users)
}
