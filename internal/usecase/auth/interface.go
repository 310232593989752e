package auth

import (
	"context"

	domain "taskflow/internal/domain/user"
)

// Usecase defines the interface for account business logic operations.
type Usecase interface {
	Register(ctx context.Context, in RegisterRequest) (*AuthResponse, error)
	Login(ctx context.Context, in LoginRequest) (*AuthResponse, error)
	CheckUser(ctx context.Context, authorizationHeader string) (*domain.User, error)
	GetUserByID(ctx context.Context, id int64) (*domain.User, error)
	EditUser(ctx context.Context, actorID int64, in EditUserRequest) error
}

// Repository defines the interface for user data access operations.
// It abstracts the data layer so the persistent implementation and the
// cache-aside wrapper can be used interchangeably.
type Repository interface {
	// Create inserts a new user and returns its id. Returns
	// user.ErrDuplicateEmail when the unique email index is violated.
	Create(ctx context.Context, u *domain.User) (int64, error)

	// GetByID retrieves a user by id. Returns user.ErrNotFound when absent.
	GetByID(ctx context.Context, id int64) (*domain.User, error)

	// GetByEmail retrieves a user by email, including the password hash.
	// Returns (nil, nil) when no user has that email.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)

	// UpdateFields applies a partial update touching only the given columns.
	UpdateFields(ctx context.Context, id int64, fields map[string]any) error
}
