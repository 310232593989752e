package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	domain "taskflow/internal/domain/user"
	apperrors "taskflow/pkg/errors"
	"taskflow/pkg/security"
	"taskflow/pkg/token"
)

// Service implements the account business logic: registration, login,
// session probing and profile edits. It holds no state of its own; all state
// lives in the repository.
type Service struct {
	repo     Repository
	hasher   *security.Hasher
	tokens   *token.Manager
	log      *zap.Logger
	validate *validator.Validate
}

// New creates the account service with its collaborators.
func New(repo Repository, hasher *security.Hasher, tokens *token.Manager, log *zap.Logger) *Service {
	return &Service{
		repo:     repo,
		hasher:   hasher,
		tokens:   tokens,
		log:      log,
		validate: validator.New(),
	}
}

// validEmail checks the email against the standard address grammar.
func (s *Service) validEmail(email string) bool {
	return s.validate.Var(email, "required,email") == nil
}

// Register validates the registration fields in order, short-circuiting on
// the first failure, then creates the user with a bcrypt-hashed password and
// issues a session token.
func (s *Service) Register(ctx context.Context, in RegisterRequest) (*AuthResponse, error) {
	s.log.Info("registering user", zap.String("email", in.Email))

	switch {
	case in.Name == "":
		return nil, apperrors.ErrMissingName
	case in.Email == "":
		return nil, apperrors.ErrMissingEmail
	case !s.validEmail(in.Email):
		return nil, apperrors.ErrInvalidEmail
	case in.Password == "":
		return nil, apperrors.ErrMissingPassword
	case in.ConfirmPassword == "":
		return nil, apperrors.ErrMissingConfirmPassword
	case in.Password != in.ConfirmPassword:
		return nil, apperrors.ErrPasswordMismatch
	}

	// Friendly existence probe. The unique index on email is the actual
	// guarantee; concurrent registrations that both pass this check are
	// caught by Create returning ErrDuplicateEmail.
	existing, err := s.repo.GetByEmail(ctx, in.Email)
	if err != nil {
		s.log.Error("failed to check existing email", zap.String("email", in.Email), zap.Error(err))
		return nil, apperrors.ErrCouldNotCreateUser.WithCause(err)
	}
	if existing != nil {
		s.log.Warn("email already registered", zap.String("email", in.Email))
		return nil, apperrors.ErrUserExists
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		s.log.Error("failed to hash password", zap.Error(err))
		return nil, apperrors.ErrCouldNotCreateUser.WithCause(err)
	}

	id, err := s.repo.Create(ctx, &domain.User{
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: hash,
	})
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) {
			return nil, apperrors.ErrUserExists
		}
		s.log.Error("failed to create user", zap.Error(err))
		return nil, apperrors.ErrCouldNotCreateUser.WithCause(err)
	}

	tok, err := s.tokens.Generate(id, in.Name)
	if err != nil {
		s.log.Error("failed to issue token after registration", zap.Int64("id", id), zap.Error(err))
		return nil, apperrors.ErrCouldNotCreateUser.WithCause(err)
	}

	s.log.Info("user registered", zap.Int64("id", id))
	return &AuthResponse{UserID: id, Token: tok}, nil
}

// Login authenticates a user by email and password and issues a session
// token on success.
func (s *Service) Login(ctx context.Context, in LoginRequest) (*AuthResponse, error) {
	s.log.Info("login attempt", zap.String("email", in.Email))

	switch {
	case in.Email == "":
		return nil, apperrors.ErrMissingEmail
	case !s.validEmail(in.Email):
		return nil, apperrors.ErrInvalidEmail
	case in.Password == "":
		return nil, apperrors.ErrMissingPassword
	}

	u, err := s.repo.GetByEmail(ctx, in.Email)
	if err != nil {
		s.log.Error("failed to look up user for login", zap.String("email", in.Email), zap.Error(err))
		return nil, err
	}
	if u == nil {
		s.log.Warn("login for unknown email", zap.String("email", in.Email))
		return nil, apperrors.ErrUserNotFound
	}

	if err := s.hasher.Compare(u.PasswordHash, in.Password); err != nil {
		s.log.Warn("invalid password", zap.Int64("id", u.ID))
		return nil, apperrors.ErrInvalidPassword
	}

	tok, err := s.tokens.Generate(u.ID, u.Name)
	if err != nil {
		s.log.Error("failed to issue token on login", zap.Int64("id", u.ID), zap.Error(err))
		return nil, err
	}

	s.log.Info("user logged in", zap.Int64("id", u.ID))
	return &AuthResponse{UserID: u.ID, Token: tok}, nil
}

// CheckUser is a session probe. With no credential it returns (nil, nil);
// with a credential it verifies the token and returns the sanitized user.
// An invalid or expired token is an explicit ErrInvalidToken, never a panic.
func (s *Service) CheckUser(ctx context.Context, authorizationHeader string) (*domain.User, error) {
	if authorizationHeader == "" {
		return nil, nil
	}

	raw, ok := bearerToken(authorizationHeader)
	if !ok {
		return nil, apperrors.ErrInvalidToken
	}

	userID, err := s.tokens.Verify(raw)
	if err != nil {
		s.log.Warn("token verification failed", zap.Error(err))
		return nil, apperrors.ErrInvalidToken
	}

	u, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		s.log.Error("failed to load user for session probe", zap.Int64("id", userID), zap.Error(err))
		return nil, err
	}

	return u.Sanitized(), nil
}

// GetUserByID loads a user by id with the password hash stripped.
func (s *Service) GetUserByID(ctx context.Context, id int64) (*domain.User, error) {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		s.log.Error("failed to get user", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}

	return u.Sanitized(), nil
}

// EditUser applies a profile edit for the authenticated actor. The acting
// subject always comes from the verified token, never from a path parameter.
// Changes are persisted as a partial update touching only the edited columns.
func (s *Service) EditUser(ctx context.Context, actorID int64, in EditUserRequest) error {
	s.log.Info("editing user", zap.Int64("id", actorID))

	actor, err := s.repo.GetByID(ctx, actorID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperrors.ErrUserNotFound
		}
		s.log.Error("failed to load user for edit", zap.Int64("id", actorID), zap.Error(err))
		return err
	}

	if in.Name == "" {
		return apperrors.ErrMissingName
	}
	if in.Email == "" {
		return apperrors.ErrMissingEmail
	}

	// A different account already owning the target email is a conflict.
	if in.Email != actor.Email {
		owner, err := s.repo.GetByEmail(ctx, in.Email)
		if err != nil {
			s.log.Error("failed to check email ownership", zap.String("email", in.Email), zap.Error(err))
			return apperrors.ErrCouldNotUpdateUser.WithCause(err)
		}
		if owner != nil && owner.ID != actorID {
			s.log.Warn("email already owned by another account",
				zap.Int64("id", actorID), zap.Int64("owner_id", owner.ID))
			return apperrors.ErrEmailTaken
		}
	}

	if !s.validEmail(in.Email) {
		return apperrors.ErrInvalidEmail
	}

	fields := map[string]any{}
	if in.Name != actor.Name {
		fields["name"] = in.Name
	}
	if in.Email != actor.Email {
		fields["email"] = in.Email
	}

	if in.Password != in.ConfirmPassword {
		return apperrors.ErrPasswordMismatch
	}
	if in.Password != "" {
		hash, err := s.hasher.Hash(in.Password)
		if err != nil {
			s.log.Error("failed to hash new password", zap.Int64("id", actorID), zap.Error(err))
			return apperrors.ErrCouldNotUpdateUser.WithCause(err)
		}
		fields["password_hash"] = hash
	}

	if len(fields) == 0 {
		s.log.Debug("edit changed nothing", zap.Int64("id", actorID))
		return nil
	}

	if err := s.repo.UpdateFields(ctx, actorID, fields); err != nil {
		switch {
		case errors.Is(err, domain.ErrDuplicateEmail):
			return apperrors.ErrEmailTaken
		case errors.Is(err, domain.ErrNotFound):
			return apperrors.ErrUserNotFound
		}
		s.log.Error("failed to persist user edit", zap.Int64("id", actorID), zap.Error(err))
		return apperrors.ErrCouldNotUpdateUser.WithCause(err)
	}

	s.log.Info("user updated", zap.Int64("id", actorID))
	return nil
}

// bearerToken extracts the raw token from an Authorization header value.
func bearerToken(header string) (string, bool) {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}
