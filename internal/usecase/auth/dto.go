package auth

// RegisterRequest carries the fields of a registration attempt.
type RegisterRequest struct {
	Name            string
	Email           string
	Password        string
	ConfirmPassword string
}

// LoginRequest carries the fields of a login attempt.
type LoginRequest struct {
	Email    string
	Password string
}

// EditUserRequest carries a profile edit. Password and ConfirmPassword are
// optional; when both are present and equal the password is replaced.
type EditUserRequest struct {
	Name            string
	Email           string
	Password        string
	ConfirmPassword string
}

// AuthResponse is returned on successful registration or login.
type AuthResponse struct {
	UserID int64
	Token  string
}
