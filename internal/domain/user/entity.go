package user

// User represents a registered account.
//
// Invariant: a persisted User always has a non-empty Name, a valid and unique
// Email, and a non-empty PasswordHash. The hash never leaves the process; it
// is excluded from JSON so a cached or serialized User cannot leak it.
type User struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
}

// Sanitized returns a copy of the user with the password hash stripped, for
// use in API responses.
func (u *User) Sanitized() *User {
	if u == nil {
		return nil
	}
	return &User{ID: u.ID, Name: u.Name, Email: u.Email}
}
