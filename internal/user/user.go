package user

import "time"

type User struct {
	ID           string
	UserName     string
	Email        string
	PasswordHash string
	FirstName    string
	LastName     string
	Avatar       *string
	Bio          *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// PublicUser is the externally visible shape of a user. The password hash
// never leaves this package.
type PublicUser struct {
	ID        string
	UserName  string
	Email     string
	FirstName string
	LastName  string
	Avatar    *string
	Bio       *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (u *User) Public() PublicUser {
	return PublicUser{
		ID:        u.ID,
		UserName:  u.UserName,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Avatar:    u.Avatar,
		Bio:       u.Bio,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
