package entities

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

// User is a registered account. Password always holds the bcrypt hash;
// the plaintext never leaves the registration/login request.
type User struct {
	ID        uint
	CreatedAt time.Time
	UpdatedAt time.Time
	Email     string
	Password  string
}

func NewUser(email, password string) *User {
	return &User{
		Email:    email,
		Password: password,
	}
}

// HashPassword replaces the plaintext password with its bcrypt hash.
func (u *User) HashPassword() error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashedPassword)
	return nil
}

// CheckPassword compares the stored hash against a plaintext candidate.
func (u *User) CheckPassword(password string) error {
	return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password))
}
