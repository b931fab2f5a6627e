package auth

import (
	"errors"
	"net/http"

	"github.com/MrLamegame/Anderson-CVI-News/internal/model"
)

// ErrPasswordMismatch is returned when the confirmation does not match.
var ErrPasswordMismatch = errors.New("passwords do not match")

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (l *LoginRequest) Bind(r *http.Request) error {
	return nil
}

type RegisterRequest struct {
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

func (rr *RegisterRequest) Bind(r *http.Request) error {
	if rr.Password != rr.ConfirmPassword {
		return ErrPasswordMismatch
	}

	return nil
}

// User returns the account to register. IsAdmin is decided by the store.
func (rr *RegisterRequest) User() model.User {
	return model.User{
		FirstName: rr.FirstName,
		LastName:  rr.LastName,
		Email:     rr.Email,
		Password:  rr.Password,
	}
}
