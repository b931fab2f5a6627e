package view

import "github.com/MrLamegame/Anderson-CVI-News/internal/model"

// AccountMenu is what the navigation shows for the current visitor.
type AccountMenu struct {
	LoggedIn   bool   `json:"loggedIn"`
	Label      string `json:"label"`
	AdminPanel bool   `json:"adminPanel"`
}

// Account builds the account menu for u; a nil u is an anonymous visitor.
func Account(u *model.User) AccountMenu {
	if u == nil {
		return AccountMenu{Label: "Login"}
	}

	return AccountMenu{
		LoggedIn:   true,
		Label:      u.FirstName,
		AdminPanel: u.IsAdmin,
	}
}
