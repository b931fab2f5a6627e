package model

// User data model. Password is an opaque string compared byte for byte.
type User struct {
	ID        int    `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	IsAdmin   bool   `json:"isAdmin"`
}

func (u User) FullName() string {
	return u.FirstName + " " + u.LastName
}
