package userpayload

import (
	"net/http"

	"github.com/go-chi/render"

	"github.com/MrLamegame/Anderson-CVI-News/internal/model"
)

//--
// Response payloads for accounts.
//--

type UserPayload struct {
	*model.User

	// shadows User.Password so it is never written out
	Password string `json:"password,omitempty"`

	Role string `json:"role"`
}

func NewUserPayloadResponse(user *model.User) *UserPayload {
	u := &UserPayload{User: user, Role: "Regular User"}
	if user != nil && user.IsAdmin {
		u.Role = "Admin"
	}

	return u
}

func NewUserListResponse(users []model.User) []render.Renderer {
	list := []render.Renderer{}
	for i := range users {
		list = append(list, NewUserPayloadResponse(&users[i]))
	}

	return list
}

func (u *UserPayload) Render(w http.ResponseWriter, r *http.Request) error {
	u.Password = ""

	return nil
}
