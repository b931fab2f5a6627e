package auth

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/MrLamegame/Anderson-CVI-News/internal/errresponse"
	"github.com/MrLamegame/Anderson-CVI-News/internal/logging"
	"github.com/MrLamegame/Anderson-CVI-News/internal/metrics"
	"github.com/MrLamegame/Anderson-CVI-News/internal/model"
	"github.com/MrLamegame/Anderson-CVI-News/internal/notice"
	"github.com/MrLamegame/Anderson-CVI-News/internal/session"
	"github.com/MrLamegame/Anderson-CVI-News/internal/user"
	"github.com/MrLamegame/Anderson-CVI-News/internal/userpayload"
	"github.com/MrLamegame/Anderson-CVI-News/internal/view"
)

// API handles logging in and out and registering accounts. It expects
// session.Cookies.Middleware to run first.
type API struct {
	users   *user.Store
	metrics *metrics.Instruments
}

func NewAPI(users *user.Store, m *metrics.Instruments) *API {
	return &API{users: users, metrics: m}
}

// Mount adds the auth routes to r.
func (a *API) Mount(r chi.Router) {
	r.Post("/login", a.Login)       // POST /login
	r.Post("/logout", a.Logout)     // POST /logout
	r.Post("/register", a.Register) // POST /register
	r.Get("/account", a.Account)    // GET /account
}

// Response acknowledges an auth action and tells the front end where to go.
type Response struct {
	User     *userpayload.UserPayload `json:"user,omitempty"`
	Redirect string                   `json:"redirect,omitempty"`
	Notice   *notice.Notice           `json:"notice"`
}

func (rd *Response) Render(w http.ResponseWriter, r *http.Request) error {
	return nil
}

type AccountResponse struct {
	view.AccountMenu
}

func (rd *AccountResponse) Render(w http.ResponseWriter, r *http.Request) error {
	return nil
}

func (a *API) Login(w http.ResponseWriter, r *http.Request) {
	data := &LoginRequest{}
	if err := render.Bind(r, data); err != nil {
		respond(w, r, errresponse.ErrInvalidRequest(err))

		return
	}

	u, err := session.FromContext(r.Context()).Login(data.Email, data.Password)
	if err != nil {
		a.metrics.Login(r.Context(), "invalid")
		respond(w, r, errresponse.ErrInvalidCredentials(err).WithNotice(notice.InvalidCredentials))

		return
	}
	if err := session.Save(w, r); err != nil {
		logging.FromContext(r.Context()).Errorw("save session", "error", err)
		respond(w, r, errresponse.ErrInternal(err))

		return
	}
	a.metrics.Login(r.Context(), "ok")

	respond(w, r, &Response{
		User:     userpayload.NewUserPayloadResponse(&u),
		Redirect: session.Destination(u),
		Notice:   notice.Successf("%s", notice.LoginSucceeded),
	})
}

func (a *API) Logout(w http.ResponseWriter, r *http.Request) {
	session.FromContext(r.Context()).Logout()
	if err := session.Save(w, r); err != nil {
		logging.FromContext(r.Context()).Errorw("save session", "error", err)
		respond(w, r, errresponse.ErrInternal(err))

		return
	}

	respond(w, r, &Response{Redirect: "/", Notice: notice.Successf("%s", notice.LoggedOut)})
}

func (a *API) Register(w http.ResponseWriter, r *http.Request) {
	data := &RegisterRequest{}
	if err := render.Bind(r, data); err != nil {
		a.metrics.Registration(r.Context(), "invalid")
		resp := errresponse.ErrInvalidRequest(err)
		if errors.Is(err, ErrPasswordMismatch) {
			resp = resp.WithNotice(notice.PasswordMismatch)
		}
		respond(w, r, resp)

		return
	}

	u, err := a.users.Register(data.User())
	if errors.Is(err, model.ErrDuplicateEmail) {
		a.metrics.Registration(r.Context(), "duplicate")
		respond(w, r, errresponse.ErrConflict(err).WithNotice(notice.DuplicateEmail))

		return
	}
	if err != nil {
		respond(w, r, errresponse.ErrInternal(err))

		return
	}
	a.metrics.Registration(r.Context(), "ok")
	logging.FromContext(r.Context()).Infow("account registered", "id", u.ID, "admin", u.IsAdmin)

	render.Status(r, http.StatusCreated)
	respond(w, r, &Response{
		User:     userpayload.NewUserPayloadResponse(&u),
		Redirect: "/login",
		Notice:   notice.Successf("%s", notice.AccountCreated),
	})
}

// Account returns the navigation's account menu for the current visitor.
func (a *API) Account(w http.ResponseWriter, r *http.Request) {
	var current *model.User
	if u, ok := session.FromContext(r.Context()).CurrentUser(); ok {
		current = &u
	}

	respond(w, r, &AccountResponse{AccountMenu: view.Account(current)})
}

func respond(w http.ResponseWriter, r *http.Request, v render.Renderer) {
	if err := render.Render(w, r, v); err != nil {
		logging.FromContext(r.Context()).Errorw("render response", "error", err)
	}
}
