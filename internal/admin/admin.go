package admin

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/MrLamegame/Anderson-CVI-News/internal/article"
	"github.com/MrLamegame/Anderson-CVI-News/internal/errresponse"
	"github.com/MrLamegame/Anderson-CVI-News/internal/logging"
	"github.com/MrLamegame/Anderson-CVI-News/internal/notice"
	"github.com/MrLamegame/Anderson-CVI-News/internal/session"
	"github.com/MrLamegame/Anderson-CVI-News/internal/user"
	"github.com/MrLamegame/Anderson-CVI-News/internal/userpayload"
)

// Sections of the admin panel, in sidebar order.
var Sections = []string{"create", "manage", "users"}

type handler struct {
	users *user.Store
}

// Router is a completely separate router for administrator routes.
func Router(articles *article.API, users *user.Store) chi.Router {
	h := &handler{users: users}

	r := chi.NewRouter()
	r.Use(AdminOnly)
	r.Get("/", h.index)
	r.Mount("/articles", articles.AdminRoutes())
	r.Get("/accounts", h.listAccounts)
	r.Get("/users/{userID}", h.viewUser)
	r.Delete("/users/{userID}", h.deleteUser)

	return r
}

// AdminOnly middleware restricts access to just administrators. Visitors who
// are not logged in are told to log in; other users are turned away.
func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch access := session.FromContext(r.Context()).RequireAdmin(); access {
		case session.AccessPermit:
			next.ServeHTTP(w, r)
		case session.AccessLogin:
			respond(w, r, errresponse.ErrUnauthorized(notice.LoginRequired))
		default:
			logging.FromContext(r.Context()).Infow("admin access denied", "path", r.URL.Path)
			respond(w, r, errresponse.ErrForbidden(notice.AccessDenied))
		}
	})
}

type IndexResponse struct {
	User     *userpayload.UserPayload `json:"user"`
	Sections []string                 `json:"sections"`
}

func (rd *IndexResponse) Render(w http.ResponseWriter, r *http.Request) error {
	return nil
}

func (h *handler) index(w http.ResponseWriter, r *http.Request) {
	u, _ := session.FromContext(r.Context()).CurrentUser()
	respond(w, r, &IndexResponse{User: userpayload.NewUserPayloadResponse(&u), Sections: Sections})
}

func (h *handler) listAccounts(w http.ResponseWriter, r *http.Request) {
	if err := render.RenderList(w, r, userpayload.NewUserListResponse(h.users.List())); err != nil {
		respond(w, r, errresponse.ErrRender(err))
	}
}

func (h *handler) viewUser(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "userID"))
	if err != nil {
		respond(w, r, errresponse.ErrInvalidRequest(err))

		return
	}

	u, err := h.users.Get(id)
	if err != nil {
		respond(w, r, errresponse.ErrNotFound)

		return
	}

	respond(w, r, userpayload.NewUserPayloadResponse(&u))
}

type DeleteUserResponse struct {
	Notice *notice.Notice `json:"notice"`
}

func (rd *DeleteUserResponse) Render(w http.ResponseWriter, r *http.Request) error {
	return nil
}

// deleteUser reports success without removing the account; user.Store.Delete
// does not delete yet.
func (h *handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "userID"))
	if err != nil {
		respond(w, r, errresponse.ErrInvalidRequest(err))

		return
	}

	if err := h.users.Delete(id); err != nil {
		respond(w, r, errresponse.ErrInvalidRequest(err))

		return
	}
	logging.FromContext(r.Context()).Infow("user deletion requested", "id", id)

	respond(w, r, &DeleteUserResponse{Notice: notice.Successf("%s", notice.UserDeletionPending)})
}

func respond(w http.ResponseWriter, r *http.Request, v render.Renderer) {
	if err := render.Render(w, r, v); err != nil {
		logging.FromContext(r.Context()).Errorw("render response", "error", err)
	}
}
