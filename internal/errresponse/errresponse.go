package errresponse

import (
	"net/http"

	"github.com/go-chi/render"

	"github.com/MrLamegame/Anderson-CVI-News/internal/notice"
)

//--
// Error response payloads & renderers
//--

// ErrResponse renderer type for handling all sorts of errors.
type ErrResponse struct {
	Err            error `json:"-"` // low-level runtime error
	HTTPStatusCode int   `json:"-"` // http response status code

	StatusText string         `json:"status"`             // user-level status message
	ErrorText  string         `json:"error,omitempty"`    // application-level error message, for debugging
	Notice     *notice.Notice `json:"notice,omitempty"`   // message for the visitor
	Redirect   string         `json:"redirect,omitempty"` // where the front end should go next
}

func (e *ErrResponse) Render(w http.ResponseWriter, r *http.Request) error {
	render.Status(r, e.HTTPStatusCode)

	return nil
}

// WithNotice returns a copy of e carrying an error notice with msg.
func (e *ErrResponse) WithNotice(msg string) *ErrResponse {
	c := *e
	c.Notice = notice.Errorf("%s", msg)

	return &c
}

func ErrInvalidRequest(err error) *ErrResponse {
	return &ErrResponse{
		Err:            err,
		HTTPStatusCode: http.StatusBadRequest,
		StatusText:     "Invalid request.",
		ErrorText:      err.Error(),
	}
}

func ErrRender(err error) *ErrResponse {
	return &ErrResponse{
		Err:            err,
		HTTPStatusCode: http.StatusUnprocessableEntity,
		StatusText:     "Error rendering response.",
		ErrorText:      err.Error(),
	}
}

func ErrConflict(err error) *ErrResponse {
	return &ErrResponse{
		Err:            err,
		HTTPStatusCode: http.StatusConflict,
		StatusText:     "Conflict.",
		ErrorText:      err.Error(),
	}
}

// ErrInvalidCredentials rejects a login without redirecting; the visitor
// stays on the login form.
func ErrInvalidCredentials(err error) *ErrResponse {
	return &ErrResponse{
		Err:            err,
		HTTPStatusCode: http.StatusUnauthorized,
		StatusText:     "Unauthorized.",
		ErrorText:      err.Error(),
	}
}

func ErrInternal(err error) *ErrResponse {
	return &ErrResponse{
		Err:            err,
		HTTPStatusCode: http.StatusInternalServerError,
		StatusText:     "Internal server error.",
	}
}

// ErrUnauthorized asks the front end to send the visitor to the login page.
func ErrUnauthorized(msg string) *ErrResponse {
	return &ErrResponse{
		HTTPStatusCode: http.StatusUnauthorized,
		StatusText:     "Unauthorized.",
		Notice:         notice.Errorf("%s", msg),
		Redirect:       "/login",
	}
}

// ErrForbidden asks the front end to send the visitor home.
func ErrForbidden(msg string) *ErrResponse {
	return &ErrResponse{
		HTTPStatusCode: http.StatusForbidden,
		StatusText:     "Forbidden.",
		Notice:         notice.Errorf("%s", msg),
		Redirect:       "/",
	}
}

var ErrNotFound = &ErrResponse{HTTPStatusCode: http.StatusNotFound, StatusText: "Resource not found."}
