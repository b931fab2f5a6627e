// Package notice holds the transient messages shown to visitors after an
// action, such as publishing an article or failing to log in.
package notice

import (
	"errors"
	"fmt"
)

// Kind is the closed set of notice styles.
type Kind int

const (
	Success Kind = iota
	Error
)

func (k Kind) String() string {
	switch k {
	case Success:
		return "success"
	case Error:
		return "error"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

func (k Kind) MarshalText() ([]byte, error) {
	switch k {
	case Success, Error:
		return []byte(k.String()), nil
	default:
		return nil, errors.New("notice: unknown kind")
	}
}

// Notice is a message for the visitor.
type Notice struct {
	Kind    Kind   `json:"type"`
	Message string `json:"message"`
}

func Successf(format string, args ...interface{}) *Notice {
	return &Notice{Kind: Success, Message: fmt.Sprintf(format, args...)}
}

func Errorf(format string, args ...interface{}) *Notice {
	return &Notice{Kind: Error, Message: fmt.Sprintf(format, args...)}
}

// Texts shown by the site.
const (
	LoginSucceeded     = "Login successful!"
	InvalidCredentials = "Invalid email or password!"
	LoggedOut          = "Logged out."
	AccountCreated     = "Account created successfully!"
	DuplicateEmail     = "Email already exists!"
	PasswordMismatch   = "Passwords do not match!"
	AccessDenied       = "Access denied. Admin privileges required."
	LoginRequired      = "Please log in to continue."

	ArticlePublished    = "Article published successfully!"
	ArticlePublishError = "Error publishing article!"
	ArticleUpdated      = "Article updated successfully!"
	ArticleDeleted      = "Article deleted successfully!"
	ArticleDeleteError  = "Error deleting article!"
	ArticleNotFound     = "Article not found"
	NoCategoryArticles  = "No articles found in this category."
	NoRelatedArticles   = "No related articles found."

	// UserDeletionPending is reported for user deletion, which does not
	// remove the account yet.
	UserDeletionPending = "User deletion feature would be implemented here"
)
