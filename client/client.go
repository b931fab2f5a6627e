package client

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"

	"github.com/goccy/go-json"

	"github.com/MrLamegame/Anderson-CVI-News/internal/model"
)

// Client talks to a running news server. Keep one Client per visitor: the
// session cookie lives in its jar.
type Client struct {
	http.Client
	Addr string
}

func New(addr string) (*Client, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}

	return &Client{Client: http.Client{Jar: jar}, Addr: addr}, nil
}

// StatusError is returned for any non-2xx response.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d: %s", e.Code, e.Body)
}

func (c *Client) Ping() (string, error) {
	req, err := http.NewRequest(http.MethodGet, c.Addr+"/ping", nil)
	if err != nil {
		return "", err
	}

	resp, err := c.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	return string(body), err
}

// Articles lists the articles of category c, or all of them when c is empty.
func (c *Client) Articles(category model.Category) ([]model.Article, error) {
	path := "/articles"
	if category != "" {
		path += "?cat=" + string(category)
	}

	var page struct {
		Articles []model.Article `json:"articles"`
	}
	if err := c.call(http.MethodGet, path, nil, &page); err != nil {
		return nil, err
	}

	return page.Articles, nil
}

func (c *Client) Article(id int) (model.Article, error) {
	var page struct {
		Article model.Article `json:"article"`
	}
	if err := c.call(http.MethodGet, fmt.Sprintf("/articles/%d", id), nil, &page); err != nil {
		return model.Article{}, err
	}

	return page.Article, nil
}

// Login logs in and returns where the site sends the user next.
func (c *Client) Login(email, password string) (string, error) {
	in := map[string]string{"email": email, "password": password}

	var out struct {
		Redirect string `json:"redirect"`
	}
	if err := c.call(http.MethodPost, "/login", in, &out); err != nil {
		return "", err
	}

	return out.Redirect, nil
}

// Publish creates an article. The client must be logged in as an admin.
func (c *Client) Publish(a model.Article) (model.Article, error) {
	var out struct {
		Article model.Article `json:"article"`
	}
	if err := c.call(http.MethodPost, "/admin/articles", a, &out); err != nil {
		return model.Article{}, err
	}

	return out.Article, nil
}

func (c *Client) call(method, path string, in, out interface{}) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, c.Addr+path, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{Code: resp.StatusCode, Body: string(raw)}
	}

	return json.Unmarshal(raw, out)
}
