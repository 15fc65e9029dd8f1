package client

import (
	"context"
	"encoding/json"
	"net/http"
)

func unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

// Me mirrors the /api/me response.
type Me struct {
	IsAuthenticated bool   `json:"isAuthenticated"`
	Username        string `json:"username"`
}

// ContactForm is a contact page submission.
type ContactForm struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// Login authenticates against the API; the session cookie is retained in the
// client's jar for subsequent mutations.
func (c *Client) Login(ctx context.Context, username, password string) error {
	body := map[string]string{"username": username, "password": password}
	_, err := c.do(ctx, http.MethodPost, "/api/login", body)
	return err
}

// Logout destroys the server-side session and drops the cookie.
func (c *Client) Logout(ctx context.Context) error {
	_, err := c.do(ctx, http.MethodPost, "/api/logout", nil)
	return err
}

// WhoAmI reports the current authentication state. Never cached; the answer
// changes with login/logout rather than with data mutations.
func (c *Client) WhoAmI(ctx context.Context) (Me, error) {
	var me Me
	data, err := c.do(ctx, http.MethodGet, "/api/me", nil)
	if err != nil {
		return me, err
	}
	err = unmarshal(data, &me)
	return me, err
}

// SendContact submits the contact form.
func (c *Client) SendContact(ctx context.Context, form ContactForm) error {
	_, err := c.do(ctx, http.MethodPost, "/api/contact", form)
	return err
}
