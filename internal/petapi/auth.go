package petapi

import (
	"context"
	"net/http"

	"github.com/nfrund/petcommunity/internal/domain"
)

// Login sends credentials to POST /login. It never returns a bare error:
// transport failures and rejections come back as an error-shaped result.
// Persisting the returned identity is the caller's job.
func (c *Client) Login(ctx context.Context, creds domain.Credentials) LoginResult {
	var body loginEnvelope
	err := c.doJSON(ctx, http.MethodPost, "/login", nil, creds, &body)

	msg := body.Message
	if msg == "" {
		msg = body.Msg
	}
	res := LoginResult{Result: normalize(body.Status, msg, err, DefaultLoginMessage)}
	if res.OK() {
		res.User = body.User
		res.AccessToken = body.AccessToken
	}
	return res
}

// Register sends a new account to POST /register.
func (c *Client) Register(ctx context.Context, in domain.RegistrationInput) Result {
	var body envelope[struct{}]
	err := c.doJSON(ctx, http.MethodPost, "/register", nil, in, &body)
	return normalize(body.Status, body.message(), err, DefaultRegisterMessage)
}
