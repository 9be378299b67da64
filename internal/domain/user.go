package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ID is an opaque identifier issued by the Pet API. The API emits integer ids,
// but the client only ever compares and echoes them, so they are kept as strings.
type ID string

// UnmarshalJSON accepts both JSON strings and JSON numbers.
func (id *ID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*id = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("id must be a string or a number: %w", err)
	}
	*id = ID(n.String())
	return nil
}

func (id ID) String() string { return string(id) }

// Credentials is the login form payload. It lives only for one submission.
type Credentials struct {
	Username string `json:"username" form:"username" validate:"required"`
	Password string `json:"password" form:"password" validate:"required"`
}

// RegistrationInput is the registration form payload.
type RegistrationInput struct {
	Username string `json:"username" form:"username" validate:"required"`
	Email    string `json:"email" form:"email" validate:"required"`
	Password string `json:"password" form:"password" validate:"required"`
}

// Session is the persisted pairing of a user identifier and a bearer token.
// Token may be empty when the API did not hand one out.
type Session struct {
	UserID string
	Token  string
}

// UserProfile is the public part of an account, fetched per dashboard load.
type UserProfile struct {
	ID       ID     `json:"id,omitempty"`
	Username string `json:"username"`
	Email    string `json:"email"`
}
