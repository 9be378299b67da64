package petapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/nfrund/petcommunity/internal/domain"
)

// Fallback messages for pet mutations.
const (
	DefaultCreatePetMessage = "Could not add the pet"
	DefaultDeletePetMessage = "Could not remove the pet"
	DefaultUpdatePetMessage = "Could not update the pet"
)

// GetUser fetches the public profile behind GET /users/{id}. The endpoint is
// unauthenticated, so no token is attached.
func (c *Client) GetUser(ctx context.Context, id string) (*domain.UserProfile, error) {
	var body envelope[domain.UserProfile]
	err := c.doJSON(ctx, http.MethodGet, "/users/"+url.PathEscape(id), nil, nil, &body)
	if err != nil {
		return nil, fmt.Errorf("get user %s: %w", id, err)
	}
	if body.Status != StatusSuccess {
		return nil, fmt.Errorf("get user %s: %w: %s", id, domain.ErrRejected, body.message())
	}
	if body.Data == nil {
		return nil, fmt.Errorf("get user %s: %w: missing data", id, domain.ErrMalformedResponse)
	}
	return body.Data, nil
}

// ListPets fetches the pets of the session behind token via GET /pets.
// Only a body marked successful AND carrying a data array is accepted; an
// accepted empty array yields an empty, non-nil slice.
func (c *Client) ListPets(ctx context.Context, token string) ([]domain.Pet, error) {
	if token == "" {
		return nil, domain.ErrNoToken
	}

	var body envelope[[]domain.Pet]
	if err := c.doJSON(ctx, http.MethodGet, "/pets", bearer(token), nil, &body); err != nil {
		return nil, fmt.Errorf("list pets: %w", err)
	}
	if body.Status != StatusSuccess || body.Data == nil {
		return nil, fmt.Errorf("list pets: %w: %s", domain.ErrRejected, body.message())
	}
	if *body.Data == nil {
		return []domain.Pet{}, nil
	}
	return *body.Data, nil
}

// CreatePet adds a pet for the session behind token via POST /newpet.
func (c *Client) CreatePet(ctx context.Context, token string, in domain.NewPetInput) Result {
	if token == "" {
		return Result{Status: StatusError, Message: DefaultCreatePetMessage, Err: domain.ErrNoToken}
	}
	var body envelope[struct{}]
	err := c.doJSON(ctx, http.MethodPost, "/newpet", bearer(token), in, &body)
	return normalize(body.Status, body.message(), err, DefaultCreatePetMessage)
}

// DeletePet removes one of the session's pets via DELETE /pets/{id}.
func (c *Client) DeletePet(ctx context.Context, token, id string) Result {
	return c.petMutation(ctx, http.MethodDelete, token, id, nil, DefaultDeletePetMessage)
}

// UpdatePet replaces the fields of one of the session's pets via PUT /pets/{id}.
func (c *Client) UpdatePet(ctx context.Context, token, id string, in domain.NewPetInput) Result {
	return c.petMutation(ctx, http.MethodPut, token, id, in, DefaultUpdatePetMessage)
}

// petMutation calls an /pets/{id} endpoint. These answer with a bare
// {"msg": ...}, so any 2xx counts as success.
func (c *Client) petMutation(ctx context.Context, method, token, id string, in any, fallback string) Result {
	if token == "" {
		return Result{Status: StatusError, Message: fallback, Err: domain.ErrNoToken}
	}
	var body envelope[struct{}]
	err := c.doJSON(ctx, method, "/pets/"+url.PathEscape(id), bearer(token), in, &body)
	status := body.Status
	if err == nil && status == "" {
		status = StatusSuccess
	}
	return normalize(status, body.message(), err, fallback)
}
