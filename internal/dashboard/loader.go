// Package dashboard loads everything the dashboard view shows.
package dashboard

import (
	"context"

	"github.com/nfrund/petcommunity/internal/domain"
)

// State is the loading state of one dashboard load.
type State int

const (
	Loading State = iota
	Loaded
)

func (s State) String() string {
	if s == Loaded {
		return "loaded"
	}
	return "loading"
}

// API is the part of the Pet API client the loader needs.
type API interface {
	GetUser(ctx context.Context, id string) (*domain.UserProfile, error)
	ListPets(ctx context.Context, token string) ([]domain.Pet, error)
}

// TokenSource yields the bearer token of the current session.
type TokenSource interface {
	Token() (string, bool)
}

// Result is the outcome of one load. Failures are recorded, not returned,
// so the view decides what to show and what to log.
type Result struct {
	State   State
	Profile *domain.UserProfile
	Pets    []domain.Pet

	// Err is set when the load did not start (no identity).
	Err        error
	ProfileErr error
	PetsErr    error
}

// HasPets reports whether there is at least one pet to render.
func (r Result) HasPets() bool { return len(r.Pets) > 0 }

// Loader runs the dashboard fetch sequence.
type Loader struct {
	api     API
	observe func(from, to State)
}

// Option configures a Loader.
type Option func(*Loader)

// WithObserver registers fn to be called on every state transition.
func WithObserver(fn func(from, to State)) Option {
	return func(l *Loader) { l.observe = fn }
}

// NewLoader creates a Loader over api.
func NewLoader(api API, opts ...Option) *Loader {
	l := &Loader{api: api}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load fetches the profile of userID, then reads the token, then fetches the
// pets, strictly in that order. Whatever fails along the way, the result
// leaves Loading exactly once. An empty userID is a no-op.
func (l *Loader) Load(ctx context.Context, userID string, tokens TokenSource) (res Result) {
	res.State = Loading
	if userID == "" {
		res.Err = domain.ErrNoIdentity
		return res
	}

	defer func() {
		l.transition(res.State, Loaded)
		res.State = Loaded
	}()

	profile, err := l.api.GetUser(ctx, userID)
	if err != nil {
		res.ProfileErr = err
	} else {
		res.Profile = profile
	}

	token, ok := tokens.Token()
	if !ok {
		res.PetsErr = domain.ErrNoToken
		return res
	}

	pets, err := l.api.ListPets(ctx, token)
	if err != nil {
		res.PetsErr = err
		return res
	}
	res.Pets = pets
	return res
}

func (l *Loader) transition(from, to State) {
	if l.observe != nil {
		l.observe(from, to)
	}
}
