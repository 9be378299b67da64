package dashboard_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/nfrund/petcommunity/internal/dashboard"
	"github.com/nfrund/petcommunity/internal/domain"
	"github.com/nfrund/petcommunity/internal/petapi/petapitest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAPI struct {
	calls      []string
	profile    *domain.UserProfile
	profileErr error
	pets       []domain.Pet
	petsErr    error
}

func (f *fakeAPI) GetUser(_ context.Context, id string) (*domain.UserProfile, error) {
	f.calls = append(f.calls, "user:"+id)
	return f.profile, f.profileErr
}

func (f *fakeAPI) ListPets(_ context.Context, token string) ([]domain.Pet, error) {
	f.calls = append(f.calls, "pets:"+token)
	return f.pets, f.petsErr
}

type tokens string

func (t tokens) Token() (string, bool) { return string(t), t != "" }

func TestLoad(t *testing.T) {
	ctx := context.Background()
	rex := domain.Pet{ID: "1", Name: "Rex", Species: "Dog", Age: 3, Description: "Friendly"}
	errBoom := errors.New("boom")

	tests := []struct {
		name        string
		api         *fakeAPI
		token       tokens
		wantCalls   []string
		wantPets    []domain.Pet
		wantProfile bool
		wantPetsErr error
	}{
		{
			name:        "everything succeeds",
			api:         &fakeAPI{profile: &domain.UserProfile{Username: "alice"}, pets: []domain.Pet{rex}},
			token:       "tok",
			wantCalls:   []string{"user:1", "pets:tok"},
			wantPets:    []domain.Pet{rex},
			wantProfile: true,
		},
		{
			name:        "profile failure does not abort the pet fetch",
			api:         &fakeAPI{profileErr: errBoom, pets: []domain.Pet{rex}},
			token:       "tok",
			wantCalls:   []string{"user:1", "pets:tok"},
			wantPets:    []domain.Pet{rex},
			wantProfile: false,
		},
		{
			name:        "no token skips the pet fetch",
			api:         &fakeAPI{profile: &domain.UserProfile{Username: "alice"}},
			token:       "",
			wantCalls:   []string{"user:1"},
			wantProfile: true,
			wantPetsErr: domain.ErrNoToken,
		},
		{
			name:        "pet failure leaves pets empty",
			api:         &fakeAPI{profileErr: errBoom, petsErr: errBoom},
			token:       "tok",
			wantCalls:   []string{"user:1", "pets:tok"},
			wantPetsErr: errBoom,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var transitions []dashboard.State
			loader := dashboard.NewLoader(tt.api, dashboard.WithObserver(func(from, to dashboard.State) {
				assert.Equal(t, dashboard.Loading, from)
				transitions = append(transitions, to)
			}))

			res := loader.Load(ctx, "1", tt.token)

			assert.Equal(t, dashboard.Loaded, res.State)
			assert.Equal(t, []dashboard.State{dashboard.Loaded}, transitions, "must reach Loaded exactly once")
			assert.Equal(t, tt.wantCalls, tt.api.calls)
			assert.Equal(t, tt.wantPets, res.Pets)
			assert.Equal(t, tt.wantProfile, res.Profile != nil)
			if tt.wantPetsErr != nil {
				assert.ErrorIs(t, res.PetsErr, tt.wantPetsErr)
			} else {
				assert.NoError(t, res.PetsErr)
			}
		})
	}
}

func TestLoadWithoutIdentity(t *testing.T) {
	api := &fakeAPI{}
	called := false
	loader := dashboard.NewLoader(api, dashboard.WithObserver(func(_, _ dashboard.State) { called = true }))

	res := loader.Load(context.Background(), "", tokens("tok"))

	assert.ErrorIs(t, res.Err, domain.ErrNoIdentity)
	assert.Equal(t, dashboard.Loading, res.State)
	assert.Empty(t, api.calls, "no fetch without identity")
	assert.False(t, called)
}

func TestLoadAgainstAPI(t *testing.T) {
	ctx := context.Background()
	api := petapitest.New(t)
	id := api.AddUser("alice", "alice@example.com", "pw")
	client := api.APIClient(t)

	t.Run("401 on pets", func(t *testing.T) {
		api.SetPetsStatus(http.StatusUnauthorized)
		defer api.SetPetsStatus(0)

		res := dashboard.NewLoader(client).Load(ctx, id, tokens("tok"))

		assert.Equal(t, dashboard.Loaded, res.State)
		require.NotNil(t, res.Profile)
		assert.Equal(t, "alice", res.Profile.Username)
		assert.False(t, res.HasPets())
		assert.ErrorIs(t, res.PetsErr, domain.ErrRejected)
	})

	t.Run("no token issues no pets request", func(t *testing.T) {
		before := api.Count("GET /pets")

		res := dashboard.NewLoader(client).Load(ctx, id, tokens(""))

		assert.False(t, res.HasPets())
		assert.Equal(t, before, api.Count("GET /pets"))
	})
}
