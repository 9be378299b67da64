// Package petapitest provides an in-process fake of the Pet API for tests.
package petapitest

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/nfrund/petcommunity/internal/domain"
	"github.com/nfrund/petcommunity/internal/petapi"
)

type account struct {
	id       string
	username string
	email    string
	password string
}

// Server is a fake Pet API backed by memory. It follows the response
// envelopes of the real API and records every request it receives.
type Server struct {
	*httptest.Server

	mu       sync.Mutex
	nextID   int
	accounts map[string]*account // by id
	tokens   map[string]string   // token -> user id
	pets     map[string][]domain.Pet
	requests []string

	loginResponse any
	petsStatus    int
	petsResponse  any
	omitToken     bool
}

// New starts a fake API and registers its shutdown with t.
func New(t *testing.T) *Server {
	t.Helper()

	s := &Server{
		accounts: make(map[string]*account),
		tokens:   make(map[string]string),
		pets:     make(map[string][]domain.Pet),
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			s.mu.Lock()
			s.requests = append(s.requests, c.Request().Method+" "+c.Request().URL.Path)
			s.mu.Unlock()
			return next(c)
		}
	})
	e.POST("/login", s.login)
	e.POST("/register", s.register)
	e.GET("/users/:id", s.getUser)
	e.GET("/pets", s.listPets)
	e.POST("/newpet", s.createPet)
	e.DELETE("/pets/:id", s.deletePet)
	e.PUT("/pets/:id", s.updatePet)

	s.Server = httptest.NewServer(e)
	t.Cleanup(s.Close)
	return s
}

// APIClient returns a petapi.Client pointed at the fake.
func (s *Server) APIClient(t *testing.T) *petapi.Client {
	t.Helper()
	c, err := petapi.NewWithHTTPClient(s.URL, s.Client())
	if err != nil {
		t.Fatalf("create pet api client: %v", err)
	}
	return c
}

// SetLoginResponse makes POST /login answer 200 with body verbatim.
func (s *Server) SetLoginResponse(body any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loginResponse = body
}

// SetPetsStatus makes GET /pets answer with the given HTTP status.
func (s *Server) SetPetsStatus(status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.petsStatus = status
}

// SetPetsResponse makes GET /pets answer 200 with body verbatim.
func (s *Server) SetPetsResponse(body any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.petsResponse = body
}

// OmitToken makes successful logins leave out access_token.
func (s *Server) OmitToken() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.omitToken = true
}

// AddUser creates an account directly and returns its id.
func (s *Server) AddUser(username, email, password string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.addUserLocked(username, email, password)
}

func (s *Server) addUserLocked(username, email, password string) string {
	s.nextID++
	id := strconv.Itoa(s.nextID)
	s.accounts[id] = &account{id: id, username: username, email: email, password: password}
	return id
}

// AddPet gives ownerID a pet and returns the stored copy.
func (s *Server) AddPet(ownerID string, p domain.Pet) domain.Pet {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p.ID == "" {
		s.nextID++
		p.ID = domain.ID(strconv.Itoa(s.nextID))
	}
	s.pets[ownerID] = append(s.pets[ownerID], p)
	return p
}

// Pets returns the pets currently owned by ownerID.
func (s *Server) Pets(ownerID string) []domain.Pet {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Pet{}, s.pets[ownerID]...)
}

// Requests returns every request seen so far as "METHOD /path".
func (s *Server) Requests() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.requests...)
}

// Count returns how many requests matched "METHOD /path".
func (s *Server) Count(methodAndPath string) int {
	n := 0
	for _, r := range s.Requests() {
		if r == methodAndPath {
			n++
		}
	}
	return n
}

func fail(c echo.Context, status int, msg string) error {
	return c.JSON(status, echo.Map{"status": "error", "message": msg})
}

func (s *Server) login(c echo.Context) error {
	s.mu.Lock()
	override := s.loginResponse
	s.mu.Unlock()
	if override != nil {
		return c.JSON(http.StatusOK, override)
	}

	var creds domain.Credentials
	if err := c.Bind(&creds); err != nil {
		return fail(c, http.StatusBadRequest, "Malformed request")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range s.accounts {
		if a.username == creds.Username && a.password == creds.Password {
			resp := echo.Map{
				"status": "success",
				"user":   echo.Map{"id": a.id, "username": a.username},
			}
			if !s.omitToken {
				token := uuid.NewString()
				s.tokens[token] = a.id
				resp["access_token"] = token
			}
			return c.JSON(http.StatusOK, resp)
		}
	}
	return fail(c, http.StatusUnauthorized, "Invalid credentials")
}

func (s *Server) register(c echo.Context) error {
	var in domain.RegistrationInput
	if err := c.Bind(&in); err != nil {
		return fail(c, http.StatusBadRequest, "Malformed request")
	}
	if in.Username == "" || in.Email == "" || in.Password == "" {
		return fail(c, http.StatusBadRequest, "All fields are required!")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range s.accounts {
		if a.username == in.Username || a.email == in.Email {
			return fail(c, http.StatusBadRequest, "Username or email already exists!")
		}
	}
	s.addUserLocked(in.Username, in.Email, in.Password)
	return c.JSON(http.StatusCreated, echo.Map{"status": "success", "message": "User created successfully!"})
}

func (s *Server) getUser(c echo.Context) error {
	s.mu.Lock()
	a, ok := s.accounts[c.Param("id")]
	s.mu.Unlock()
	if !ok {
		return fail(c, http.StatusNotFound, "User not found")
	}
	return c.JSON(http.StatusOK, echo.Map{
		"status": "success",
		"data":   echo.Map{"id": a.id, "username": a.username, "email": a.email},
	})
}

// owner resolves the bearer token of the request to a user id.
func (s *Server) owner(c echo.Context) (string, bool) {
	token, ok := strings.CutPrefix(c.Request().Header.Get(echo.HeaderAuthorization), "Bearer ")
	if !ok {
		return "", false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	id, ok := s.tokens[token]
	return id, ok
}

func (s *Server) listPets(c echo.Context) error {
	s.mu.Lock()
	status, override := s.petsStatus, s.petsResponse
	s.mu.Unlock()
	if status != 0 {
		return c.JSON(status, echo.Map{"msg": http.StatusText(status)})
	}
	if override != nil {
		return c.JSON(http.StatusOK, override)
	}
	ownerID, ok := s.owner(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"msg": "Missing Authorization Header"})
	}
	return c.JSON(http.StatusOK, echo.Map{"status": "success", "data": s.Pets(ownerID)})
}

func (s *Server) createPet(c echo.Context) error {
	ownerID, ok := s.owner(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"msg": "Missing Authorization Header"})
	}
	var in domain.NewPetInput
	if err := c.Bind(&in); err != nil || in.Name == "" || in.Species == "" {
		return fail(c, http.StatusBadRequest, "All fields are required!")
	}
	s.AddPet(ownerID, domain.Pet{Name: in.Name, Species: in.Species, Age: in.Age, Description: in.Description})
	return c.JSON(http.StatusCreated, echo.Map{"status": "success", "message": "Pet created successfully!"})
}

func (s *Server) deletePet(c echo.Context) error {
	ownerID, ok := s.owner(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"msg": "Missing Authorization Header"})
	}
	id := domain.ID(c.Param("id"))

	s.mu.Lock()
	defer s.mu.Unlock()
	pets := s.pets[ownerID]
	for i, p := range pets {
		if p.ID == id {
			s.pets[ownerID] = append(pets[:i:i], pets[i+1:]...)
			return c.JSON(http.StatusOK, echo.Map{"msg": "Pet with ID " + string(id) + " has been deleted"})
		}
	}
	return c.JSON(http.StatusNotFound, echo.Map{"msg": "Pet not found or unauthorized"})
}

func (s *Server) updatePet(c echo.Context) error {
	ownerID, ok := s.owner(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"msg": "Missing Authorization Header"})
	}
	var in domain.NewPetInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"msg": "Malformed request"})
	}
	id := domain.ID(c.Param("id"))

	s.mu.Lock()
	defer s.mu.Unlock()
	for i, p := range s.pets[ownerID] {
		if p.ID == id {
			s.pets[ownerID][i] = domain.Pet{
				ID:          id,
				Name:        in.Name,
				Species:     in.Species,
				Age:         in.Age,
				Description: in.Description,
			}
			return c.JSON(http.StatusOK, echo.Map{"msg": "Pet with ID " + string(id) + " has been updated"})
		}
	}
	return c.JSON(http.StatusNotFound, echo.Map{"msg": "Pet not found or unauthorized"})
}
