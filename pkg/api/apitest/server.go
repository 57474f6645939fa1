// Package apitest runs an in-process AdvControl backend for tests.
package apitest

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/gorilla/mux"
	"golang.org/x/crypto/bcrypt"

	"tableflip.dev/advcontrol/pkg/resource"
)

// Messages returned by the fake backend.
const (
	DetailInvalidToken = "Token inválido"
	DetailBadLogin     = "Email ou senha inválidos"
	DetailEmailTaken   = "Email já cadastrado"
)

type account struct {
	id   string
	hash []byte
	name string
}

type failure struct {
	status int
	detail string
}

// Server is a fake backend mounted under /api.
type Server struct {
	srv    *httptest.Server
	secret []byte

	mu       sync.Mutex
	accounts map[string]account
	payloads map[resource.Kind][]byte
	failures map[string]failure
	hits     map[string]int
	gates    map[resource.Kind]chan struct{}
	nextID   int
}

// NewServer starts a server and stops it when the test ends.
func NewServer(t testing.TB) *Server {
	t.Helper()
	s := &Server{
		secret:   []byte("apitest-secret"),
		accounts: make(map[string]account),
		payloads: make(map[resource.Kind][]byte),
		failures: make(map[string]failure),
		hits:     make(map[string]int),
		gates:    make(map[resource.Kind]chan struct{}),
	}
	for _, kind := range resource.AllKinds() {
		s.payloads[kind] = []byte("[]")
	}
	s.payloads[resource.KindDashboard] = []byte(`{"alertas":[]}`)

	r := mux.NewRouter()
	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/auth/login", s.login).Methods(http.MethodPost)
	api.HandleFunc("/auth/register", s.register).Methods(http.MethodPost)
	api.HandleFunc("/{kind}", s.collection).Methods(http.MethodGet)

	s.srv = httptest.NewServer(r)
	t.Cleanup(s.srv.Close)
	return s
}

// URL is the API root to hand to api.New.
func (s *Server) URL() string {
	return s.srv.URL + "/api"
}

// Close stops the server early, turning further requests into transport errors.
func (s *Server) Close() {
	s.srv.Close()
}

// AddUser registers an account and returns its id.
func (s *Server) AddUser(email, password, name string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.addLocked(email, password, name)
}

func (s *Server) addLocked(email, password, name string) string {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		panic(err)
	}
	s.nextID++
	id := fmt.Sprintf("user-%d", s.nextID)
	s.accounts[strings.ToLower(email)] = account{id: id, hash: hash, name: name}
	return id
}

// Token signs a bearer token for userID, valid for 30 days.
func (s *Server) Token(userID string) string {
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userID,
		"exp":     time.Now().Add(30 * 24 * time.Hour).Unix(),
	}).SignedString(s.secret)
	if err != nil {
		panic(err)
	}
	return tok
}

// SetPayload serves v as JSON for kind.
func (s *Server) SetPayload(kind resource.Kind, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	s.SetRaw(kind, string(data))
}

// SetRaw serves body verbatim for kind.
func (s *Server) SetRaw(kind resource.Kind, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.payloads[kind] = []byte(body)
}

// Fail makes path answer with status and detail until Recover is called.
// path is relative to /api, e.g. "/casos" or "/auth/login".
func (s *Server) Fail(path string, status int, detail string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures[path] = failure{status: status, detail: detail}
}

// Recover clears every injected failure.
func (s *Server) Recover() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures = make(map[string]failure)
}

// Hold blocks requests for kind until the returned release func is called.
func (s *Server) Hold(kind resource.Kind) (release func()) {
	gate := make(chan struct{})
	s.mu.Lock()
	s.gates[kind] = gate
	s.mu.Unlock()
	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.gates, kind)
			s.mu.Unlock()
			close(gate)
		})
	}
}

// Hits reports how many requests reached path, e.g. "/prazos".
func (s *Server) Hits(path string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hits[path]
}

func (s *Server) record(path string) (failure, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hits[path]++
	f, ok := s.failures[path]
	return f, ok
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeDetail(w http.ResponseWriter, status int, detail string) {
	if detail == "" {
		w.WriteHeader(status)
		return
	}
	writeJSON(w, status, map[string]string{"detail": detail})
}

type userResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"nome"`
	Token string `json:"token"`
}

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"nome"`
}

func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	if f, ok := s.record("/auth/login"); ok {
		writeDetail(w, f.status, f.detail)
		return
	}
	var in credentials
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeDetail(w, http.StatusUnprocessableEntity, "invalid body")
		return
	}
	s.mu.Lock()
	acct, ok := s.accounts[strings.ToLower(in.Email)]
	s.mu.Unlock()
	if !ok || bcrypt.CompareHashAndPassword(acct.hash, []byte(in.Password)) != nil {
		writeDetail(w, http.StatusUnauthorized, DetailBadLogin)
		return
	}
	writeJSON(w, http.StatusOK, userResponse{ID: acct.id, Email: in.Email, Name: acct.name, Token: s.Token(acct.id)})
}

func (s *Server) register(w http.ResponseWriter, r *http.Request) {
	if f, ok := s.record("/auth/register"); ok {
		writeDetail(w, f.status, f.detail)
		return
	}
	var in credentials
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeDetail(w, http.StatusUnprocessableEntity, "invalid body")
		return
	}
	s.mu.Lock()
	if _, taken := s.accounts[strings.ToLower(in.Email)]; taken {
		s.mu.Unlock()
		writeDetail(w, http.StatusBadRequest, DetailEmailTaken)
		return
	}
	id := s.addLocked(in.Email, in.Password, in.Name)
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, userResponse{ID: id, Email: in.Email, Name: in.Name, Token: s.Token(id)})
}

func (s *Server) collection(w http.ResponseWriter, r *http.Request) {
	kind := resource.Kind(mux.Vars(r)["kind"])
	f, failing := s.record(kind.Path())

	if err := s.authorize(r); err != nil {
		writeDetail(w, http.StatusUnauthorized, DetailInvalidToken)
		return
	}

	s.mu.Lock()
	gate := s.gates[kind]
	s.mu.Unlock()
	if gate != nil {
		select {
		case <-gate:
		case <-r.Context().Done():
			return
		}
	}

	if failing {
		writeDetail(w, f.status, f.detail)
		return
	}

	s.mu.Lock()
	body, ok := s.payloads[kind]
	s.mu.Unlock()
	if !ok {
		writeDetail(w, http.StatusNotFound, "Not Found")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(body)
}

func (s *Server) authorize(r *http.Request) error {
	raw, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
	if !ok {
		return errors.New("missing bearer token")
	}
	tok, err := jwt.Parse(raw, func(*jwt.Token) (any, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return err
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok || claims["user_id"] == nil {
		return errors.New("token carries no user")
	}
	return nil
}
