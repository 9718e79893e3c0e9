package auth

import (
	"encoding/json"
	"fmt"
	"sync"

	"rajubill/internal/domain"
	apperrors "rajubill/internal/errors"
	"rajubill/internal/infrastructure/storage"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const (
	usersKey           = "users"
	authenticatedKey   = "isAuthenticated"
	authenticatedValue = "true"
)

// Service manages accounts and login sessions. Accounts live in the flat
// store with bcrypt password hashes; tokens are process-local and expire
// with the process. The persisted session flag is a single boolean with no
// identity attached.
type Service struct {
	store *storage.Store

	mu       sync.Mutex
	sessions map[string]domain.Session
}

func NewService(store *storage.Store) *Service {
	return &Service{
		store:    store,
		sessions: make(map[string]domain.Session),
	}
}

type storedUser struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"passwordHash"`
}

// Register creates an account and logs it in.
func (s *Service) Register(name, email, password string) (*domain.User, string, error) {
	users := s.loadUsers()
	for _, u := range users {
		if u.Email == email {
			return nil, "", apperrors.NewValidationError("user already exists", apperrors.ValidationDetail{
				Field:   "email",
				Message: "an account with this email already exists",
			})
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", apperrors.NewInternalError("hashing password", err)
	}

	user := storedUser{
		ID:           uuid.New().String(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
	}
	users = append(users, user)

	if err := s.saveUsers(users); err != nil {
		return nil, "", err
	}

	return s.openSession(user)
}

// Login checks the credentials and issues a token.
func (s *Service) Login(email, password string) (*domain.User, string, error) {
	for _, u := range s.loadUsers() {
		if u.Email != email {
			continue
		}
		if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
			break
		}
		return s.openSession(u)
	}
	return nil, "", apperrors.NewValidationError("invalid credentials")
}

// CurrentUser resolves a token to its account.
func (s *Service) CurrentUser(token string) (*domain.User, error) {
	s.mu.Lock()
	session, ok := s.sessions[token]
	s.mu.Unlock()
	if !ok {
		return nil, apperrors.NewNotFoundError("session not found")
	}

	for _, u := range s.loadUsers() {
		if u.ID == session.UserID {
			return &domain.User{ID: u.ID, Name: u.Name, Email: u.Email}, nil
		}
	}
	return nil, apperrors.NewNotFoundError(fmt.Sprintf("user %s not found", session.UserID))
}

// Logout drops the token and clears the persisted session flag.
func (s *Service) Logout(token string) error {
	s.mu.Lock()
	delete(s.sessions, token)
	empty := len(s.sessions) == 0
	s.mu.Unlock()

	if empty {
		return s.store.RemoveItem(authenticatedKey)
	}
	return nil
}

// IsAuthenticated reports the persisted session flag.
func (s *Service) IsAuthenticated() bool {
	return s.store.GetItem(authenticatedKey) == authenticatedValue
}

func (s *Service) openSession(u storedUser) (*domain.User, string, error) {
	token := uuid.New().String()

	s.mu.Lock()
	s.sessions[token] = domain.Session{Token: token, UserID: u.ID}
	s.mu.Unlock()

	if err := s.store.SetItem(authenticatedKey, authenticatedValue); err != nil {
		return nil, "", err
	}

	return &domain.User{ID: u.ID, Name: u.Name, Email: u.Email}, token, nil
}

func (s *Service) loadUsers() []storedUser {
	raw := s.store.GetItem(usersKey)
	if raw == "" {
		return nil
	}
	var users []storedUser
	if err := json.Unmarshal([]byte(raw), &users); err != nil {
		return nil
	}
	return users
}

func (s *Service) saveUsers(users []storedUser) error {
	data, err := json.Marshal(users)
	if err != nil {
		return apperrors.NewStorageUnavailableError("encoding users", err)
	}
	return s.store.SetItem(usersKey, string(data))
}
