package auth

import (
	"encoding/json"
	"net/http"

	apperrors "rajubill/internal/errors"

	"go.uber.org/zap"
)

// TokenHeader is the auth header the API has always used.
const TokenHeader = "x-auth-token"

type Controller struct {
	service *Service
	logger  *zap.Logger
}

func NewController(service *Service, logger *zap.Logger) *Controller {
	return &Controller{service: service, logger: logger}
}

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UserDTO struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type AuthResponse struct {
	Token string  `json:"token"`
	User  UserDTO `json:"user"`
}

func (c *Controller) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		c.writeMessage(w, http.StatusBadRequest, "request body must be valid JSON")
		return
	}
	if req.Email == "" || req.Password == "" {
		c.writeMessage(w, http.StatusBadRequest, "email and password are required")
		return
	}

	user, token, err := c.service.Register(req.Name, req.Email, req.Password)
	if err != nil {
		if ve, ok := apperrors.IsValidationError(err); ok {
			c.writeMessage(w, http.StatusBadRequest, ve.Message)
			return
		}
		c.logger.Error("register failed", zap.Error(err))
		c.writeMessage(w, http.StatusInternalServerError, "an unexpected error occurred")
		return
	}

	c.writeJSON(w, http.StatusCreated, AuthResponse{
		Token: token,
		User:  UserDTO{ID: user.ID, Name: user.Name, Email: user.Email},
	})
}

func (c *Controller) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		c.writeMessage(w, http.StatusBadRequest, "request body must be valid JSON")
		return
	}

	user, token, err := c.service.Login(req.Email, req.Password)
	if err != nil {
		if _, ok := apperrors.IsValidationError(err); ok {
			c.writeMessage(w, http.StatusUnauthorized, "invalid credentials")
			return
		}
		c.logger.Error("login failed", zap.Error(err))
		c.writeMessage(w, http.StatusInternalServerError, "an unexpected error occurred")
		return
	}

	c.writeJSON(w, http.StatusOK, AuthResponse{
		Token: token,
		User:  UserDTO{ID: user.ID, Name: user.Name, Email: user.Email},
	})
}

func (c *Controller) HandleMe(w http.ResponseWriter, r *http.Request) {
	token := r.Header.Get(TokenHeader)
	if token == "" {
		c.writeMessage(w, http.StatusUnauthorized, "missing auth token")
		return
	}

	user, err := c.service.CurrentUser(token)
	if err != nil {
		c.writeMessage(w, http.StatusUnauthorized, "invalid auth token")
		return
	}

	c.writeJSON(w, http.StatusOK, UserDTO{ID: user.ID, Name: user.Name, Email: user.Email})
}

func (c *Controller) HandleLogout(w http.ResponseWriter, r *http.Request) {
	token := r.Header.Get(TokenHeader)
	if token != "" {
		if err := c.service.Logout(token); err != nil {
			c.logger.Error("logout failed", zap.Error(err))
		}
	}
	c.writeJSON(w, http.StatusOK, map[string]string{"message": "logged out"})
}

// RequireToken guards a route subtree behind a valid session token.
func (c *Controller) RequireToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := r.Header.Get(TokenHeader)
		if token == "" {
			c.writeMessage(w, http.StatusUnauthorized, "missing auth token")
			return
		}
		if _, err := c.service.CurrentUser(token); err != nil {
			c.writeMessage(w, http.StatusUnauthorized, "invalid auth token")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (c *Controller) writeMessage(w http.ResponseWriter, status int, message string) {
	c.writeJSON(w, status, map[string]string{"message": message})
}

func (c *Controller) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}
