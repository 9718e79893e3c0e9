package settings

import (
	"encoding/json"
	"net/http"

	"rajubill/internal/domain"

	"go.uber.org/zap"
)

type SettingsDTO struct {
	WhatsappNumber string `json:"whatsappNumber"`
}

type Controller struct {
	repo   *Repository
	logger *zap.Logger
}

func NewController(repo *Repository, logger *zap.Logger) *Controller {
	return &Controller{repo: repo, logger: logger}
}

func (c *Controller) HandleGet(w http.ResponseWriter, r *http.Request) {
	s := c.repo.Get()
	c.writeJSON(w, http.StatusOK, SettingsDTO{WhatsappNumber: s.WhatsappNumber})
}

func (c *Controller) HandleSave(w http.ResponseWriter, r *http.Request) {
	var req SettingsDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		c.writeJSON(w, http.StatusBadRequest, map[string]string{
			"error":   "VALIDATION_ERROR",
			"message": "request body must be valid JSON",
		})
		return
	}

	if err := c.repo.Save(domain.Settings{WhatsappNumber: req.WhatsappNumber}); err != nil {
		c.logger.Error("saving settings", zap.Error(err))
		c.writeJSON(w, http.StatusInternalServerError, map[string]string{
			"error":   "INTERNAL_ERROR",
			"message": "an unexpected error occurred",
		})
		return
	}

	c.writeJSON(w, http.StatusOK, SettingsDTO{WhatsappNumber: req.WhatsappNumber})
}

func (c *Controller) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}
