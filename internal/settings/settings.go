package settings

import (
	"rajubill/internal/domain"
	"rajubill/internal/infrastructure/storage"
)

const whatsappNumberKey = "whatsappNumber"

// Repository reads and writes the application settings in the flat store.
// The value is stored exactly as entered; no validation is applied.
type Repository struct {
	store *storage.Store
}

func NewRepository(store *storage.Store) *Repository {
	return &Repository{store: store}
}

func (r *Repository) Get() domain.Settings {
	return domain.Settings{
		WhatsappNumber: r.store.GetItem(whatsappNumberKey),
	}
}

func (r *Repository) Save(s domain.Settings) error {
	return r.store.SetItem(whatsappNumberKey, s.WhatsappNumber)
}
