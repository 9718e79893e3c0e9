package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"rajubill/internal/domain"
	"rajubill/internal/errors"
	"rajubill/internal/infrastructure/storage"
)

const billsKey = "bills"

// StoreBillRepository keeps the bill sequence as a JSON array under the
// "bills" key of the flat file store. Every mutation reads the full
// sequence and writes it back whole; there is no append-only path.
type StoreBillRepository struct {
	store *storage.Store
}

func NewStoreBillRepository(store *storage.Store) *StoreBillRepository {
	return &StoreBillRepository{store: store}
}

// storedBill is the persisted shape. createdAt is kept as an ISO-8601
// string, matching what the store has always contained.
type storedBill struct {
	ID                 string `json:"id"`
	Date               string `json:"date"`
	OrderNumber        string `json:"orderNumber"`
	Customer           string `json:"customer"`
	Broker             string `json:"broker,omitempty"`
	Mill               string `json:"mill,omitempty"`
	Product            string `json:"product"`
	Rate               string `json:"rate"`
	Weight             string `json:"weight,omitempty"`
	Bags               string `json:"bags,omitempty"`
	TermsAndConditions string `json:"termsAndConditions,omitempty"`
	CreatedAt          string `json:"createdAt"`
}

func (r *StoreBillRepository) ListAll(_ context.Context) ([]domain.Bill, error) {
	return r.readAll(), nil
}

func (r *StoreBillRepository) GetByID(_ context.Context, id string) (*domain.Bill, error) {
	for _, b := range r.readAll() {
		if b.ID == id {
			found := b
			return &found, nil
		}
	}
	return nil, errors.NewNotFoundError(fmt.Sprintf("bill with id %s not found", id))
}

func (r *StoreBillRepository) Insert(_ context.Context, bill domain.Bill) error {
	bills := r.readAll()
	bills = append(bills, bill)
	return r.writeAll(bills)
}

func (r *StoreBillRepository) Replace(_ context.Context, bill domain.Bill) error {
	bills := r.readAll()
	for i, b := range bills {
		if b.ID == bill.ID {
			bills[i] = bill
			return r.writeAll(bills)
		}
	}
	return errors.NewNotFoundError(fmt.Sprintf("bill with id %s not found", bill.ID))
}

func (r *StoreBillRepository) Delete(_ context.Context, id string) error {
	bills := r.readAll()
	kept := bills[:0]
	removed := false
	for _, b := range bills {
		if b.ID == id {
			removed = true
			continue
		}
		kept = append(kept, b)
	}
	if !removed {
		// Deleting an absent bill is a no-op, not an error.
		return nil
	}
	return r.writeAll(kept)
}

// readAll treats a missing or undecodable sequence as empty. Availability
// wins over corruption signaling on the read path.
func (r *StoreBillRepository) readAll() []domain.Bill {
	raw := r.store.GetItem(billsKey)
	if raw == "" {
		return nil
	}

	var stored []storedBill
	if err := json.Unmarshal([]byte(raw), &stored); err != nil {
		return nil
	}

	bills := make([]domain.Bill, 0, len(stored))
	for _, s := range stored {
		bills = append(bills, fromStored(s))
	}
	return bills
}

func (r *StoreBillRepository) writeAll(bills []domain.Bill) error {
	stored := make([]storedBill, 0, len(bills))
	for _, b := range bills {
		stored = append(stored, toStored(b))
	}

	data, err := json.Marshal(stored)
	if err != nil {
		return errors.NewStorageUnavailableError("encoding bills", err)
	}
	return r.store.SetItem(billsKey, string(data))
}

func toStored(b domain.Bill) storedBill {
	return storedBill{
		ID:                 b.ID,
		Date:               b.Date,
		OrderNumber:        b.OrderNumber,
		Customer:           b.Customer,
		Broker:             b.Broker,
		Mill:               b.Mill,
		Product:            b.Product,
		Rate:               b.Rate,
		Weight:             b.Weight,
		Bags:               b.Bags,
		TermsAndConditions: b.TermsAndConditions,
		CreatedAt:          b.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromStored(s storedBill) domain.Bill {
	createdAt, err := time.Parse(time.RFC3339Nano, s.CreatedAt)
	if err != nil {
		createdAt = time.Time{}
	}
	return domain.Bill{
		ID:                 s.ID,
		Date:               s.Date,
		OrderNumber:        s.OrderNumber,
		Customer:           s.Customer,
		Broker:             s.Broker,
		Mill:               s.Mill,
		Product:            s.Product,
		Rate:               s.Rate,
		Weight:             s.Weight,
		Bags:               s.Bags,
		TermsAndConditions: s.TermsAndConditions,
		CreatedAt:          createdAt,
	}
}
