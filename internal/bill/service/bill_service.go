package service

import (
	"context"
	"strconv"
	"time"

	"rajubill/internal/domain"
)

type Repository interface {
	ListAll(ctx context.Context) ([]domain.Bill, error)
	GetByID(ctx context.Context, id string) (*domain.Bill, error)
	Insert(ctx context.Context, bill domain.Bill) error
	Replace(ctx context.Context, bill domain.Bill) error
	Delete(ctx context.Context, id string) error
}

type BillService struct {
	repo Repository
	now  func() time.Time
}

func NewBillService(repo Repository) *BillService {
	return &BillService{repo: repo, now: time.Now}
}

// NewBillServiceWithClock is for tests that need a fixed clock.
func NewBillServiceWithClock(repo Repository, now func() time.Time) *BillService {
	return &BillService{repo: repo, now: now}
}

func (s *BillService) ListAll(ctx context.Context) ([]domain.Bill, error) {
	return s.repo.ListAll(ctx)
}

func (s *BillService) GetByID(ctx context.Context, id string) (*domain.Bill, error) {
	return s.repo.GetByID(ctx, id)
}

// Create stamps a fresh id and createdAt, appends the record and persists
// the sequence. The id is the creation time in milliseconds, bumped while
// it collides with an existing record.
func (s *BillService) Create(ctx context.Context, fields domain.BillFields) (*domain.Bill, error) {
	now := s.now()

	bill := domain.Bill{
		ID:        s.nextID(ctx, now),
		CreatedAt: now,
	}
	bill.Apply(fields)

	if err := s.repo.Insert(ctx, bill); err != nil {
		return nil, err
	}
	return &bill, nil
}

// Update replaces every field except id and createdAt. A missing id leaves
// the stored sequence untouched.
func (s *BillService) Update(ctx context.Context, id string, fields domain.BillFields) (*domain.Bill, error) {
	bill, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	bill.Apply(fields)

	if err := s.repo.Replace(ctx, *bill); err != nil {
		return nil, err
	}
	return bill, nil
}

func (s *BillService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *BillService) nextID(ctx context.Context, now time.Time) string {
	existing := map[string]struct{}{}
	if bills, err := s.repo.ListAll(ctx); err == nil {
		for _, b := range bills {
			existing[b.ID] = struct{}{}
		}
	}

	ms := now.UnixMilli()
	for {
		id := strconv.FormatInt(ms, 10)
		if _, taken := existing[id]; !taken {
			return id
		}
		ms++
	}
}
