package bill

import (
	"context"

	"rajubill/internal/bill/dto"
	"rajubill/internal/bill/repository"
	"rajubill/internal/bill/service"
	"rajubill/internal/bill/usecase"
	"rajubill/internal/domain"
)

type CrudUseCase interface {
	ListBills(ctx context.Context) ([]dto.BillDTO, error)
	GetBill(ctx context.Context, id string) (*dto.BillDTO, error)
	CreateBill(ctx context.Context, req dto.BillFieldsRequest) (*dto.BillDTO, error)
	UpdateBill(ctx context.Context, id string, req dto.BillFieldsRequest) (*dto.BillDTO, error)
	DeleteBill(ctx context.Context, id string) error
}

type Service interface {
	ListAll(ctx context.Context) ([]domain.Bill, error)
	GetByID(ctx context.Context, id string) (*domain.Bill, error)
	Create(ctx context.Context, fields domain.BillFields) (*domain.Bill, error)
	Update(ctx context.Context, id string, fields domain.BillFields) (*domain.Bill, error)
	Delete(ctx context.Context, id string) error
}

// Repository is the persistence contract for the bill sequence. ListAll
// never fails: an unreadable store is an empty sequence. Replace signals
// NotFound when no record carries the given id; Delete of an absent id is
// a no-op.
type Repository interface {
	ListAll(ctx context.Context) ([]domain.Bill, error)
	GetByID(ctx context.Context, id string) (*domain.Bill, error)
	Insert(ctx context.Context, bill domain.Bill) error
	Replace(ctx context.Context, bill domain.Bill) error
	Delete(ctx context.Context, id string) error
}

// The wired layers must keep satisfying the module contracts.
var (
	_ CrudUseCase = (*usecase.CrudBillsUseCase)(nil)
	_ Service     = (*service.BillService)(nil)
	_ Repository  = (*repository.StoreBillRepository)(nil)
	_ Repository  = (*repository.MySQLBillRepository)(nil)
)
