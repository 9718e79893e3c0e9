package usecase

import (
	"context"
	"time"

	"rajubill/internal/bill/dto"
	"rajubill/internal/domain"
)

type Service interface {
	ListAll(ctx context.Context) ([]domain.Bill, error)
	GetByID(ctx context.Context, id string) (*domain.Bill, error)
	Create(ctx context.Context, fields domain.BillFields) (*domain.Bill, error)
	Update(ctx context.Context, id string, fields domain.BillFields) (*domain.Bill, error)
	Delete(ctx context.Context, id string) error
}

type CrudBillsUseCase struct {
	service Service
}

func NewCrudBillsUseCase(service Service) *CrudBillsUseCase {
	return &CrudBillsUseCase{service: service}
}

func (uc *CrudBillsUseCase) ListBills(ctx context.Context) ([]dto.BillDTO, error) {
	bills, err := uc.service.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]dto.BillDTO, 0, len(bills))
	for _, b := range bills {
		out = append(out, toDTO(b))
	}
	return out, nil
}

func (uc *CrudBillsUseCase) GetBill(ctx context.Context, id string) (*dto.BillDTO, error) {
	bill, err := uc.service.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	d := toDTO(*bill)
	return &d, nil
}

func (uc *CrudBillsUseCase) CreateBill(ctx context.Context, req dto.BillFieldsRequest) (*dto.BillDTO, error) {
	bill, err := uc.service.Create(ctx, toFields(req))
	if err != nil {
		return nil, err
	}
	d := toDTO(*bill)
	return &d, nil
}

func (uc *CrudBillsUseCase) UpdateBill(ctx context.Context, id string, req dto.BillFieldsRequest) (*dto.BillDTO, error) {
	bill, err := uc.service.Update(ctx, id, toFields(req))
	if err != nil {
		return nil, err
	}
	d := toDTO(*bill)
	return &d, nil
}

func (uc *CrudBillsUseCase) DeleteBill(ctx context.Context, id string) error {
	return uc.service.Delete(ctx, id)
}

func toFields(req dto.BillFieldsRequest) domain.BillFields {
	return domain.BillFields{
		Date:               req.Date,
		OrderNumber:        req.OrderNumber,
		Customer:           req.Customer,
		Broker:             req.Broker,
		Mill:               req.Mill,
		Product:            req.Product,
		Rate:               req.Rate,
		Weight:             req.Weight,
		Bags:               req.Bags,
		TermsAndConditions: req.TermsAndConditions,
	}
}

func toDTO(b domain.Bill) dto.BillDTO {
	return dto.BillDTO{
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
