package bill

import (
	"database/sql"

	"rajubill/internal/bill/controller"
	"rajubill/internal/bill/repository"
	"rajubill/internal/bill/service"
	"rajubill/internal/bill/usecase"
	"rajubill/internal/infrastructure/storage"

	"go.uber.org/zap"
)

// NewModule wires the file-store-backed bill module.
func NewModule(store *storage.Store, logger *zap.Logger) *controller.BillController {
	repo := repository.NewStoreBillRepository(store)
	svc := service.NewBillService(repo)
	uc := usecase.NewCrudBillsUseCase(svc)
	return controller.NewBillController(uc, logger)
}

// NewMySQLModule wires the same module over the MySQL backend.
func NewMySQLModule(db *sql.DB, logger *zap.Logger) *controller.BillController {
	repo := repository.NewMySQLBillRepository(db)
	svc := service.NewBillService(repo)
	uc := usecase.NewCrudBillsUseCase(svc)
	return controller.NewBillController(uc, logger)
}

// NewService exposes the store-backed service for collaborators (the export
// pipeline reads bills through it).
func NewService(store *storage.Store) *service.BillService {
	return service.NewBillService(repository.NewStoreBillRepository(store))
}

// NewMySQLService is the MySQL-backed counterpart of NewService.
func NewMySQLService(db *sql.DB) *service.BillService {
	return service.NewBillService(repository.NewMySQLBillRepository(db))
}
