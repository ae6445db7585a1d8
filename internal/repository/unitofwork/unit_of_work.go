package unitofwork

import (
	"context"

	"medinfo-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	MedicineRepository() contract.MedicineRepository
	KendraRepository() contract.KendraRepository
	BlogRepository() contract.BlogRepository
}
