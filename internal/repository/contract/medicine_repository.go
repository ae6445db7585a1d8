package contract

import (
	"context"

	"medinfo-be/internal/entity"
	"medinfo-be/internal/repository/specification"
)

type MedicineRepository interface {
	Create(ctx context.Context, medicine *entity.Medicine) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Medicine, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Medicine, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	ListNames(ctx context.Context) ([]string, error)
}
