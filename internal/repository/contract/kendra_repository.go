package contract

import (
	"context"

	"medinfo-be/internal/entity"
	"medinfo-be/internal/repository/specification"
)

type KendraRepository interface {
	Create(ctx context.Context, kendra *entity.Kendra) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Kendra, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Kendra, error)
}
