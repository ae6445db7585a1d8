package contract

import (
	"context"

	"medinfo-be/internal/entity"
	"medinfo-be/internal/repository/specification"
)

type BlogRepository interface {
	Create(ctx context.Context, post *entity.BlogPost) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.BlogPost, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.BlogPost, error)
}
