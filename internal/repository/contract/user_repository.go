package contract

import (
	"context"

	"medinfo-be/internal/entity"
	"medinfo-be/internal/repository/specification"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	// Saved medicines
	CreateSavedMedicine(ctx context.Context, saved *entity.SavedMedicine) error
	FindSavedMedicine(ctx context.Context, specs ...specification.Specification) (*entity.SavedMedicine, error)
	// FindSavedMedicines returns the user's saved list, oldest first, with medicines preloaded.
	FindSavedMedicines(ctx context.Context, userId uint) ([]*entity.SavedMedicine, error)
}
