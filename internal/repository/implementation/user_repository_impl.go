package implementation

import (
	"context"
	"errors"

	"medinfo-be/internal/entity"
	"medinfo-be/internal/mapper"
	"medinfo-be/internal/model"
	"medinfo-be/internal/repository/contract"
	"medinfo-be/internal/repository/specification"

	"gorm.io/gorm"
)

type UserRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.UserMapper
}

func NewUserRepository(db *gorm.DB) contract.UserRepository {
	return &UserRepositoryImpl{
		db:     db,
		mapper: mapper.NewUserMapper(),
	}
}

func applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *UserRepositoryImpl) Create(ctx context.Context, user *entity.User) error {
	modelUser := r.mapper.ToModel(user)
	if err := r.db.WithContext(ctx).Create(modelUser).Error; err != nil {
		return err
	}
	*user = *r.mapper.ToEntity(modelUser)
	return nil
}

func (r *UserRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error) {
	var modelUser model.User
	query := applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.First(&modelUser).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapper.ToEntity(&modelUser), nil
}

func (r *UserRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := applySpecifications(r.db.WithContext(ctx).Model(&model.User{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *UserRepositoryImpl) CreateSavedMedicine(ctx context.Context, saved *entity.SavedMedicine) error {
	m := r.mapper.SavedMedicineToModel(saved)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	saved.Id = m.Id
	saved.CreatedAt = m.CreatedAt
	return nil
}

func (r *UserRepositoryImpl) FindSavedMedicine(ctx context.Context, specs ...specification.Specification) (*entity.SavedMedicine, error) {
	var m model.SavedMedicine
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.SavedMedicineToEntity(&m), nil
}

func (r *UserRepositoryImpl) FindSavedMedicines(ctx context.Context, userId uint) ([]*entity.SavedMedicine, error) {
	var saved []*model.SavedMedicine
	err := r.db.WithContext(ctx).
		Preload("Medicine").
		Where("user_id = ?", userId).
		Order("id ASC").
		Find(&saved).Error
	if err != nil {
		return nil, err
	}
	return r.mapper.SavedMedicinesToEntities(saved), nil
}
