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

type KendraRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.KendraMapper
}

func NewKendraRepository(db *gorm.DB) contract.KendraRepository {
	return &KendraRepositoryImpl{
		db:     db,
		mapper: mapper.NewKendraMapper(),
	}
}

func (r *KendraRepositoryImpl) Create(ctx context.Context, kendra *entity.Kendra) error {
	m := r.mapper.ToModel(kendra)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*kendra = *r.mapper.ToEntity(m)
	return nil
}

func (r *KendraRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Kendra, error) {
	var m model.Kendra
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *KendraRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Kendra, error) {
	var kendras []*model.Kendra
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Order("id ASC").Find(&kendras).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(kendras), nil
}
