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

type MedicineRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.MedicineMapper
}

func NewMedicineRepository(db *gorm.DB) contract.MedicineRepository {
	return &MedicineRepositoryImpl{
		db:     db,
		mapper: mapper.NewMedicineMapper(),
	}
}

func (r *MedicineRepositoryImpl) Create(ctx context.Context, medicine *entity.Medicine) error {
	m := r.mapper.ToModel(medicine)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*medicine = *r.mapper.ToEntity(m)
	return nil
}

func (r *MedicineRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Medicine, error) {
	var m model.Medicine
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Order("id ASC").First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *MedicineRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Medicine, error) {
	var meds []*model.Medicine
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Order("id ASC").Find(&meds).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(meds), nil
}

func (r *MedicineRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := applySpecifications(r.db.WithContext(ctx).Model(&model.Medicine{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *MedicineRepositoryImpl) ListNames(ctx context.Context) ([]string, error) {
	var names []string
	err := r.db.WithContext(ctx).Model(&model.Medicine{}).Distinct("name").Order("name ASC").Pluck("name", &names).Error
	return names, err
}
