package mapper

import (
	"medinfo-be/internal/entity"
	"medinfo-be/internal/model"
)

type MedicineMapper struct{}

func NewMedicineMapper() *MedicineMapper {
	return &MedicineMapper{}
}

func (m *MedicineMapper) ToEntity(med *model.Medicine) *entity.Medicine {
	if med == nil {
		return nil
	}
	return &entity.Medicine{
		Id:      med.Id,
		Name:    med.Name,
		Generic: med.Generic,
		Company: med.Company,
		Price:   med.Price,
	}
}

func (m *MedicineMapper) ToModel(med *entity.Medicine) *model.Medicine {
	if med == nil {
		return nil
	}
	return &model.Medicine{
		Id:      med.Id,
		Name:    med.Name,
		Generic: med.Generic,
		Company: med.Company,
		Price:   med.Price,
	}
}

func (m *MedicineMapper) ToEntities(meds []*model.Medicine) []*entity.Medicine {
	entities := make([]*entity.Medicine, len(meds))
	for i, med := range meds {
		entities[i] = m.ToEntity(med)
	}
	return entities
}
