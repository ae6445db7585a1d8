package mapper

import (
	"medinfo-be/internal/entity"
	"medinfo-be/internal/model"
)

type UserMapper struct {
	medicines *MedicineMapper
}

func NewUserMapper() *UserMapper {
	return &UserMapper{medicines: NewMedicineMapper()}
}

func (m *UserMapper) ToEntity(u *model.User) *entity.User {
	if u == nil {
		return nil
	}
	return &entity.User{
		Id:             u.Id,
		Username:       u.Username,
		HashedPassword: u.HashedPassword,
		CreatedAt:      u.CreatedAt,
	}
}

func (m *UserMapper) ToModel(u *entity.User) *model.User {
	if u == nil {
		return nil
	}
	return &model.User{
		Id:             u.Id,
		Username:       u.Username,
		HashedPassword: u.HashedPassword,
		CreatedAt:      u.CreatedAt,
	}
}

// Saved medicine mappers

func (m *UserMapper) SavedMedicineToEntity(s *model.SavedMedicine) *entity.SavedMedicine {
	if s == nil {
		return nil
	}
	res := &entity.SavedMedicine{
		Id:         s.Id,
		UserId:     s.UserId,
		MedicineId: s.MedicineId,
		CreatedAt:  s.CreatedAt,
	}
	// Medicine is only populated when preloaded
	if s.Medicine.Id != 0 {
		res.Medicine = m.medicines.ToEntity(&s.Medicine)
	}
	return res
}

func (m *UserMapper) SavedMedicineToModel(s *entity.SavedMedicine) *model.SavedMedicine {
	if s == nil {
		return nil
	}
	return &model.SavedMedicine{
		Id:         s.Id,
		UserId:     s.UserId,
		MedicineId: s.MedicineId,
		CreatedAt:  s.CreatedAt,
	}
}

func (m *UserMapper) SavedMedicinesToEntities(saved []*model.SavedMedicine) []*entity.SavedMedicine {
	entities := make([]*entity.SavedMedicine, len(saved))
	for i, s := range saved {
		entities[i] = m.SavedMedicineToEntity(s)
	}
	return entities
}
