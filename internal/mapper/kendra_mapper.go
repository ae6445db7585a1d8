package mapper

import (
	"medinfo-be/internal/entity"
	"medinfo-be/internal/model"
)

type KendraMapper struct{}

func NewKendraMapper() *KendraMapper {
	return &KendraMapper{}
}

func (m *KendraMapper) ToEntity(k *model.Kendra) *entity.Kendra {
	if k == nil {
		return nil
	}
	return &entity.Kendra{Id: k.Id, Name: k.Name, Lat: k.Lat, Lng: k.Lng}
}

func (m *KendraMapper) ToModel(k *entity.Kendra) *model.Kendra {
	if k == nil {
		return nil
	}
	return &model.Kendra{Id: k.Id, Name: k.Name, Lat: k.Lat, Lng: k.Lng}
}

func (m *KendraMapper) ToEntities(kendras []*model.Kendra) []*entity.Kendra {
	entities := make([]*entity.Kendra, len(kendras))
	for i, k := range kendras {
		entities[i] = m.ToEntity(k)
	}
	return entities
}
