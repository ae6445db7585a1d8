package service

import (
	"context"
	"time"

	"medinfo-be/internal/dto"
	"medinfo-be/internal/pkg/logger"
	"medinfo-be/internal/repository/contract"
	"medinfo-be/internal/repository/specification"
	"medinfo-be/internal/repository/unitofwork"
)

const (
	essentialsCacheKey = "essentials:categories"
	essentialsCacheTTL = time.Hour
)

// essentialCategories maps a category to the medicine names it lists.
var essentialCategories = map[string][]string{
	"pain":  {"Paracetamol", "Ibuprofen"},
	"cold":  {"Cetirizine", "Paracetamol"},
	"fever": {"Paracetamol", "Ibuprofen"},
}

// essentialCategoryOrder fixes the order categories are reported in.
var essentialCategoryOrder = []string{"pain", "cold", "fever"}

type IEssentialsService interface {
	Categories(ctx context.Context) (*dto.CategoriesResponse, error)
	ByCategory(ctx context.Context, category string) (*dto.CategoryMedicinesResponse, error)
}

type essentialsService struct {
	uowFactory unitofwork.RepositoryFactory
	cache      contract.ResultCache
	logger     logger.ILogger
}

func NewEssentialsService(uowFactory unitofwork.RepositoryFactory, cache contract.ResultCache, log logger.ILogger) IEssentialsService {
	return &essentialsService{
		uowFactory: uowFactory,
		cache:      cache,
		logger:     log,
	}
}

func (s *essentialsService) Categories(ctx context.Context) (*dto.CategoriesResponse, error) {
	var cached dto.CategoriesResponse
	if ok, err := s.cache.Get(ctx, essentialsCacheKey, &cached); err == nil && ok {
		return &cached, nil
	}

	res := &dto.CategoriesResponse{Categories: append([]string(nil), essentialCategoryOrder...)}
	if err := s.cache.Set(ctx, essentialsCacheKey, res, essentialsCacheTTL); err != nil {
		s.logger.Warn("Essentials", "Failed to cache categories", map[string]interface{}{"error": err.Error()})
	}
	return res, nil
}

// ByCategory returns an empty list for unknown categories.
func (s *essentialsService) ByCategory(ctx context.Context, category string) (*dto.CategoryMedicinesResponse, error) {
	names, ok := essentialCategories[category]
	if !ok {
		return &dto.CategoryMedicinesResponse{Medicines: []dto.MedicineResponse{}}, nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	medicines, err := uow.MedicineRepository().FindAll(ctx, specification.NameIn{Names: names})
	if err != nil {
		return nil, err
	}
	return &dto.CategoryMedicinesResponse{Medicines: toMedicineResponses(medicines)}, nil
}
