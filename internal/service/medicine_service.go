package service

import (
	"context"
	"strings"

	"medinfo-be/internal/dto"
	"medinfo-be/internal/entity"
	"medinfo-be/internal/pkg/logger"
	"medinfo-be/internal/repository/specification"
	"medinfo-be/internal/repository/unitofwork"

	"github.com/agnivade/levenshtein"
)

// maxSuggestionDistance bounds how far a typo may be from a known name.
const maxSuggestionDistance = 3

type IMedicineService interface {
	Search(ctx context.Context, query string) (*dto.SearchResponse, error)
	Generic(ctx context.Context, name string) (*dto.GenericResponse, error)
	Create(ctx context.Context, req *dto.CreateMedicineRequest) (*dto.CreatedResponse, error)
}

type medicineService struct {
	uowFactory unitofwork.RepositoryFactory
	logger     logger.ILogger
}

func NewMedicineService(uowFactory unitofwork.RepositoryFactory, log logger.ILogger) IMedicineService {
	return &medicineService{
		uowFactory: uowFactory,
		logger:     log,
	}
}

func (s *medicineService) Search(ctx context.Context, query string) (*dto.SearchResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	medicines, err := uow.MedicineRepository().FindAll(ctx, specification.NameContains{Term: query})
	if err != nil {
		return nil, err
	}

	return &dto.SearchResponse{Results: toMedicineResponses(medicines)}, nil
}

// Generic resolves name to the first medicine whose name or generic contains it,
// then lists every medicine sharing that generic.
func (s *medicineService) Generic(ctx context.Context, name string) (*dto.GenericResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	medicine, err := uow.MedicineRepository().FindOne(ctx, specification.NameOrGenericContains{Term: name})
	if err != nil {
		return nil, err
	}
	if medicine == nil {
		suggestion, err := s.suggest(ctx, uow, name)
		if err != nil {
			s.logger.Warn("Medicine", "Suggestion lookup failed", map[string]interface{}{"error": err.Error()})
		}
		return nil, &GenericNotFoundError{Suggestion: suggestion}
	}

	brands, err := uow.MedicineRepository().FindAll(ctx, specification.ByGeneric{Generic: medicine.Generic})
	if err != nil {
		return nil, err
	}

	res := &dto.GenericResponse{
		Generic: medicine.Generic,
		Brands:  make([]dto.BrandResponse, 0, len(brands)),
	}
	for _, b := range brands {
		res.Brands = append(res.Brands, dto.BrandResponse{
			Id:      b.Id,
			Name:    b.Name,
			Company: b.Company,
			Price:   b.Price,
		})
	}
	return res, nil
}

func (s *medicineService) suggest(ctx context.Context, uow unitofwork.UnitOfWork, name string) (string, error) {
	names, err := uow.MedicineRepository().ListNames(ctx)
	if err != nil {
		return "", err
	}
	return closestName(name, names), nil
}

// closestName returns the candidate with the smallest edit distance to term,
// or "" when nothing is within maxSuggestionDistance. Ties keep the first candidate.
func closestName(term string, candidates []string) string {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return ""
	}

	best := ""
	bestDistance := maxSuggestionDistance + 1
	for _, c := range candidates {
		d := levenshtein.ComputeDistance(term, strings.ToLower(c))
		if d < bestDistance {
			best = c
			bestDistance = d
		}
	}
	return best
}

func (s *medicineService) Create(ctx context.Context, req *dto.CreateMedicineRequest) (*dto.CreatedResponse, error) {
	medicine := &entity.Medicine{
		Name:    strings.TrimSpace(req.Name),
		Generic: strings.TrimSpace(req.Generic),
		Company: req.Company,
		Price:   req.Price,
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.MedicineRepository().Create(ctx, medicine); err != nil {
		return nil, err
	}

	s.logger.Info("Medicine", "Medicine created", map[string]interface{}{"id": medicine.Id, "name": medicine.Name})
	return &dto.CreatedResponse{Id: medicine.Id, Name: medicine.Name}, nil
}

func toMedicineResponse(m *entity.Medicine) dto.MedicineResponse {
	return dto.MedicineResponse{
		Id:      m.Id,
		Name:    m.Name,
		Generic: m.Generic,
		Company: m.Company,
		Price:   m.Price,
	}
}

func toMedicineResponses(medicines []*entity.Medicine) []dto.MedicineResponse {
	res := make([]dto.MedicineResponse, 0, len(medicines))
	for _, m := range medicines {
		res = append(res, toMedicineResponse(m))
	}
	return res
}
