package service

import (
	"context"
	"math"
	"sort"
	"strings"
	"time"

	"medinfo-be/internal/dto"
	"medinfo-be/internal/entity"
	"medinfo-be/internal/pkg/logger"
	"medinfo-be/internal/repository/contract"
	"medinfo-be/internal/repository/unitofwork"
)

const (
	kendraCachePrefix  = "kendra:"
	kendraListCacheKey = kendraCachePrefix + "all"
	kendraCacheTTL     = 5 * time.Minute
	earthRadiusKm      = 6371.0
)

type IKendraService interface {
	Nearby(ctx context.Context, req *dto.NearbyKendrasRequest) (*dto.NearbyKendrasResponse, error)
	Create(ctx context.Context, req *dto.CreateKendraRequest) (*dto.CreatedResponse, error)
}

type kendraService struct {
	uowFactory unitofwork.RepositoryFactory
	cache      contract.ResultCache
	logger     logger.ILogger
}

func NewKendraService(uowFactory unitofwork.RepositoryFactory, cache contract.ResultCache, log logger.ILogger) IKendraService {
	return &kendraService{
		uowFactory: uowFactory,
		cache:      cache,
		logger:     log,
	}
}

// Nearby lists every kendra ordered by distance from the point. A positive
// RadiusKm drops kendras farther than that.
func (s *kendraService) Nearby(ctx context.Context, req *dto.NearbyKendrasRequest) (*dto.NearbyKendrasResponse, error) {
	kendras, err := s.allKendras(ctx)
	if err != nil {
		return nil, err
	}

	res := &dto.NearbyKendrasResponse{Kendras: make([]dto.KendraResponse, 0, len(kendras))}
	for _, k := range kendras {
		d := haversineKm(req.Lat, req.Lng, k.Lat, k.Lng)
		if req.RadiusKm > 0 && d > req.RadiusKm {
			continue
		}
		k.DistanceKm = math.Round(d*100) / 100
		res.Kendras = append(res.Kendras, k)
	}
	sort.SliceStable(res.Kendras, func(i, j int) bool {
		return res.Kendras[i].DistanceKm < res.Kendras[j].DistanceKm
	})
	return res, nil
}

// allKendras returns the kendra list without distances, from the cache when
// it is warm. Distances depend on the caller so they are never cached.
func (s *kendraService) allKendras(ctx context.Context) ([]dto.KendraResponse, error) {
	var cached []dto.KendraResponse
	if ok, err := s.cache.Get(ctx, kendraListCacheKey, &cached); err == nil && ok {
		return cached, nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	kendras, err := uow.KendraRepository().FindAll(ctx)
	if err != nil {
		return nil, err
	}

	list := make([]dto.KendraResponse, 0, len(kendras))
	for _, k := range kendras {
		list = append(list, dto.KendraResponse{Id: k.Id, Name: k.Name, Lat: k.Lat, Lng: k.Lng})
	}
	if err := s.cache.Set(ctx, kendraListCacheKey, list, kendraCacheTTL); err != nil {
		s.logger.Warn("Kendra", "Failed to cache kendra list", map[string]interface{}{"error": err.Error()})
	}
	return list, nil
}

func (s *kendraService) Create(ctx context.Context, req *dto.CreateKendraRequest) (*dto.CreatedResponse, error) {
	kendra := &entity.Kendra{
		Name: strings.TrimSpace(req.Name),
		Lat:  req.Lat,
		Lng:  req.Lng,
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.KendraRepository().Create(ctx, kendra); err != nil {
		return nil, err
	}

	if err := s.cache.DeletePrefix(ctx, kendraCachePrefix); err != nil {
		s.logger.Warn("Kendra", "Failed to invalidate kendra cache", map[string]interface{}{"error": err.Error()})
	}

	s.logger.Info("Kendra", "Kendra created", map[string]interface{}{"id": kendra.Id, "name": kendra.Name})
	return &dto.CreatedResponse{Id: kendra.Id, Name: kendra.Name}, nil
}

func haversineKm(lat1, lng1, lat2, lng2 float64) float64 {
	toRad := func(deg float64) float64 { return deg * math.Pi / 180 }

	dLat := toRad(lat2 - lat1)
	dLng := toRad(lng2 - lng1)
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRad(lat1))*math.Cos(toRad(lat2))*math.Sin(dLng/2)*math.Sin(dLng/2)
	return 2 * earthRadiusKm * math.Asin(math.Sqrt(a))
}
