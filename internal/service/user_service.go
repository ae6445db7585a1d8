package service

import (
	"context"
	"errors"

	"medinfo-be/internal/dto"
	"medinfo-be/internal/entity"
	"medinfo-be/internal/pkg/logger"
	"medinfo-be/internal/repository/specification"
	"medinfo-be/internal/repository/unitofwork"
	"medinfo-be/pkg/events"

	"gorm.io/gorm"
)

type IUserService interface {
	SaveMedicine(ctx context.Context, req *dto.SaveMedicineRequest) (*dto.SaveMedicineResponse, error)
	GetSaved(ctx context.Context, username string) (*dto.SavedResponse, error)
}

type userService struct {
	uowFactory     unitofwork.RepositoryFactory
	eventPublisher EventPublisher
	logger         logger.ILogger
}

func NewUserService(uowFactory unitofwork.RepositoryFactory, eventPublisher EventPublisher, log logger.ILogger) IUserService {
	return &userService{
		uowFactory:     uowFactory,
		eventPublisher: eventPublisher,
		logger:         log,
	}
}

// SaveMedicine is idempotent: saving a medicine twice keeps a single entry.
func (s *userService) SaveMedicine(ctx context.Context, req *dto.SaveMedicineRequest) (*dto.SaveMedicineResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByUsername{Username: req.Username})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	medicine, err := uow.MedicineRepository().FindOne(ctx, specification.ByID{ID: req.MedicineId})
	if err != nil {
		return nil, err
	}
	if medicine == nil {
		return nil, ErrMedicineNotFound
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	existing, err := uow.UserRepository().FindSavedMedicine(ctx,
		specification.UserOwnedBy{UserID: user.Id},
		specification.ByMedicineID{MedicineID: medicine.Id},
	)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return &dto.SaveMedicineResponse{Message: "Medicine already saved", AlreadySaved: true}, nil
	}

	saved := &entity.SavedMedicine{UserId: user.Id, MedicineId: medicine.Id}
	if err := uow.UserRepository().CreateSavedMedicine(ctx, saved); err != nil {
		// A concurrent save won the unique (user, medicine) index
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return &dto.SaveMedicineResponse{Message: "Medicine already saved", AlreadySaved: true}, nil
		}
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.logger.Info("User", "Medicine saved", map[string]interface{}{
		"username":    user.Username,
		"medicine_id": medicine.Id,
	})
	publishAsync(s.eventPublisher, s.logger, events.NewMedicineSaved(user.Username, medicine.Id))

	return &dto.SaveMedicineResponse{Message: "Medicine saved"}, nil
}

func (s *userService) GetSaved(ctx context.Context, username string) (*dto.SavedResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByUsername{Username: username})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	saved, err := uow.UserRepository().FindSavedMedicines(ctx, user.Id)
	if err != nil {
		return nil, err
	}

	res := &dto.SavedResponse{Saved: make([]dto.MedicineResponse, 0, len(saved))}
	for _, s := range saved {
		// Medicine rows deleted after saving are skipped
		if s.Medicine == nil {
			continue
		}
		res.Saved = append(res.Saved, toMedicineResponse(s.Medicine))
	}
	return res, nil
}
