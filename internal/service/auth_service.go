package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"medinfo-be/internal/dto"
	"medinfo-be/internal/entity"
	"medinfo-be/internal/pkg/logger"
	"medinfo-be/internal/pkg/serverutils"
	"medinfo-be/internal/repository/specification"
	"medinfo-be/internal/repository/unitofwork"
	"medinfo-be/pkg/events"

	"golang.org/x/crypto/bcrypt"
)

type IAuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) error
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
}

type authService struct {
	uowFactory     unitofwork.RepositoryFactory
	eventPublisher EventPublisher
	logger         logger.ILogger
	jwtSecret      string
	tokenTTL       time.Duration
}

func NewAuthService(
	uowFactory unitofwork.RepositoryFactory,
	eventPublisher EventPublisher,
	log logger.ILogger,
	jwtSecret string,
	tokenTTL time.Duration,
) IAuthService {
	return &authService{
		uowFactory:     uowFactory,
		eventPublisher: eventPublisher,
		logger:         log,
		jwtSecret:      jwtSecret,
		tokenTTL:       tokenTTL,
	}
}

func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) error {
	username := strings.TrimSpace(req.Username)
	if username == "" {
		return ErrInvalidInput
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	existing, err := uow.UserRepository().FindOne(ctx, specification.ByUsername{Username: username})
	if err != nil {
		return err
	}
	if existing != nil {
		return ErrUserExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user := &entity.User{
		Username:       username,
		HashedPassword: string(hash),
	}
	if err := uow.UserRepository().Create(ctx, user); err != nil {
		// Lost a race against a concurrent registration
		if taken, _ := uow.UserRepository().Count(ctx, specification.ByUsername{Username: username}); taken > 0 {
			return ErrUserExists
		}
		return err
	}

	s.logger.Info("Auth", "User registered", map[string]interface{}{"username": username})
	publishAsync(s.eventPublisher, s.logger, events.NewUserRegistered(username))
	return nil
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := uow.UserRepository().FindOne(ctx, specification.ByUsername{Username: strings.TrimSpace(req.Username)})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	err = bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(req.Password))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	token, err := serverutils.GenerateToken(s.jwtSecret, user.Username, s.tokenTTL)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		Message:     "Login successful",
		AccessToken: token,
		TokenType:   "bearer",
	}, nil
}
