package usecase

import (
	"context"
	"time"

	"spaceport-booking/internal/data/entity"
	"spaceport-booking/internal/data/repository"
	"spaceport-booking/internal/dto/request"
	"spaceport-booking/internal/dto/response"
	"spaceport-booking/pkg/apperr"
	"spaceport-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AuthService interface {
	Register(ctx context.Context, req *request.RegisterRequest) (*response.AuthResponse, error)
	Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error)
}

type authService struct {
	repo *repository.Repository
	jwt  utils.JWTConfig
	log  *zap.Logger
}

func NewAuthService(repo *repository.Repository, jwt utils.JWTConfig, log *zap.Logger) AuthService {
	return &authService{
		repo: repo,
		jwt:  jwt,
		log:  log.With(zap.String("service", "auth")),
	}
}

// Register creates a customer account. Admin accounts are provisioned out
// of band, never through this endpoint.
func (s *authService) Register(ctx context.Context, req *request.RegisterRequest) (*response.AuthResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, apperr.NewValidation("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	existing, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperr.NewValidation("email %s is already registered", req.Email)
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, apperr.NewStorage("hash password", err)
	}

	now := time.Now()
	user := &entity.User{
		Base:     entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		Email:    req.Email,
		Password: hash,
		FullName: req.FullName,
		Role:     entity.RoleCustomer,
	}

	if err := s.repo.User.Create(ctx, user); err != nil {
		return nil, err
	}

	s.log.Info("User registered",
		zap.String("user_id", user.ID.String()),
		zap.String("email", user.Email),
	)

	return s.issueToken(user)
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, apperr.NewValidation("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	user, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	// Same error for unknown email and wrong password.
	if user == nil || !utils.CheckPassword(user.Password, req.Password) {
		return nil, &apperr.Forbidden{Msg: "invalid email or password"}
	}

	s.log.Info("User logged in", zap.String("user_id", user.ID.String()))

	return s.issueToken(user)
}

func (s *authService) issueToken(user *entity.User) (*response.AuthResponse, error) {
	token, err := utils.GenerateToken(s.jwt.Secret, user.ID, user.Role, s.jwt.ExpiryHours)
	if err != nil {
		s.log.Error("Failed to sign token", zap.Error(err))
		return nil, apperr.NewStorage("sign token", err)
	}

	return &response.AuthResponse{
		Token: token,
		User: response.UserResponse{
			ID:        user.ID.String(),
			Email:     user.Email,
			FullName:  user.FullName,
			Role:      user.Role,
			CreatedAt: user.CreatedAt,
		},
	}, nil
}
