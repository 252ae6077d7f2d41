package services

import (
	"context"

	"gorm.io/gorm"

	"github.com/dealdesk/dealdesk-backend/internal/data/repos"
	types "github.com/dealdesk/dealdesk-backend/internal/domain"
	"github.com/dealdesk/dealdesk-backend/internal/pkg/apierr"
	"github.com/dealdesk/dealdesk-backend/internal/pkg/logger"
)

type UserService interface {
	GetMe(ctx context.Context) (*types.User, error)
}

type userService struct {
	db       *gorm.DB
	log      *logger.Logger
	userRepo repos.UserRepo
}

func NewUserService(gdb *gorm.DB, baseLog *logger.Logger, userRepo repos.UserRepo) UserService {
	return &userService{
		db:       gdb,
		log:      baseLog.With("service", "UserService"),
		userRepo: userRepo,
	}
}

func (s *userService) GetMe(ctx context.Context) (*types.User, error) {
	rd, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	user, err := s.userRepo.GetByID(ctx, nil, rd.UserID)
	if err != nil {
		s.log.Warn("GetMe failed", "error", err, "user_id", rd.UserID)
		return nil, err
	}
	if user == nil {
		return nil, apierr.NotFound("user")
	}
	return user, nil
}
