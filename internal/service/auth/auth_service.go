package auth

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/ougirez/rtrw/internal/domain"
	"github.com/ougirez/rtrw/internal/domain/dto"
	"github.com/ougirez/rtrw/internal/pkg/constants"
	"github.com/ougirez/rtrw/internal/pkg/logger"
	"github.com/ougirez/rtrw/internal/pkg/store"
	"github.com/ougirez/rtrw/internal/pkg/utils"
)

type Config struct {
	Secret         string
	TokenTTL       time.Duration
	AllowedRegions []string
}

type Service struct {
	store store.UserStore
	cfg   Config
}

func NewService(store store.UserStore, cfg Config) *Service {
	return &Service{store: store, cfg: cfg}
}

func (svc *Service) SignupUser(ctx context.Context, request *dto.SignupRequest) (*dto.LoginResponse, error) {
	user, err := svc.createUser(ctx, request.Username, request.Password, request.Name, request.Region, "", domain.RoleUser)
	if err != nil {
		return nil, err
	}

	return svc.issue(user)
}

func (svc *Service) LoginUser(ctx context.Context, request *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := svc.store.GetUserByUsername(ctx, request.Username)
	if err != nil {
		if errors.Is(err, constants.ErrDBNotFound) {
			return nil, constants.ErrInvalidPassword
		}
		return nil, fmt.Errorf("store.GetUserByUsername: %w", err)
	}

	if err = utils.CheckPassword(user.PasswordHash, request.Password); err != nil {
		return nil, err
	}

	logger.Debugf(ctx, "login: userID: [%v]", user.ID)

	return svc.issue(user)
}

// CreateAdmin provisions the administrator account of one RW.
func (svc *Service) CreateAdmin(ctx context.Context, request *dto.CreateAdminRequest) (*domain.User, error) {
	return svc.createUser(ctx, request.Username, request.Password, request.Name, request.Region, request.SubRegion, domain.RoleAdmin)
}

// Identify turns a raw auth token into the caller identity.
func (svc *Service) Identify(raw string) (domain.Identity, error) {
	claims, err := utils.ParseAuthToken(raw, svc.cfg.Secret)
	if err != nil {
		return domain.Identity{}, err
	}
	return claims.Identity, nil
}

func (svc *Service) TokenTTL() time.Duration {
	return svc.cfg.TokenTTL
}

func (svc *Service) createUser(ctx context.Context, username, password, name, region, subRegion string, role domain.Role) (*domain.User, error) {
	if len(svc.cfg.AllowedRegions) > 0 && !slices.Contains(svc.cfg.AllowedRegions, region) {
		return nil, constants.ErrRegionNotAllowed
	}
	if len(password) < 6 {
		return nil, fmt.Errorf("%w: password must be at least 6 characters", constants.ErrValidation)
	}

	if _, err := svc.store.GetUserByUsername(ctx, username); !errors.Is(err, constants.ErrDBNotFound) {
		if err == nil {
			return nil, constants.ErrUsernameTaken
		}
		return nil, fmt.Errorf("store.GetUserByUsername: %w", err)
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user, err := svc.store.CreateUser(ctx, &domain.User{
		Username:     username,
		DisplayName:  name,
		PasswordHash: hash,
		Role:         role,
		Region:       region,
		SubRegion:    subRegion,
	})
	if err != nil {
		return nil, fmt.Errorf("store.CreateUser: %w", err)
	}

	logger.Infof(ctx, "registered %s %q in RW %s", role, username, region)

	return user, nil
}

func (svc *Service) issue(user *domain.User) (*dto.LoginResponse, error) {
	identity := user.Identity()
	authToken, err := utils.GenerateAuthToken(identity, svc.cfg.Secret, svc.cfg.TokenTTL)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{Identity: identity, AuthToken: authToken}, nil
}
