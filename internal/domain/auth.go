package domain

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/watchearn/backend/internal/entity"
	"github.com/watchearn/backend/internal/model"
	"github.com/watchearn/backend/internal/repository"
	"github.com/watchearn/backend/pkg/crypto"
	"github.com/watchearn/backend/pkg/errorx"
	"github.com/watchearn/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type AuthDomain interface {
	Register(context.Context, *model.RegisterRequest) (*model.RegisterResponse, error)
	Login(context.Context, *model.LoginRequest) (*model.LoginResponse, error)
}

type authDomain struct {
	userRepo repository.UserRepository
}

func NewAuthDomain(userRepo repository.UserRepository) *authDomain {
	return &authDomain{userRepo: userRepo}
}

func (d *authDomain) Register(
	ctx context.Context, req *model.RegisterRequest,
) (*model.RegisterResponse, error) {
	if req.Name == "" || req.Email == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow an empty name or email")
	}

	if len(req.Password) < 8 {
		return nil, errorx.New(errorx.BadRequest, "Password must have at least 8 characters")
	}

	_, err := d.userRepo.GetByName(ctx, req.Name)
	if err == nil {
		return nil, errorx.New(errorx.AlreadyExists, "This username is already taken")
	}

	if !errors.Is(err, gorm.ErrRecordNotFound) {
		xcontext.Logger(ctx).Errorf("Cannot get user by name: %v", err)
		return nil, errorx.Unknown
	}

	hashedPassword, err := crypto.HashPassword(req.Password)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot hash password: %v", err)
		return nil, errorx.Unknown
	}

	user := &entity.User{
		Base:           entity.Base{ID: uuid.NewString()},
		Name:           req.Name,
		Email:          req.Email,
		HashedPassword: hashedPassword,
		Role:           entity.UserRole,
	}

	if err := d.userRepo.Create(ctx, user); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create user: %v", err)
		return nil, errorx.Unknown
	}

	return &model.RegisterResponse{User: model.ConvertUser(user, true)}, nil
}

func (d *authDomain) Login(
	ctx context.Context, req *model.LoginRequest,
) (*model.LoginResponse, error) {
	user, err := d.userRepo.GetByName(ctx, req.Name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.Unauthenticated, "Invalid username or password")
		}

		xcontext.Logger(ctx).Errorf("Cannot get user by name: %v", err)
		return nil, errorx.Unknown
	}

	if err := crypto.ComparePassword(user.HashedPassword, req.Password); err != nil {
		return nil, errorx.New(errorx.Unauthenticated, "Invalid username or password")
	}

	accessToken, err := xcontext.TokenEngine(ctx).Generate(
		xcontext.Configs(ctx).Auth.AccessToken.Expiration,
		model.AccessToken{
			ID:   user.ID,
			Name: user.Name,
		})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot generate access token: %v", err)
		return nil, errorx.Unknown
	}

	return &model.LoginResponse{
		AccessToken: accessToken,
		User:        model.ConvertUser(user, true),
	}, nil
}
