package auth

import (
	"context"
	"errors"
	"time"

	common_models "sales-crm/internal/common/models"
	"sales-crm/internal/features/user"
	"sales-crm/pkg/utils"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrEmailTaken = errors.New("email already registered")

type RegisterRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	DisplayName string `json:"display_name"`
}

func (r RegisterRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required, is.Email),
		validation.Field(&r.Password, validation.Required, validation.Length(8, 72)),
	)
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthService interface {
	Register(ctx context.Context, req RegisterRequest) (*user.User, string, error)
	Login(ctx context.Context, req LoginRequest) (string, error)
	Me(ctx context.Context) (*user.User, error)
}

type AuthServiceImpl struct {
	UserRepo user.UserRepository
}

func NewAuthService(userRepo user.UserRepository) AuthService {
	return &AuthServiceImpl{UserRepo: userRepo}
}

func (s *AuthServiceImpl) Register(ctx context.Context, req RegisterRequest) (*user.User, string, error) {
	if err := req.Validate(); err != nil {
		return nil, "", err
	}

	if existing, err := s.UserRepo.FindByEmail(ctx, req.Email); err == nil && existing != nil {
		return nil, "", ErrEmailTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	now := time.Now()
	newUser := user.User{
		Email:       req.Email,
		Password:    string(hashed),
		DisplayName: req.DisplayName,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.UserRepo.Create(ctx, &newUser); err != nil {
		return nil, "", err
	}

	token, err := utils.GenerateToken(newUser.ID, newUser.Email)
	if err != nil {
		return nil, "", err
	}

	return &newUser, token, nil
}

func (s *AuthServiceImpl) Login(ctx context.Context, req LoginRequest) (string, error) {
	usr, err := s.UserRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, common_models.ErrNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(usr.Password), []byte(req.Password)); err != nil {
		return "", ErrInvalidCredentials
	}

	return utils.GenerateToken(usr.ID, usr.Email)
}

func (s *AuthServiceImpl) Me(ctx context.Context) (*user.User, error) {
	claims := utils.ClaimsFromContext(ctx)
	if claims == nil {
		return nil, ErrInvalidCredentials
	}
	return s.UserRepo.FindByID(ctx, claims.UserID)
}
