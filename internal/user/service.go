package user

import (
	"context"
	"errors"
	"strings"

	"ramba-be/internal/logger"
	"ramba-be/internal/utils"

	"go.uber.org/zap"
)

type Service interface {
	Signup(ctx context.Context, input SignupInput) (string, *User, error)
	Login(ctx context.Context, email, password string) (string, *User, error)
	GetByID(ctx context.Context, id string) (*User, error)

	List(ctx context.Context) ([]User, error)
	CreateUser(ctx context.Context, input NewUserInput) (*User, error)
	UpdateUser(ctx context.Context, id string, input UpdateUserInput) (*User, error)
	DeleteUser(ctx context.Context, id string) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Signup(ctx context.Context, input SignupInput) (string, *User, error) {
	log := logger.FromCtx(ctx).With(zap.String("layer", "service"), zap.String("method", "Signup"))

	if input.Name == "" || input.Email == "" || input.Password == "" || input.CompanyName == "" {
		return "", nil, utils.Invalid("signup", "name, email, password and company_name are required")
	}
	if !utils.ValidEmail(input.Email) {
		return "", nil, utils.Invalid("email", "invalid email format")
	}
	if input.Country == "" {
		input.Country = "Unknown"
	}

	hashed, err := HashPassword(input.Password)
	if err != nil {
		log.Error("failed to hash password", zap.Error(err))
		return "", nil, err
	}

	u, err := s.repo.Create(ctx, &User{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hashed,
		Role:         RoleBuyer,
		CompanyName:  input.CompanyName,
		Country:      input.Country,
	})
	if err != nil {
		if strings.Contains(err.Error(), "users_email_key") {
			return "", nil, ErrEmailExists
		}
		log.Error("failed to create user", zap.String("email", input.Email), zap.Error(err))
		return "", nil, err
	}

	token, err := GenerateJWT(u.ID, string(u.Role), u.Email)
	if err != nil {
		log.Error("failed to generate jwt", zap.String("user_id", u.ID), zap.Error(err))
		return "", nil, err
	}

	log.Info("signup completed", zap.String("user_id", u.ID), zap.String("email", u.Email))
	return token, u, nil
}

func (s *service) Login(ctx context.Context, email, password string) (string, *User, error) {
	if email == "" || password == "" {
		return "", nil, utils.Invalid("login", "email and password are required")
	}

	u, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		// Same error whether the account exists or the password is wrong.
		return "", nil, ErrInvalidCredentials
	}

	if !CheckPasswordHash(password, u.PasswordHash) {
		return "", nil, ErrInvalidCredentials
	}

	token, err := GenerateJWT(u.ID, string(u.Role), u.Email)
	if err != nil {
		return "", nil, err
	}

	return token, u, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*User, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *service) List(ctx context.Context) ([]User, error) {
	return s.repo.List(ctx)
}

func (s *service) CreateUser(ctx context.Context, input NewUserInput) (*User, error) {
	if input.Name == "" || input.Email == "" || input.Password == "" ||
		input.Role == "" || input.CompanyName == "" || input.Country == "" {
		return nil, utils.Invalid("user", "all fields are required")
	}
	if !ValidRole(input.Role) {
		return nil, ErrInvalidRole
	}
	if !utils.ValidEmail(input.Email) {
		return nil, utils.Invalid("email", "invalid email format")
	}

	if _, err := s.repo.FindByEmail(ctx, input.Email); err == nil {
		return nil, ErrEmailExists
	} else if !errors.Is(err, ErrUserNotFound) {
		return nil, err
	}

	hashed, err := HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	return s.repo.Create(ctx, &User{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hashed,
		Role:         input.Role,
		CompanyName:  input.CompanyName,
		Country:      input.Country,
	})
}

func (s *service) UpdateUser(ctx context.Context, id string, input UpdateUserInput) (*User, error) {
	if input.Name == "" || input.Email == "" || input.Role == "" ||
		input.CompanyName == "" || input.Country == "" {
		return nil, utils.Invalid("user", "all fields are required")
	}
	if !ValidRole(input.Role) {
		return nil, ErrInvalidRole
	}

	taken, err := s.repo.EmailTaken(ctx, input.Email, id)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrEmailExists
	}

	return s.repo.Update(ctx, id, input)
}

func (s *service) DeleteUser(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
