package services

import (
	"gigboard_backend/internal/auth"
	"gigboard_backend/internal/models"
	"gigboard_backend/internal/repositories"
	"gigboard_backend/internal/services/dto"
	"gigboard_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type AuthService interface {
	Register(req *dto.RegisterRequest) (*dto.LoginResponse, error)
	Login(req *dto.LoginRequest) (*dto.LoginResponse, error)
}

type authService struct {
	db          *gorm.DB
	userRepo    repositories.UserRepository
	companyRepo repositories.CompanyRepository
}

func NewAuthService(db *gorm.DB, userRepo repositories.UserRepository, companyRepo repositories.CompanyRepository) AuthService {
	return &authService{
		db:          db,
		userRepo:    userRepo,
		companyRepo: companyRepo,
	}
}

func (s *authService) Register(req *dto.RegisterRequest) (*dto.LoginResponse, error) {
	if _, err := s.userRepo.FindByEmail(req.Email); err == nil {
		return nil, apperrors.EmailAlreadyRegistered()
	}

	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, apperrors.NewBadRequestError(err.Error())
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		Phone:        req.Phone,
		Location:     req.Location,
		UserType:     models.UserType(req.UserType),
		PasswordHash: hash,
		OpenToRemote: true,
		IsActive:     true,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		// An employer registering with a company name gets the company
		// created in the same unit of work.
		if user.UserType == models.UserTypeEmployer && req.CompanyName != "" {
			company := &models.Company{
				Name:     req.CompanyName,
				Email:    req.Email,
				Location: req.Location,
				IsActive: true,
			}
			if err := s.companyRepo.WithTx(tx).Create(company); err != nil {
				return err
			}
			user.CompanyID = &company.ID
		}
		return s.userRepo.WithTx(tx).Create(user)
	})
	if err != nil {
		if apperrors.Is(err, repositories.ErrDuplicateEmail) {
			return nil, apperrors.EmailAlreadyRegistered()
		}
		return nil, apperrors.InternalError(err)
	}

	return s.buildLoginResponse(user)
}

func (s *authService) Login(req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		// Same response for unknown email and wrong password
		return nil, apperrors.InvalidCredentials()
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.InvalidCredentials()
	}

	return s.buildLoginResponse(user)
}

func (s *authService) buildLoginResponse(user *models.User) (*dto.LoginResponse, error) {
	token, err := auth.GenerateToken(user.ID, string(user.UserType), user.IsAdmin)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return &dto.LoginResponse{
		AccessToken: token,
		User:        buildUserResponse(user),
	}, nil
}
