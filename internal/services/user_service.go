package services

import (
	"fmt"
	"mime/multipart"

	"gigboard_backend/internal/models"
	"gigboard_backend/internal/repositories"
	"gigboard_backend/internal/services/dto"
	"gigboard_backend/internal/storage"
	"gigboard_backend/pkg/apperrors"
)

type UserService interface {
	GetUser(id string) (*dto.UserResponse, error)
	GetUsersByType(userType string, page, pageSize int) (*dto.UserListResponse, error)
	UpdateUser(id string, req *dto.UpdateUserRequest) (*dto.UserResponse, error)
	// ToggleUserActive flips the account's active flag. Deactivation is
	// reversible, unlike DeleteUser.
	ToggleUserActive(id string) (*dto.UserResponse, error)
	DeleteUser(id string) error
	UploadResume(id string, file *multipart.FileHeader) (*dto.UserResponse, error)
}

type userService struct {
	userRepo repositories.UserRepository
	storage  storage.Storage
}

func NewUserService(userRepo repositories.UserRepository, store storage.Storage) UserService {
	return &userService{userRepo: userRepo, storage: store}
}

func (s *userService) GetUser(id string) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		return nil, translateUserErr(err)
	}
	return buildUserResponse(user), nil
}

func (s *userService) GetUsersByType(userType string, page, pageSize int) (*dto.UserListResponse, error) {
	ut := models.UserType(userType)
	if ut != models.UserTypeWorker && ut != models.UserTypeEmployer {
		return nil, apperrors.NewBadRequestError(fmt.Sprintf("unknown user type %q", userType))
	}

	users, total, err := s.userRepo.FindByType(ut, page, pageSize)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := &dto.UserListResponse{
		Users:    make([]*dto.UserResponse, 0, len(users)),
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}
	for i := range users {
		resp.Users = append(resp.Users, buildUserResponse(&users[i]))
	}
	return resp, nil
}

func (s *userService) UpdateUser(id string, req *dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		return nil, translateUserErr(err)
	}

	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if req.Phone != nil {
		user.Phone = *req.Phone
	}
	if req.Location != nil {
		user.Location = *req.Location
	}
	if req.Bio != nil {
		user.Bio = *req.Bio
	}
	if req.Skills != nil {
		user.Skills = *req.Skills
	}
	if req.Title != nil {
		user.Title = *req.Title
	}
	if req.DesiredJobTitle != nil {
		user.DesiredJobTitle = req.DesiredJobTitle
	}
	if req.DesiredLocation != nil {
		user.DesiredLocation = req.DesiredLocation
	}
	if req.DesiredSalaryRange != nil {
		user.DesiredSalaryRange = req.DesiredSalaryRange
	}
	if req.DesiredJobType != nil {
		user.DesiredJobType = req.DesiredJobType
	}
	if req.DesiredExperienceLevel != nil {
		user.DesiredExperienceLevel = req.DesiredExperienceLevel
	}
	if req.OpenToRemote != nil {
		user.OpenToRemote = *req.OpenToRemote
	}
	if req.PreferredIndustries != nil {
		user.PreferredIndustries = req.PreferredIndustries
	}

	if err := s.userRepo.Update(user); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return buildUserResponse(user), nil
}

func (s *userService) ToggleUserActive(id string) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		return nil, translateUserErr(err)
	}

	user.IsActive = !user.IsActive
	if err := s.userRepo.Update(user); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return buildUserResponse(user), nil
}

func (s *userService) DeleteUser(id string) error {
	if _, err := s.userRepo.FindByID(id); err != nil {
		return translateUserErr(err)
	}
	if err := s.userRepo.Delete(id); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *userService) UploadResume(id string, file *multipart.FileHeader) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		return nil, translateUserErr(err)
	}

	stored, err := s.storage.Save(file, "resumes")
	if err != nil {
		return nil, apperrors.NewBadRequestError(err.Error())
	}

	user.ResumeURL = &stored.URL
	if err := s.userRepo.Update(user); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return buildUserResponse(user), nil
}

func buildUserResponse(u *models.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Phone:     u.Phone,
		Location:  u.Location,
		Bio:       u.Bio,
		Skills:    u.Skills,
		Title:     u.Title,
		UserType:  string(u.UserType),

		ResumeURL:              u.ResumeURL,
		DesiredJobTitle:        u.DesiredJobTitle,
		DesiredLocation:        u.DesiredLocation,
		DesiredSalaryRange:     u.DesiredSalaryRange,
		DesiredJobType:         u.DesiredJobType,
		DesiredExperienceLevel: u.DesiredExperienceLevel,
		OpenToRemote:           u.OpenToRemote,
		PreferredIndustries:    u.PreferredIndustries,

		IsActive:    u.IsActive,
		IsAdmin:     u.IsAdmin,
		CompanyID:   u.CompanyID,
		CreatedDate: u.CreatedAt,
		UpdatedDate: u.UpdatedAt,
	}
}

func translateUserErr(err error) error {
	if apperrors.Is(err, repositories.ErrUserNotFound) {
		return apperrors.UserNotFound()
	}
	return apperrors.InternalError(err)
}
