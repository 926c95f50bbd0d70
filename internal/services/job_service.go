package services

import (
	"gigboard_backend/internal/models"
	"gigboard_backend/internal/repositories"
	"gigboard_backend/internal/services/dto"
	"gigboard_backend/pkg/apperrors"
)

type JobService interface {
	CreateJob(req *dto.CreateJobRequest) (*dto.JobResponse, error)
	GetJob(id string) (*dto.JobResponse, error)
	SearchJobs(criteria repositories.JobCriteria) (*dto.JobListResponse, error)
	UpdateJob(id string, req *dto.UpdateJobRequest) (*dto.JobResponse, error)
	DeleteJob(id string) error
	GetJobLocations() ([]string, error)
	GetJobTypes() ([]string, error)
}

type jobService struct {
	jobRepo     repositories.JobRepository
	companyRepo repositories.CompanyRepository
}

func NewJobService(jobRepo repositories.JobRepository, companyRepo repositories.CompanyRepository) JobService {
	return &jobService{jobRepo: jobRepo, companyRepo: companyRepo}
}

func (s *jobService) CreateJob(req *dto.CreateJobRequest) (*dto.JobResponse, error) {
	if req.CompanyID != nil && *req.CompanyID != "" {
		if _, err := s.companyRepo.FindByID(*req.CompanyID); err != nil {
			if apperrors.Is(err, repositories.ErrCompanyNotFound) {
				return nil, apperrors.CompanyNotFound()
			}
			return nil, apperrors.InternalError(err)
		}
	}

	job := &models.Job{
		Title:            req.Title,
		Company:          req.Company,
		Location:         req.Location,
		Description:      req.Description,
		Salary:           req.Salary,
		Type:             req.Type,
		Industry:         req.Industry,
		ExperienceLevel:  req.ExperienceLevel,
		IsRemote:         req.IsRemote,
		IsUrgentlyHiring: req.IsUrgentlyHiring,
		IsSeasonal:       req.IsSeasonal,
		IsActive:         true,
		CompanyID:        req.CompanyID,
	}

	if err := s.jobRepo.Create(job); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return buildJobResponse(job), nil
}

func (s *jobService) GetJob(id string) (*dto.JobResponse, error) {
	job, err := s.jobRepo.FindByID(id)
	if err != nil {
		return nil, translateJobErr(err)
	}
	return buildJobResponse(job), nil
}

func (s *jobService) SearchJobs(criteria repositories.JobCriteria) (*dto.JobListResponse, error) {
	if criteria.Page < 1 {
		criteria.Page = 1
	}
	if criteria.PageSize < 1 {
		criteria.PageSize = 20
	}

	jobs, total, err := s.jobRepo.Search(criteria)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := &dto.JobListResponse{
		Jobs:     make([]*dto.JobResponse, 0, len(jobs)),
		Total:    total,
		Page:     criteria.Page,
		PageSize: criteria.PageSize,
	}
	for i := range jobs {
		resp.Jobs = append(resp.Jobs, buildJobResponse(&jobs[i]))
	}
	return resp, nil
}

func (s *jobService) UpdateJob(id string, req *dto.UpdateJobRequest) (*dto.JobResponse, error) {
	job, err := s.jobRepo.FindByID(id)
	if err != nil {
		return nil, translateJobErr(err)
	}

	if req.Title != nil {
		job.Title = *req.Title
	}
	if req.Location != nil {
		job.Location = *req.Location
	}
	if req.Description != nil {
		job.Description = *req.Description
	}
	if req.Salary != nil {
		job.Salary = *req.Salary
	}
	if req.Type != nil {
		job.Type = *req.Type
	}
	if req.Industry != nil {
		job.Industry = req.Industry
	}
	if req.ExperienceLevel != nil {
		job.ExperienceLevel = req.ExperienceLevel
	}
	if req.IsRemote != nil {
		job.IsRemote = *req.IsRemote
	}
	if req.IsUrgentlyHiring != nil {
		job.IsUrgentlyHiring = *req.IsUrgentlyHiring
	}
	if req.IsSeasonal != nil {
		job.IsSeasonal = *req.IsSeasonal
	}
	if req.IsActive != nil {
		job.IsActive = *req.IsActive
	}

	if err := s.jobRepo.Update(job); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return buildJobResponse(job), nil
}

func (s *jobService) DeleteJob(id string) error {
	if err := s.jobRepo.Delete(id); err != nil {
		return translateJobErr(err)
	}
	return nil
}

func (s *jobService) GetJobLocations() ([]string, error) {
	locations, err := s.jobRepo.DistinctLocations()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return locations, nil
}

func (s *jobService) GetJobTypes() ([]string, error) {
	types, err := s.jobRepo.DistinctTypes()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return types, nil
}

func buildJobResponse(j *models.Job) *dto.JobResponse {
	return &dto.JobResponse{
		ID:               j.ID,
		Title:            j.Title,
		Company:          j.Company,
		Location:         j.Location,
		Description:      j.Description,
		Salary:           j.Salary,
		Type:             j.Type,
		Industry:         j.Industry,
		ExperienceLevel:  j.ExperienceLevel,
		IsRemote:         j.IsRemote,
		IsUrgentlyHiring: j.IsUrgentlyHiring,
		IsSeasonal:       j.IsSeasonal,
		IsActive:         j.IsActive,
		CompanyID:        j.CompanyID,
		PostedDate:       j.CreatedAt,
		UpdatedDate:      j.UpdatedAt,
	}
}

func translateJobErr(err error) error {
	if apperrors.Is(err, repositories.ErrJobNotFound) {
		return apperrors.JobNotFound()
	}
	return apperrors.InternalError(err)
}
