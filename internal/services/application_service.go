package services

import (
	"fmt"
	"strings"

	"gigboard_backend/internal/models"
	"gigboard_backend/internal/repositories"
	"gigboard_backend/internal/services/dto"
	"gigboard_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type ApplicationService interface {
	SubmitApplication(req *dto.SubmitApplicationRequest) (*dto.ApplicationResponse, error)
	GetApplication(applicationID string) (*dto.ApplicationResponse, error)
	GetAllApplications() ([]*dto.ApplicationResponse, error)
	GetWorkerApplications(workerID string) ([]*dto.ApplicationResponse, error)
	GetJobApplications(jobID string) ([]*dto.ApplicationResponse, error)
	UpdateApplicationStatus(applicationID string, req *dto.UpdateApplicationStatusRequest) (*dto.ApplicationResponse, error)
}

type applicationService struct {
	db               *gorm.DB
	applicationRepo  repositories.ApplicationRepository
	jobRepo          repositories.JobRepository
	userRepo         repositories.UserRepository
	notificationRepo repositories.NotificationRepository
	notifier         Notifier
}

func NewApplicationService(
	db *gorm.DB,
	applicationRepo repositories.ApplicationRepository,
	jobRepo repositories.JobRepository,
	userRepo repositories.UserRepository,
	notificationRepo repositories.NotificationRepository,
	notifier Notifier,
) ApplicationService {
	return &applicationService{
		db:               db,
		applicationRepo:  applicationRepo,
		jobRepo:          jobRepo,
		userRepo:         userRepo,
		notificationRepo: notificationRepo,
		notifier:         notifier,
	}
}

// SubmitApplication creates the application plus one notification per
// employer account at the job's company, all in one transaction. A company
// with no employer accounts simply gets no notifications.
func (s *applicationService) SubmitApplication(req *dto.SubmitApplicationRequest) (*dto.ApplicationResponse, error) {
	// Friendly duplicate pre-check; the unique index is the real guard.
	if _, err := s.applicationRepo.FindByJobAndWorker(req.JobID, req.WorkerID); err == nil {
		return nil, apperrors.DuplicateApplication()
	}

	worker, err := s.userRepo.FindByID(req.WorkerID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.UserNotFound()
		}
		return nil, apperrors.InternalError(err)
	}

	job, err := s.jobRepo.FindByID(req.JobID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.JobNotFound()
		}
		return nil, apperrors.InternalError(err)
	}

	// Snapshot of the worker profile, frozen at submission time
	application := &models.Application{
		JobID:          req.JobID,
		WorkerID:       req.WorkerID,
		WorkerName:     worker.FullName(),
		WorkerEmail:    worker.Email,
		WorkerPhone:    worker.Phone,
		WorkerSkills:   worker.Skills,
		WorkerTitle:    worker.Title,
		WorkerLocation: worker.Location,
		ResumeURL:      worker.ResumeURL,
		CoverLetter:    req.CoverLetter,
		Status:         models.ApplicationStatusPending,
	}

	var created []*models.Notification
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.applicationRepo.WithTx(tx).Create(application); err != nil {
			return err
		}

		if job.CompanyID == nil || *job.CompanyID == "" {
			return nil
		}

		employers, err := s.userRepo.WithTx(tx).FindCompanyEmployers(*job.CompanyID)
		if err != nil {
			return err
		}

		body := fmt.Sprintf("%s applied for %s", application.WorkerName, job.Title)
		for i := range employers {
			created = append(created, &models.Notification{
				UserID:    employers[i].ID,
				Type:      models.NotificationTypeNewApplication,
				Title:     "Potential candidate applied for a position",
				Message:   &body,
				RelatedID: &application.ID,
				JobID:     &job.ID,
				JobTitle:  &job.Title,
				Data: models.NotificationData(map[string]string{
					"applicationId": application.ID,
					"jobId":         job.ID,
					"workerId":      application.WorkerID,
				}),
			})
		}
		return s.notificationRepo.WithTx(tx).CreateBulk(created)
	})
	if err != nil {
		if apperrors.Is(err, repositories.ErrDuplicateApplication) {
			return nil, apperrors.DuplicateApplication()
		}
		return nil, apperrors.InternalError(err)
	}

	for _, n := range created {
		s.notifier.NotificationCreated(n)
	}

	return buildApplicationResponse(application, job.Title, job.Company), nil
}

func (s *applicationService) GetApplication(applicationID string) (*dto.ApplicationResponse, error) {
	application, err := s.applicationRepo.FindByID(applicationID)
	if err != nil {
		return nil, translateApplicationErr(err)
	}
	return buildApplicationResponseFromModel(application), nil
}

func (s *applicationService) GetAllApplications() ([]*dto.ApplicationResponse, error) {
	applications, err := s.applicationRepo.FindAll()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return buildApplicationResponses(applications), nil
}

func (s *applicationService) GetWorkerApplications(workerID string) ([]*dto.ApplicationResponse, error) {
	applications, err := s.applicationRepo.FindByWorker(workerID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return buildApplicationResponses(applications), nil
}

func (s *applicationService) GetJobApplications(jobID string) ([]*dto.ApplicationResponse, error) {
	applications, err := s.applicationRepo.FindByJob(jobID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return buildApplicationResponses(applications), nil
}

// UpdateApplicationStatus transitions the status and notifies the worker
// inside the same transaction.
func (s *applicationService) UpdateApplicationStatus(applicationID string, req *dto.UpdateApplicationStatusRequest) (*dto.ApplicationResponse, error) {
	application, err := s.applicationRepo.FindByID(applicationID)
	if err != nil {
		return nil, translateApplicationErr(err)
	}

	status := models.ParseApplicationStatus(req.Status)
	application.Status = status

	jobTitle := "the position"
	var jobTitleRef *string
	if application.Job != nil {
		jobTitle = application.Job.Title
		jobTitleRef = &application.Job.Title
	}

	body := ApplicationStatusMessage(status, jobTitle)
	title := fmt.Sprintf("Application status: %s", status)

	var notification *models.Notification
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.applicationRepo.WithTx(tx).Update(application); err != nil {
			return err
		}

		notification = &models.Notification{
			UserID:    application.WorkerID,
			Type:      models.NotificationTypeApplicationStatus,
			Title:     title,
			Message:   &body,
			RelatedID: &application.ID,
			JobID:     &application.JobID,
			JobTitle:  jobTitleRef,
			Data: models.NotificationData(map[string]string{
				"applicationId": application.ID,
				"jobId":         application.JobID,
				"status":        string(status),
			}),
		}
		return s.notificationRepo.WithTx(tx).Create(notification)
	})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	s.notifier.NotificationCreated(notification)

	return buildApplicationResponseFromModel(application), nil
}

// ApplicationStatusMessage picks the human-readable body for a status
// change, matching case-insensitively. Statuses outside the template set
// get the generic fallback with the literal status text interpolated; the
// status column is not a closed enum.
func ApplicationStatusMessage(status models.ApplicationStatus, jobTitle string) string {
	switch strings.ToLower(string(status)) {
	case "reviewing":
		return fmt.Sprintf("Your application for %s is being reviewed", jobTitle)
	case "accepted":
		return fmt.Sprintf("Congratulations! Your application for %s has been accepted", jobTitle)
	case "rejected":
		return fmt.Sprintf("Your application for %s was not selected at this time", jobTitle)
	case "interviewing":
		return fmt.Sprintf("You've been invited to interview for %s", jobTitle)
	case "offer":
		return fmt.Sprintf("You've received an offer for %s", jobTitle)
	default:
		return fmt.Sprintf("Your application status has been updated to %s", status)
	}
}

func buildApplicationResponse(a *models.Application, jobTitle, company string) *dto.ApplicationResponse {
	return &dto.ApplicationResponse{
		ID:             a.ID,
		JobID:          a.JobID,
		JobTitle:       jobTitle,
		Company:        company,
		WorkerID:       a.WorkerID,
		WorkerName:     a.WorkerName,
		WorkerEmail:    a.WorkerEmail,
		WorkerPhone:    a.WorkerPhone,
		WorkerSkills:   a.WorkerSkills,
		WorkerTitle:    a.WorkerTitle,
		WorkerLocation: a.WorkerLocation,
		ResumeURL:      a.ResumeURL,
		CoverLetter:    a.CoverLetter,
		Status:         string(a.Status),
		AppliedDate:    a.CreatedAt,
		UpdatedDate:    a.UpdatedAt,
	}
}

func buildApplicationResponseFromModel(a *models.Application) *dto.ApplicationResponse {
	jobTitle, company := "", ""
	if a.Job != nil {
		jobTitle = a.Job.Title
		company = a.Job.Company
	}
	return buildApplicationResponse(a, jobTitle, company)
}

func buildApplicationResponses(applications []models.Application) []*dto.ApplicationResponse {
	responses := make([]*dto.ApplicationResponse, 0, len(applications))
	for i := range applications {
		responses = append(responses, buildApplicationResponseFromModel(&applications[i]))
	}
	return responses
}

func translateApplicationErr(err error) error {
	if apperrors.Is(err, repositories.ErrApplicationNotFound) {
		return apperrors.ApplicationNotFound()
	}
	return apperrors.InternalError(err)
}
