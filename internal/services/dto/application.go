package dto

import "time"

type SubmitApplicationRequest struct {
	JobID       string `json:"jobId" validate:"required"`
	WorkerID    string `json:"workerId" validate:"required"`
	CoverLetter string `json:"coverLetter" validate:"max=1000"`
}

type UpdateApplicationStatusRequest struct {
	Status string `json:"status" validate:"required,max=20"`
}

type ApplicationResponse struct {
	ID       string `json:"id"`
	JobID    string `json:"jobId"`
	JobTitle string `json:"jobTitle"`
	Company  string `json:"company"`

	WorkerID       string  `json:"workerId"`
	WorkerName     string  `json:"workerName"`
	WorkerEmail    string  `json:"workerEmail"`
	WorkerPhone    string  `json:"workerPhone"`
	WorkerSkills   string  `json:"workerSkills"`
	WorkerTitle    string  `json:"workerTitle"`
	WorkerLocation string  `json:"workerLocation"`
	ResumeURL      *string `json:"resumeUrl"`

	CoverLetter string    `json:"coverLetter"`
	Status      string    `json:"status"`
	AppliedDate time.Time `json:"appliedDate"`
	UpdatedDate time.Time `json:"updatedDate"`
}
