package models

// Application is a worker's request against a job. The Worker* fields are a
// snapshot taken at submission time: later profile edits must not rewrite
// historical applications.
type Application struct {
	BaseModel
	JobID    string `gorm:"not null;index;uniqueIndex:idx_applications_job_worker" json:"jobId"`
	WorkerID string `gorm:"not null;index;uniqueIndex:idx_applications_job_worker" json:"workerId"`

	WorkerName     string  `gorm:"size:100;not null" json:"workerName"`
	WorkerEmail    string  `gorm:"size:100;not null" json:"workerEmail"`
	WorkerPhone    string  `gorm:"size:20" json:"workerPhone"`
	WorkerSkills   string  `gorm:"size:500" json:"workerSkills"`
	WorkerTitle    string  `gorm:"size:100" json:"workerTitle"`
	WorkerLocation string  `gorm:"size:100" json:"workerLocation"`
	ResumeURL      *string `gorm:"size:500" json:"resumeUrl"`

	CoverLetter string            `gorm:"size:1000" json:"coverLetter"`
	Status      ApplicationStatus `gorm:"size:20;default:'Pending'" json:"status"`

	Job    *Job  `gorm:"foreignKey:JobID" json:"-"`
	Worker *User `gorm:"foreignKey:WorkerID" json:"-"`
}
