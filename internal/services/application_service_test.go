package services

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"gigboard_backend/internal/models"
	"gigboard_backend/internal/repositories"
	"gigboard_backend/internal/services/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newApplicationService(t *testing.T, db *gorm.DB, notifier Notifier) ApplicationService {
	t.Helper()
	if notifier == nil {
		notifier = NoopNotifier{}
	}
	return NewApplicationService(
		db,
		repositories.NewApplicationRepository(db),
		repositories.NewJobRepository(db),
		repositories.NewUserRepository(db),
		repositories.NewNotificationRepository(db),
		notifier,
	)
}

func TestSubmitApplication_FansOutToEveryEmployer(t *testing.T) {
	db := newTestDB(t)
	notifier := &recordingNotifier{}
	svc := newApplicationService(t, db, notifier)

	company := createCompany(t, db, "acme")
	for i := 0; i < 3; i++ {
		createEmployer(t, db, fmt.Sprintf("employer%d@acme.com", i), company.ID)
	}
	// A worker account attached to the company must not be notified
	colleague := createWorker(t, db, "Colleague", "colleague@acme.com")
	colleague.CompanyID = &company.ID
	require.NoError(t, db.Save(colleague).Error)

	worker := createWorker(t, db, "Alice", "alice@example.com")
	job := createJob(t, db, "Backend Engineer", &company.ID)

	resp, err := svc.SubmitApplication(&dto.SubmitApplicationRequest{
		JobID:       job.ID,
		WorkerID:    worker.ID,
		CoverLetter: "I would love to join.",
	})
	require.NoError(t, err)
	assert.Equal(t, string(models.ApplicationStatusPending), resp.Status)
	assert.Equal(t, "Alice Worker", resp.WorkerName)

	var notifications []models.Notification
	require.NoError(t, db.Find(&notifications).Error)
	require.Len(t, notifications, 3)

	recipients := make(map[string]bool)
	for _, n := range notifications {
		recipients[n.UserID] = true
		assert.Equal(t, models.NotificationTypeNewApplication, n.Type)
		assert.Equal(t, "Potential candidate applied for a position", n.Title)
		require.NotNil(t, n.Message)
		assert.Equal(t, "Alice Worker applied for Backend Engineer", *n.Message)

		var payload map[string]string
		require.NoError(t, json.Unmarshal(n.Data, &payload))
		assert.Equal(t, resp.ID, payload["applicationId"])
		assert.Equal(t, job.ID, payload["jobId"])
		assert.Equal(t, worker.ID, payload["workerId"])
	}
	assert.Len(t, recipients, 3, "each employer gets exactly one notification")
	assert.Equal(t, 3, notifier.count())
}

func TestSubmitApplication_NoCompanyMeansNoFanOut(t *testing.T) {
	db := newTestDB(t)
	svc := newApplicationService(t, db, nil)

	worker := createWorker(t, db, "Alice", "alice@example.com")
	job := createJob(t, db, "Freelance Gig", nil)

	_, err := svc.SubmitApplication(&dto.SubmitApplicationRequest{
		JobID:    job.ID,
		WorkerID: worker.ID,
	})
	require.NoError(t, err)

	var count int64
	require.NoError(t, db.Model(&models.Notification{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestSubmitApplication_DuplicateIsConflict(t *testing.T) {
	db := newTestDB(t)
	svc := newApplicationService(t, db, nil)

	worker := createWorker(t, db, "Alice", "alice@example.com")
	job := createJob(t, db, "Backend Engineer", nil)

	req := &dto.SubmitApplicationRequest{JobID: job.ID, WorkerID: worker.ID}
	_, err := svc.SubmitApplication(req)
	require.NoError(t, err)

	_, err = svc.SubmitApplication(req)
	assertHTTPCode(t, err, http.StatusConflict)

	var count int64
	require.NoError(t, db.Model(&models.Application{}).Count(&count).Error)
	assert.Equal(t, int64(1), count, "the duplicate must not insert a second row")
}

func TestSubmitApplication_SnapshotsWorkerProfile(t *testing.T) {
	db := newTestDB(t)
	svc := newApplicationService(t, db, nil)

	worker := createWorker(t, db, "Alice", "alice@example.com")
	job := createJob(t, db, "Backend Engineer", nil)

	resp, err := svc.SubmitApplication(&dto.SubmitApplicationRequest{
		JobID:    job.ID,
		WorkerID: worker.ID,
	})
	require.NoError(t, err)

	// Later profile edits stay off historical applications
	worker.FirstName = "Alicia"
	worker.Skills = "Rust"
	require.NoError(t, db.Save(worker).Error)

	stored, err := svc.GetApplication(resp.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alice Worker", stored.WorkerName)
	assert.Equal(t, "Go, SQL", stored.WorkerSkills)
}

func TestSubmitApplication_MissingJobOrWorker(t *testing.T) {
	db := newTestDB(t)
	svc := newApplicationService(t, db, nil)

	worker := createWorker(t, db, "Alice", "alice@example.com")
	job := createJob(t, db, "Backend Engineer", nil)

	_, err := svc.SubmitApplication(&dto.SubmitApplicationRequest{JobID: "missing", WorkerID: worker.ID})
	assertHTTPCode(t, err, http.StatusNotFound)

	_, err = svc.SubmitApplication(&dto.SubmitApplicationRequest{JobID: job.ID, WorkerID: "missing"})
	assertHTTPCode(t, err, http.StatusNotFound)
}

func TestUpdateApplicationStatus_CanonicalizesAndNotifiesWorker(t *testing.T) {
	db := newTestDB(t)
	notifier := &recordingNotifier{}
	svc := newApplicationService(t, db, notifier)

	worker := createWorker(t, db, "Alice", "alice@example.com")
	job := createJob(t, db, "Backend Engineer", nil)

	created, err := svc.SubmitApplication(&dto.SubmitApplicationRequest{JobID: job.ID, WorkerID: worker.ID})
	require.NoError(t, err)

	updated, err := svc.UpdateApplicationStatus(created.ID, &dto.UpdateApplicationStatusRequest{Status: "accepted"})
	require.NoError(t, err)
	assert.Equal(t, "Accepted", updated.Status)

	var notification models.Notification
	require.NoError(t, db.Where("type = ?", models.NotificationTypeApplicationStatus).First(&notification).Error)
	assert.Equal(t, worker.ID, notification.UserID)
	assert.Equal(t, "Application status: Accepted", notification.Title)
	require.NotNil(t, notification.Message)
	assert.Equal(t, "Congratulations! Your application for Backend Engineer has been accepted", *notification.Message)
	assert.Equal(t, 1, notifier.count())

	var payload map[string]string
	require.NoError(t, json.Unmarshal(notification.Data, &payload))
	assert.Equal(t, created.ID, payload["applicationId"])
	assert.Equal(t, job.ID, payload["jobId"])
	assert.Equal(t, "Accepted", payload["status"])
}

func TestUpdateApplicationStatus_UnknownStatusUsesFallbackTemplate(t *testing.T) {
	db := newTestDB(t)
	svc := newApplicationService(t, db, nil)

	worker := createWorker(t, db, "Alice", "alice@example.com")
	job := createJob(t, db, "Backend Engineer", nil)

	created, err := svc.SubmitApplication(&dto.SubmitApplicationRequest{JobID: job.ID, WorkerID: worker.ID})
	require.NoError(t, err)

	updated, err := svc.UpdateApplicationStatus(created.ID, &dto.UpdateApplicationStatusRequest{Status: "OnHold"})
	require.NoError(t, err)
	assert.Equal(t, "OnHold", updated.Status, "unknown statuses pass through verbatim")

	var notification models.Notification
	require.NoError(t, db.Where("type = ?", models.NotificationTypeApplicationStatus).First(&notification).Error)
	require.NotNil(t, notification.Message)
	assert.Equal(t, "Your application status has been updated to OnHold", *notification.Message)
}

func TestApplicationStatusMessage_Templates(t *testing.T) {
	cases := []struct {
		status models.ApplicationStatus
		want   string
	}{
		{"Reviewing", "Your application for Backend Engineer is being reviewed"},
		{"reviewing", "Your application for Backend Engineer is being reviewed"},
		{"Interviewing", "You've been invited to interview for Backend Engineer"},
		{"Offer", "You've received an offer for Backend Engineer"},
		{"Rejected", "Your application for Backend Engineer was not selected at this time"},
		{"Shortlisted", "Your application status has been updated to Shortlisted"},
		{"Pending", "Your application status has been updated to Pending"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ApplicationStatusMessage(tc.status, "Backend Engineer"), "status %q", tc.status)
	}
}
