package services

import (
	"mime/multipart"
	"net/http"
	"net/textproto"
	"testing"
	"time"

	"gigboard_backend/internal/models"
	"gigboard_backend/internal/repositories"
	"gigboard_backend/internal/services/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newAdService(t *testing.T) (AdvertisementService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	svc := NewAdvertisementService(repositories.NewAdvertisementRepository(db), &memStorage{})
	return svc, db
}

func mediaFile(filename, contentType string) *multipart.FileHeader {
	header := textproto.MIMEHeader{}
	if contentType != "" {
		header.Set("Content-Type", contentType)
	}
	return &multipart.FileHeader{Filename: filename, Header: header}
}

func seedAd(t *testing.T, db *gorm.DB, mutate func(*models.Advertisement)) *models.Advertisement {
	t.Helper()
	ad := &models.Advertisement{
		Title:     "Banner",
		Type:      "Image",
		FileURL:   "/uploads/ads/banner.png",
		Platform:  models.AdPlatformBoth,
		Placement: "Popup",
		Position:  "BottomRight",
		IsActive:  true,
		StartDate: time.Now().UTC().Add(-time.Hour),
	}
	if mutate != nil {
		mutate(ad)
	}
	require.NoError(t, db.Create(ad).Error)
	return ad
}

func TestCreateAdvertisement_DefaultsAndStoredMedia(t *testing.T) {
	svc, _ := newAdService(t)

	ad, err := svc.CreateAdvertisement(&dto.CreateAdvertisementRequest{
		Title: "Spring promo",
	}, mediaFile("promo.png", "image/png"))
	require.NoError(t, err)

	assert.Equal(t, "Image", ad.Type)
	assert.Equal(t, models.AdPlatformBoth, ad.Platform)
	assert.Equal(t, "Popup", ad.Placement)
	assert.Equal(t, "BottomRight", ad.Position)
	assert.Equal(t, 8, ad.FadeDurationSeconds)
	assert.True(t, ad.IsDismissible)
	assert.True(t, ad.IsActive)
	assert.False(t, ad.StartDate.IsZero())
	require.NotNil(t, ad.FileName)
	assert.Equal(t, "promo.png", *ad.FileName)
	assert.NotEmpty(t, ad.FileURL)
}

func TestCreateAdvertisement_ExplicitFalseFlagsPersist(t *testing.T) {
	svc, db := newAdService(t)

	inactive := false
	notDismissible := false
	ad, err := svc.CreateAdvertisement(&dto.CreateAdvertisementRequest{
		Title:         "Draft",
		IsActive:      &inactive,
		IsDismissible: &notDismissible,
	}, mediaFile("promo.png", "image/png"))
	require.NoError(t, err)

	var stored models.Advertisement
	require.NoError(t, db.First(&stored, "id = ?", ad.ID).Error)
	assert.False(t, stored.IsActive)
	assert.False(t, stored.IsDismissible)

	ads, err := svc.GetAdvertisements(&dto.AdSearchRequest{ActiveOnly: true})
	require.NoError(t, err)
	assert.Empty(t, ads)
}

func TestCreateAdvertisement_RequiresMedia(t *testing.T) {
	svc, _ := newAdService(t)

	_, err := svc.CreateAdvertisement(&dto.CreateAdvertisementRequest{Title: "No file"}, nil)
	assertHTTPCode(t, err, http.StatusBadRequest)
}

func TestCreateAdvertisement_RejectsEndBeforeStart(t *testing.T) {
	svc, _ := newAdService(t)

	start := time.Now().UTC()
	end := start.Add(-24 * time.Hour)
	_, err := svc.CreateAdvertisement(&dto.CreateAdvertisementRequest{
		Title:     "Backwards window",
		StartDate: &start,
		EndDate:   &end,
	}, mediaFile("promo.png", "image/png"))
	assertHTTPCode(t, err, http.StatusBadRequest)
}

func TestDetectMediaType(t *testing.T) {
	cases := []struct {
		name        string
		filename    string
		contentType string
		want        string
		wantErr     bool
	}{
		{"image content type", "anything.bin", "image/png", "Image", false},
		{"video content type", "anything.bin", "video/mp4", "Video", false},
		{"image extension fallback", "banner.JPG", "", "Image", false},
		{"video extension fallback", "clip.mov", "", "Video", false},
		{"unsupported", "report.pdf", "application/pdf", "", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := detectMediaType(mediaFile(tc.filename, tc.contentType))
			if tc.wantErr {
				assertHTTPCode(t, err, http.StatusBadRequest)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestGetAdvertisements_PlatformBothMatchesEverything(t *testing.T) {
	svc, db := newAdService(t)

	mobile := seedAd(t, db, func(ad *models.Advertisement) {
		ad.Title = "Mobile only"
		ad.Platform = models.AdPlatformMobile
	})
	web := seedAd(t, db, func(ad *models.Advertisement) {
		ad.Title = "Web only"
		ad.Platform = models.AdPlatformWeb
	})
	both := seedAd(t, db, func(ad *models.Advertisement) {
		ad.Title = "Everywhere"
	})

	forMobile, err := svc.GetAdvertisements(&dto.AdSearchRequest{Platform: "Mobile"})
	require.NoError(t, err)
	require.Len(t, forMobile, 2)
	ids := []string{forMobile[0].ID, forMobile[1].ID}
	assert.Contains(t, ids, mobile.ID)
	assert.Contains(t, ids, both.ID)
	assert.NotContains(t, ids, web.ID)

	all, err := svc.GetAdvertisements(&dto.AdSearchRequest{})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	bothRequest, err := svc.GetAdvertisements(&dto.AdSearchRequest{Platform: "Both"})
	require.NoError(t, err)
	assert.Len(t, bothRequest, 3)
}

func TestGetAdvertisements_ActiveOnlyWindow(t *testing.T) {
	svc, db := newAdService(t)
	now := time.Now().UTC()

	live := seedAd(t, db, func(ad *models.Advertisement) { ad.Title = "Live" })
	seedAd(t, db, func(ad *models.Advertisement) {
		ad.Title = "Disabled"
		ad.IsActive = false
	})
	seedAd(t, db, func(ad *models.Advertisement) {
		ad.Title = "Not started"
		ad.StartDate = now.Add(time.Hour)
	})
	seedAd(t, db, func(ad *models.Advertisement) {
		ad.Title = "Expired"
		ad.StartDate = now.Add(-48 * time.Hour)
		expired := now.Add(-time.Hour)
		ad.EndDate = &expired
	})

	ads, err := svc.GetAdvertisements(&dto.AdSearchRequest{ActiveOnly: true})
	require.NoError(t, err)
	require.Len(t, ads, 1)
	assert.Equal(t, live.ID, ads[0].ID)
}

func TestGetAdvertisements_OrderedByDisplayOrder(t *testing.T) {
	svc, db := newAdService(t)

	seedAd(t, db, func(ad *models.Advertisement) {
		ad.Title = "Second"
		ad.DisplayOrder = 2
	})
	seedAd(t, db, func(ad *models.Advertisement) {
		ad.Title = "First"
		ad.DisplayOrder = 1
	})

	ads, err := svc.GetAdvertisements(&dto.AdSearchRequest{})
	require.NoError(t, err)
	require.Len(t, ads, 2)
	assert.Equal(t, "First", ads[0].Title)
	assert.Equal(t, "Second", ads[1].Title)
}

func TestTrackViewAndClick_IncrementCounters(t *testing.T) {
	svc, db := newAdService(t)
	ad := seedAd(t, db, nil)

	require.NoError(t, svc.TrackView(ad.ID))
	require.NoError(t, svc.TrackView(ad.ID))
	require.NoError(t, svc.TrackClick(ad.ID))

	var reloaded models.Advertisement
	require.NoError(t, db.First(&reloaded, "id = ?", ad.ID).Error)
	assert.Equal(t, 2, reloaded.ViewCount)
	assert.Equal(t, 1, reloaded.ClickCount)
}

func TestTrackView_UnknownAd(t *testing.T) {
	svc, _ := newAdService(t)
	assertHTTPCode(t, svc.TrackView("missing"), http.StatusNotFound)
}

func TestUpdateAdvertisement_ReplacesMediaAndFields(t *testing.T) {
	svc, db := newAdService(t)
	ad := seedAd(t, db, nil)

	title := "Renamed"
	inactive := false
	updated, err := svc.UpdateAdvertisement(ad.ID, &dto.UpdateAdvertisementRequest{
		Title:    &title,
		IsActive: &inactive,
	}, mediaFile("clip.mp4", "video/mp4"))
	require.NoError(t, err)

	assert.Equal(t, "Renamed", updated.Title)
	assert.False(t, updated.IsActive)
	assert.Equal(t, "Video", updated.Type)
	require.NotNil(t, updated.FileName)
	assert.Equal(t, "clip.mp4", *updated.FileName)
}

func TestDeleteAdvertisement(t *testing.T) {
	svc, db := newAdService(t)
	ad := seedAd(t, db, nil)

	require.NoError(t, svc.DeleteAdvertisement(ad.ID))
	assertHTTPCode(t, svc.DeleteAdvertisement(ad.ID), http.StatusNotFound)
}
