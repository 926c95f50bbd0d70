package services

import (
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"gigboard_backend/internal/models"
	"gigboard_backend/internal/repositories"
	"gigboard_backend/internal/services/dto"
	"gigboard_backend/internal/storage"
	"gigboard_backend/pkg/apperrors"
)

type AdvertisementService interface {
	CreateAdvertisement(req *dto.CreateAdvertisementRequest, media *multipart.FileHeader) (*models.Advertisement, error)
	GetAdvertisement(id string) (*models.Advertisement, error)
	GetAdvertisements(req *dto.AdSearchRequest) ([]models.Advertisement, error)
	UpdateAdvertisement(id string, req *dto.UpdateAdvertisementRequest, media *multipart.FileHeader) (*models.Advertisement, error)
	DeleteAdvertisement(id string) error
	TrackView(id string) error
	TrackClick(id string) error
}

type advertisementService struct {
	adRepo  repositories.AdvertisementRepository
	storage storage.Storage
}

func NewAdvertisementService(adRepo repositories.AdvertisementRepository, store storage.Storage) AdvertisementService {
	return &advertisementService{adRepo: adRepo, storage: store}
}

func (s *advertisementService) CreateAdvertisement(req *dto.CreateAdvertisementRequest, media *multipart.FileHeader) (*models.Advertisement, error) {
	if media == nil {
		return nil, apperrors.NewBadRequestError("advertisement media file is required")
	}

	stored, err := s.storeMedia(media)
	if err != nil {
		return nil, err
	}

	ad := &models.Advertisement{
		Title:       req.Title,
		Description: req.Description,
		Type:        stored.Type,
		FileURL:     stored.FileURL,
		FileName:    &stored.FileName,

		Platform:  models.AdPlatformBoth,
		Placement: "Popup",
		Position:  "BottomRight",

		FadeDurationSeconds: 8,
		IsDismissible:       true,

		TargetURL:    req.TargetURL,
		BusinessName: req.BusinessName,

		IsActive:  true,
		StartDate: time.Now().UTC(),
		CreatedBy: req.CreatedBy,
	}

	if req.Platform != "" {
		ad.Platform = models.AdPlatform(req.Platform)
	}
	if req.Placement != "" {
		ad.Placement = req.Placement
	}
	if req.Position != "" {
		ad.Position = req.Position
	}
	if req.FadeDurationSeconds != nil {
		ad.FadeDurationSeconds = *req.FadeDurationSeconds
	}
	if req.IsDismissible != nil {
		ad.IsDismissible = *req.IsDismissible
	}
	if req.DisplayOrder != nil {
		ad.DisplayOrder = *req.DisplayOrder
	}
	if req.IsActive != nil {
		ad.IsActive = *req.IsActive
	}
	if req.StartDate != nil {
		ad.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		ad.EndDate = req.EndDate
	}

	if err := validateAdSchedule(ad.StartDate, ad.EndDate); err != nil {
		return nil, err
	}

	if err := s.adRepo.Create(ad); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return ad, nil
}

func (s *advertisementService) GetAdvertisement(id string) (*models.Advertisement, error) {
	ad, err := s.adRepo.FindByID(id)
	if err != nil {
		return nil, translateAdErr(err)
	}
	return ad, nil
}

func (s *advertisementService) GetAdvertisements(req *dto.AdSearchRequest) ([]models.Advertisement, error) {
	ads, err := s.adRepo.Search(repositories.AdCriteria{
		Platform:   req.Platform,
		Placement:  req.Placement,
		ActiveOnly: req.ActiveOnly,
	})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return ads, nil
}

func (s *advertisementService) UpdateAdvertisement(id string, req *dto.UpdateAdvertisementRequest, media *multipart.FileHeader) (*models.Advertisement, error) {
	ad, err := s.adRepo.FindByID(id)
	if err != nil {
		return nil, translateAdErr(err)
	}

	if media != nil {
		stored, err := s.storeMedia(media)
		if err != nil {
			return nil, err
		}
		ad.Type = stored.Type
		ad.FileURL = stored.FileURL
		ad.FileName = &stored.FileName
	}

	if req.Title != nil {
		ad.Title = *req.Title
	}
	if req.Description != nil {
		ad.Description = *req.Description
	}
	if req.Platform != nil {
		ad.Platform = models.AdPlatform(*req.Platform)
	}
	if req.Placement != nil {
		ad.Placement = *req.Placement
	}
	if req.Position != nil {
		ad.Position = *req.Position
	}
	if req.FadeDurationSeconds != nil {
		ad.FadeDurationSeconds = *req.FadeDurationSeconds
	}
	if req.IsDismissible != nil {
		ad.IsDismissible = *req.IsDismissible
	}
	if req.TargetURL != nil {
		ad.TargetURL = req.TargetURL
	}
	if req.BusinessName != nil {
		ad.BusinessName = req.BusinessName
	}
	if req.DisplayOrder != nil {
		ad.DisplayOrder = *req.DisplayOrder
	}
	if req.IsActive != nil {
		ad.IsActive = *req.IsActive
	}
	if req.StartDate != nil {
		ad.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		ad.EndDate = req.EndDate
	}

	if err := validateAdSchedule(ad.StartDate, ad.EndDate); err != nil {
		return nil, err
	}

	if err := s.adRepo.Update(ad); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return ad, nil
}

func (s *advertisementService) DeleteAdvertisement(id string) error {
	if err := s.adRepo.Delete(id); err != nil {
		return translateAdErr(err)
	}
	return nil
}

func (s *advertisementService) TrackView(id string) error {
	if err := s.adRepo.IncrementViewCount(id); err != nil {
		return translateAdErr(err)
	}
	return nil
}

func (s *advertisementService) TrackClick(id string) error {
	if err := s.adRepo.IncrementClickCount(id); err != nil {
		return translateAdErr(err)
	}
	return nil
}

func (s *advertisementService) storeMedia(media *multipart.FileHeader) (*dto.StoredMedia, error) {
	mediaType, err := detectMediaType(media)
	if err != nil {
		return nil, err
	}

	stored, err := s.storage.Save(media, "ads")
	if err != nil {
		return nil, apperrors.NewBadRequestError(err.Error())
	}

	return &dto.StoredMedia{
		Type:     mediaType,
		FileURL:  stored.URL,
		FileName: media.Filename,
	}, nil
}

// detectMediaType classifies an upload as Image or Video from its content
// type, falling back to the file extension when the browser sent none.
func detectMediaType(media *multipart.FileHeader) (string, error) {
	contentType := strings.ToLower(media.Header.Get("Content-Type"))
	switch {
	case strings.HasPrefix(contentType, "image/"):
		return "Image", nil
	case strings.HasPrefix(contentType, "video/"):
		return "Video", nil
	}

	switch strings.ToLower(filepath.Ext(media.Filename)) {
	case ".jpg", ".jpeg", ".png", ".gif", ".webp":
		return "Image", nil
	case ".mp4", ".webm", ".mov":
		return "Video", nil
	}
	return "", apperrors.InvalidAdMedia("media must be an image or a video file")
}

func validateAdSchedule(start time.Time, end *time.Time) error {
	if end != nil && end.Before(start) {
		return apperrors.NewBadRequestError("end date must not be before start date")
	}
	return nil
}

func translateAdErr(err error) error {
	if apperrors.Is(err, repositories.ErrAdvertisementNotFound) {
		return apperrors.AdvertisementNotFound()
	}
	return apperrors.InternalError(err)
}
