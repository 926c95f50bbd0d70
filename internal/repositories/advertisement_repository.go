package repositories

import (
	"errors"
	"time"

	"gigboard_backend/internal/models"

	"gorm.io/gorm"
)

var ErrAdvertisementNotFound = errors.New("advertisement not found")

// AdCriteria filters the ad delivery query.
type AdCriteria struct {
	Platform   string
	Placement  string
	ActiveOnly bool
	Now        time.Time
}

type AdvertisementRepository interface {
	WithTx(tx *gorm.DB) AdvertisementRepository

	Create(ad *models.Advertisement) error
	FindByID(id string) (*models.Advertisement, error)
	Update(ad *models.Advertisement) error
	Delete(id string) error
	Search(criteria AdCriteria) ([]models.Advertisement, error)

	IncrementViewCount(id string) error
	IncrementClickCount(id string) error
}

type advertisementRepository struct {
	db *gorm.DB
}

func NewAdvertisementRepository(db *gorm.DB) AdvertisementRepository {
	return &advertisementRepository{db: db}
}

func (r *advertisementRepository) WithTx(tx *gorm.DB) AdvertisementRepository {
	return &advertisementRepository{db: tx}
}

func (r *advertisementRepository) Create(ad *models.Advertisement) error {
	return r.db.Create(ad).Error
}

func (r *advertisementRepository) FindByID(id string) (*models.Advertisement, error) {
	var ad models.Advertisement
	err := r.db.First(&ad, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAdvertisementNotFound
		}
		return nil, err
	}
	return &ad, nil
}

func (r *advertisementRepository) Update(ad *models.Advertisement) error {
	return r.db.Save(ad).Error
}

func (r *advertisementRepository) Delete(id string) error {
	result := r.db.Where("id = ?", id).Delete(&models.Advertisement{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrAdvertisementNotFound
	}
	return nil
}

func (r *advertisementRepository) Search(criteria AdCriteria) ([]models.Advertisement, error) {
	query := r.db.Model(&models.Advertisement{})

	// An ad stored with platform "Both" matches any requested platform;
	// requesting "Both" (or nothing) matches everything.
	if criteria.Platform != "" && criteria.Platform != string(models.AdPlatformBoth) {
		query = query.Where("platform = ? OR platform = ?", criteria.Platform, models.AdPlatformBoth)
	}

	if criteria.Placement != "" {
		query = query.Where("placement = ?", criteria.Placement)
	}

	if criteria.ActiveOnly {
		now := criteria.Now
		if now.IsZero() {
			now = time.Now().UTC()
		}
		query = query.Where(
			"is_active = ? AND start_date <= ? AND (end_date IS NULL OR end_date >= ?)",
			true, now, now,
		)
	}

	var ads []models.Advertisement
	err := query.
		Order("display_order ASC").
		Order("created_at DESC").
		Find(&ads).Error
	return ads, err
}

func (r *advertisementRepository) IncrementViewCount(id string) error {
	return r.increment(id, "view_count")
}

func (r *advertisementRepository) IncrementClickCount(id string) error {
	return r.increment(id, "click_count")
}

func (r *advertisementRepository) increment(id, column string) error {
	result := r.db.Model(&models.Advertisement{}).
		Where("id = ?", id).
		UpdateColumn(column, gorm.Expr(column+" + 1"))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrAdvertisementNotFound
	}
	return nil
}
