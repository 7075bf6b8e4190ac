package services

import (
	"encoding/json"
	"errors"
	"time"

	"naijafit/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// PortabilityService exports and imports a user's data as one JSON bundle.
// Serialization must round-trip every field losslessly, so the bundle is the
// models' own JSON shapes, nothing bespoke.
type PortabilityService struct {
	db    *gorm.DB
	stats *StatsService
	log   *zap.Logger
}

func NewPortabilityService(db *gorm.DB, stats *StatsService, log *zap.Logger) *PortabilityService {
	return &PortabilityService{db: db, stats: stats, log: log}
}

type ExportBundle struct {
	User       *models.User      `json:"user,omitempty"`
	Meals      []models.Meal     `json:"meals"`
	Stats      *models.UserStats `json:"stats,omitempty"`
	ExportedAt time.Time         `json:"exported_at"`
}

func (s *PortabilityService) Export(userID uint) (*ExportBundle, error) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		return nil, err
	}

	var meals []models.Meal
	if err := s.db.
		Preload("Foods").
		Where("user_id = ?", userID).
		Order("date ASC, created_at ASC").
		Find(&meals).Error; err != nil {
		return nil, err
	}

	stats, err := s.stats.Get(userID)
	if err != nil {
		return nil, err
	}

	return &ExportBundle{
		User:       &user,
		Meals:      meals,
		Stats:      stats,
		ExportedAt: time.Now(),
	}, nil
}

// Import merges the bundle's meals into the user's log, skipping any meal id
// already present, then rebuilds the stats from scratch. Returns how many
// meals were added.
func (s *PortabilityService) Import(userID uint, data []byte) (int, error) {
	var bundle ExportBundle
	if err := json.Unmarshal(data, &bundle); err != nil {
		return 0, errors.New("invalid export bundle")
	}

	added := 0
	for i := range bundle.Meals {
		meal := bundle.Meals[i]
		meal.UserID = userID

		var count int64
		if err := s.db.Model(&models.Meal{}).Where("id = ?", meal.ID).Count(&count).Error; err != nil {
			return added, err
		}
		if count > 0 {
			continue
		}

		// Zero the line-item keys so gorm assigns fresh ones under the
		// imported meal id.
		for j := range meal.Foods {
			meal.Foods[j].ID = 0
			meal.Foods[j].MealID = meal.ID
		}

		if err := s.db.Create(&meal).Error; err != nil {
			return added, err
		}
		added++
	}

	if added > 0 {
		if _, err := s.stats.RecomputeFull(userID); err != nil && !errors.Is(err, ErrUserNotFound) {
			s.log.Warn("stats recompute failed after import",
				zap.Uint("user_id", userID), zap.Error(err))
		}
	}

	return added, nil
}
