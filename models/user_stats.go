package models

import (
	"time"

	"gorm.io/datatypes"
)

// FavoriteFoodUnknown is the placeholder shown until at least one food has
// been tallied for the user.
const FavoriteFoodUnknown = "Not determined yet"

type WeightSample struct {
	Date   string  `json:"date"` // YYYY-MM-DD
	Weight float64 `json:"weight"`
}

// UserStats is the derived per-user summary. It is owned exclusively by the
// stats service; nothing else writes these rows.
type UserStats struct {
	ID     uint `gorm:"primaryKey" json:"-"`
	UserID uint `gorm:"uniqueIndex;not null" json:"user_id"`

	TotalMealsLogged     int     `json:"total_meals_logged"`
	AverageDailyCalories float64 `json:"average_daily_calories"`
	FavoriteFood         string  `gorm:"size:128" json:"favorite_food"`
	CurrentStreak        int     `json:"current_streak"`
	LongestStreak        int     `json:"longest_streak"`

	// Insertion-ordered; never shrinks.
	Achievements datatypes.JSONSlice[string] `json:"achievements"`

	// Maintained by the profile update flow, not by meal logging.
	WeightProgress datatypes.JSONSlice[WeightSample] `json:"weight_progress"`

	LastUpdated time.Time `json:"last_updated"`
}

func (s *UserStats) HasAchievement(name string) bool {
	for _, a := range s.Achievements {
		if a == name {
			return true
		}
	}
	return false
}
