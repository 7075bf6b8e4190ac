package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	MealBreakfast = "breakfast"
	MealLunch     = "lunch"
	MealDinner    = "dinner"
	MealSnack     = "snack"
)

// DateLayout is the day-granularity format used for Meal.Date and all
// date bucketing in the stats engine.
const DateLayout = "2006-01-02"

func ValidMealType(t string) bool {
	switch t {
	case MealBreakfast, MealLunch, MealDinner, MealSnack:
		return true
	}
	return false
}

// Meal is immutable after creation; the only mutation is a hard delete.
type Meal struct {
	ID        uuid.UUID `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	UserID uint   `gorm:"index;not null" json:"user_id"`
	Type   string `gorm:"size:16;not null" json:"type"`
	Date   string `gorm:"size:10;index;not null" json:"date"` // YYYY-MM-DD, the logical day
	Time   string `gorm:"size:16" json:"time"`                // display only, never aggregated

	Mood  string `gorm:"size:16" json:"mood,omitempty"`
	Notes string `json:"notes,omitempty"`

	Foods []MealFood `gorm:"constraint:OnDelete:CASCADE" json:"foods"`

	// Denormalized sum of Foods[*].Nutrition, computed once in NewMeal.
	TotalNutrition Nutrition `gorm:"embedded;embeddedPrefix:total_" json:"total_nutrition"`
}

// MealFood is one line item with its nutrition snapshot already scaled
// to the logged gram quantity.
type MealFood struct {
	ID     uint      `gorm:"primaryKey" json:"-"`
	MealID uuid.UUID `gorm:"index;not null" json:"-"`

	FoodID    string    `gorm:"size:64" json:"food_id"`
	Name      string    `gorm:"size:128;not null" json:"name"`
	Grams     float64   `json:"grams"`
	Nutrition Nutrition `gorm:"embedded;embeddedPrefix:nutr_" json:"nutrition"`
}

// NewMeal is the only place TotalNutrition is computed. Building a Meal by
// hand and skipping the factory breaks the totals invariant.
func NewMeal(userID uint, mealType, date, timeOfDay string, foods []MealFood) *Meal {
	var total Nutrition
	for _, f := range foods {
		total = total.Add(f.Nutrition)
	}
	return &Meal{
		ID:             uuid.New(),
		UserID:         userID,
		Type:           mealType,
		Date:           date,
		Time:           timeOfDay,
		Foods:          foods,
		TotalNutrition: total,
	}
}

func (m *Meal) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
