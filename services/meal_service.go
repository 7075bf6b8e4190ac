package services

import (
	"errors"
	"time"

	"naijafit/models"
	"naijafit/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type MealService struct {
	db    *gorm.DB
	foods *FoodService
	stats *StatsService
	log   *zap.Logger
}

func NewMealService(db *gorm.DB, foods *FoodService, stats *StatsService, log *zap.Logger) *MealService {
	return &MealService{db: db, foods: foods, stats: stats, log: log}
}

// MealFoodRequest is one requested line item. Either FoodID names a catalog
// food (per-100g macros come from the catalog), or Name+Per100g supply them
// directly.
type MealFoodRequest struct {
	FoodID  string            `json:"food_id,omitempty"`
	Name    string            `json:"name,omitempty"`
	Grams   float64           `json:"grams"`
	Per100g *models.Nutrition `json:"per_100g,omitempty"`
}

type LogMealRequest struct {
	Type  string            `json:"type"`
	Date  string            `json:"date"` // YYYY-MM-DD
	Time  string            `json:"time"`
	Mood  string            `json:"mood,omitempty"`
	Notes string            `json:"notes,omitempty"`
	Foods []MealFoodRequest `json:"foods"`
}

// LogMeal persists the meal and then updates the user's stats. The stats
// update is best-effort: the meal record is the source of truth, a failed
// derivation never rolls the insert back (a later full recompute repairs it).
func (s *MealService) LogMeal(userID uint, req LogMealRequest) (*models.Meal, error) {
	if !models.ValidMealType(req.Type) {
		return nil, errors.New("meal type must be breakfast, lunch, dinner or snack")
	}
	if _, err := time.Parse(models.DateLayout, req.Date); err != nil {
		return nil, errors.New("date must be YYYY-MM-DD")
	}
	if len(req.Foods) == 0 {
		return nil, errors.New("a meal needs at least one food")
	}

	foods := make([]models.MealFood, 0, len(req.Foods))
	for _, item := range req.Foods {
		f, err := s.resolveFood(item)
		if err != nil {
			return nil, err
		}
		foods = append(foods, f)
	}

	meal := models.NewMeal(userID, req.Type, req.Date, req.Time, foods)
	meal.Mood = req.Mood
	meal.Notes = req.Notes

	if err := s.db.Create(meal).Error; err != nil {
		return nil, err
	}

	if _, err := s.stats.UpdateAfterInsert(userID, meal); err != nil {
		if !errors.Is(err, ErrUserNotFound) {
			s.log.Warn("stats update failed after meal insert",
				zap.Uint("user_id", userID),
				zap.String("meal_id", meal.ID.String()),
				zap.Error(err))
		}
	}

	return meal, nil
}

func (s *MealService) resolveFood(req MealFoodRequest) (models.MealFood, error) {
	if req.Grams <= 0 {
		return models.MealFood{}, errors.New("grams must be positive")
	}

	if req.Per100g != nil {
		if req.Name == "" {
			return models.MealFood{}, errors.New("name required with per_100g macros")
		}
		return models.MealFood{
			FoodID:    req.FoodID,
			Name:      req.Name,
			Grams:     req.Grams,
			Nutrition: utils.ScaleNutrition(*req.Per100g, req.Grams),
		}, nil
	}

	food, ok := s.foods.Get(req.FoodID)
	if !ok {
		return models.MealFood{}, errors.New("unknown food: " + req.FoodID)
	}
	return models.MealFood{
		FoodID:    food.ID,
		Name:      food.Name,
		Grams:     req.Grams,
		Nutrition: utils.ScaleNutrition(food.Per100g, req.Grams),
	}, nil
}

// DeleteMeal hard-removes the meal. Returns false when no meal with that id
// belongs to the user. A successful delete triggers a full stats recompute,
// again best-effort.
func (s *MealService) DeleteMeal(userID uint, mealID uuid.UUID) (bool, error) {
	var meal models.Meal
	err := s.db.Where("id = ? AND user_id = ?", mealID, userID).First(&meal).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if err := s.db.Where("meal_id = ?", mealID).Delete(&models.MealFood{}).Error; err != nil {
		return false, err
	}
	if err := s.db.Delete(&meal).Error; err != nil {
		return false, err
	}

	if _, err := s.stats.RecomputeFull(userID); err != nil {
		if !errors.Is(err, ErrUserNotFound) {
			s.log.Warn("stats recompute failed after meal delete",
				zap.Uint("user_id", userID),
				zap.String("meal_id", mealID.String()),
				zap.Error(err))
		}
	}

	return true, nil
}

func (s *MealService) ListMeals(userID uint) ([]models.Meal, error) {
	var meals []models.Meal
	err := s.db.
		Preload("Foods").
		Where("user_id = ?", userID).
		Order("date DESC, created_at DESC").
		Find(&meals).Error
	return meals, err
}

func (s *MealService) GetMeal(userID uint, mealID uuid.UUID) (*models.Meal, error) {
	var meal models.Meal
	err := s.db.
		Preload("Foods").
		Where("id = ? AND user_id = ?", mealID, userID).
		First(&meal).Error
	if err != nil {
		return nil, err // could be ErrRecordNotFound
	}
	return &meal, nil
}

func (s *MealService) MealsByDate(userID uint, date string) ([]models.Meal, error) {
	var meals []models.Meal
	err := s.db.
		Preload("Foods").
		Where("user_id = ? AND date = ?", userID, date).
		Order("created_at ASC").
		Find(&meals).Error
	return meals, err
}

func (s *MealService) MealsByDateRange(userID uint, from, to string) ([]models.Meal, error) {
	var meals []models.Meal
	err := s.db.
		Preload("Foods").
		Where("user_id = ? AND date >= ? AND date <= ?", userID, from, to).
		Order("date DESC, created_at DESC").
		Find(&meals).Error
	return meals, err
}

func (s *MealService) RecentMeals(userID uint, limit int) ([]models.Meal, error) {
	if limit <= 0 {
		limit = 3
	}
	var meals []models.Meal
	err := s.db.
		Preload("Foods").
		Where("user_id = ?", userID).
		Order("date DESC, created_at DESC").
		Limit(limit).
		Find(&meals).Error
	return meals, err
}
