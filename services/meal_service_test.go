package services

import (
	"testing"

	"naijafit/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newTestMealService(t *testing.T, db *gorm.DB, stats *StatsService) *MealService {
	t.Helper()
	return NewMealService(db, NewFoodService(), stats, zap.NewNop())
}

func TestLogMealComputesAndPersistsTotals(t *testing.T) {
	db := newTestDB(t)
	stats := newTestStatsService(t, db, "2024-01-05")
	svc := newTestMealService(t, db, stats)
	userID := seedUser(t, db, "ada@example.com")
	_, err := stats.Initialize(userID)
	require.NoError(t, err)

	meal, err := svc.LogMeal(userID, LogMealRequest{
		Type: models.MealLunch,
		Date: "2024-01-05",
		Time: "12:30 PM",
		Foods: []MealFoodRequest{
			{
				Name:    "Rice",
				Grams:   200,
				Per100g: &models.Nutrition{Calories: 130, Protein: 2.7, Carbs: 28, Fats: 0.3},
			},
			{
				Name:    "Beans",
				Grams:   50,
				Per100g: &models.Nutrition{Calories: 120, Protein: 8, Carbs: 21, Fats: 0.5},
			},
		},
	})
	require.NoError(t, err)

	// 200g Rice: 260 kcal, 50g Beans: 60 kcal.
	assert.InDelta(t, 320.0, meal.TotalNutrition.Calories, 1e-9)
	assert.InDelta(t, 9.4, meal.TotalNutrition.Protein, 1e-9)

	var got models.Meal
	require.NoError(t, db.Preload("Foods").First(&got, "id = ?", meal.ID).Error)
	require.Len(t, got.Foods, 2)
	assert.InDelta(t, 320.0, got.TotalNutrition.Calories, 1e-9)
	assert.InDelta(t, 260.0, got.Foods[0].Nutrition.Calories, 1e-9)
}

func TestLogMealResolvesCatalogFood(t *testing.T) {
	db := newTestDB(t)
	stats := newTestStatsService(t, db, "2024-01-05")
	svc := newTestMealService(t, db, stats)
	userID := seedUser(t, db, "ada@example.com")
	_, err := stats.Initialize(userID)
	require.NoError(t, err)

	meal, err := svc.LogMeal(userID, LogMealRequest{
		Type:  models.MealDinner,
		Date:  "2024-01-05",
		Foods: []MealFoodRequest{{FoodID: "jollof-rice", Grams: 300}},
	})
	require.NoError(t, err)
	require.Len(t, meal.Foods, 1)
	assert.Equal(t, "Jollof Rice", meal.Foods[0].Name)
	assert.Equal(t, "jollof-rice", meal.Foods[0].FoodID)
	assert.Greater(t, meal.TotalNutrition.Calories, 0.0)
}

func TestLogMealUpdatesStats(t *testing.T) {
	db := newTestDB(t)
	stats := newTestStatsService(t, db, "2024-01-05")
	svc := newTestMealService(t, db, stats)
	userID := seedUser(t, db, "ada@example.com")
	_, err := stats.Initialize(userID)
	require.NoError(t, err)

	_, err = svc.LogMeal(userID, LogMealRequest{
		Type:  models.MealBreakfast,
		Date:  "2024-01-05",
		Foods: []MealFoodRequest{{FoodID: "akara", Grams: 150}},
	})
	require.NoError(t, err)

	got, err := stats.Get(userID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.TotalMealsLogged)
	assert.Equal(t, "Akara", got.FavoriteFood)
	assert.Equal(t, 1, got.CurrentStreak)
}

func TestLogMealSucceedsWithoutInitializedStats(t *testing.T) {
	db := newTestDB(t)
	stats := newTestStatsService(t, db, "2024-01-05")
	svc := newTestMealService(t, db, stats)
	userID := seedUser(t, db, "ada@example.com")

	meal, err := svc.LogMeal(userID, LogMealRequest{
		Type:  models.MealSnack,
		Date:  "2024-01-05",
		Foods: []MealFoodRequest{{FoodID: "puff-puff", Grams: 80}},
	})
	require.NoError(t, err, "meal log is the source of truth, missing stats must not block it")
	assert.NotEqual(t, uuid.Nil, meal.ID)
}

func TestLogMealValidation(t *testing.T) {
	db := newTestDB(t)
	stats := newTestStatsService(t, db, "2024-01-05")
	svc := newTestMealService(t, db, stats)
	userID := seedUser(t, db, "ada@example.com")

	cases := []struct {
		name string
		req  LogMealRequest
	}{
		{"bad type", LogMealRequest{Type: "brunch", Date: "2024-01-05",
			Foods: []MealFoodRequest{{FoodID: "akara", Grams: 100}}}},
		{"bad date", LogMealRequest{Type: models.MealLunch, Date: "05/01/2024",
			Foods: []MealFoodRequest{{FoodID: "akara", Grams: 100}}}},
		{"no foods", LogMealRequest{Type: models.MealLunch, Date: "2024-01-05"}},
		{"zero grams", LogMealRequest{Type: models.MealLunch, Date: "2024-01-05",
			Foods: []MealFoodRequest{{FoodID: "akara", Grams: 0}}}},
		{"unknown food id", LogMealRequest{Type: models.MealLunch, Date: "2024-01-05",
			Foods: []MealFoodRequest{{FoodID: "pizza", Grams: 100}}}},
		{"per_100g without name", LogMealRequest{Type: models.MealLunch, Date: "2024-01-05",
			Foods: []MealFoodRequest{{Grams: 100, Per100g: &models.Nutrition{Calories: 100}}}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.LogMeal(userID, tc.req)
			assert.Error(t, err)
		})
	}

	var count int64
	require.NoError(t, db.Model(&models.Meal{}).Count(&count).Error)
	assert.Zero(t, count, "rejected requests must not persist anything")
}

func TestDeleteMealRecomputesStats(t *testing.T) {
	db := newTestDB(t)
	stats := newTestStatsService(t, db, "2024-01-05")
	svc := newTestMealService(t, db, stats)
	userID := seedUser(t, db, "ada@example.com")
	_, err := stats.Initialize(userID)
	require.NoError(t, err)

	keep, err := svc.LogMeal(userID, LogMealRequest{
		Type:  models.MealLunch,
		Date:  "2024-01-05",
		Foods: []MealFoodRequest{{Name: "Rice", Grams: 100, Per100g: &models.Nutrition{Calories: 500}}},
	})
	require.NoError(t, err)
	doomed, err := svc.LogMeal(userID, LogMealRequest{
		Type:  models.MealDinner,
		Date:  "2024-01-05",
		Foods: []MealFoodRequest{{Name: "Dodo", Grams: 100, Per100g: &models.Nutrition{Calories: 300}}},
	})
	require.NoError(t, err)

	ok, err := svc.DeleteMeal(userID, doomed.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	got, err := stats.Get(userID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.TotalMealsLogged)
	assert.InDelta(t, 500.0, got.AverageDailyCalories, 1e-9)

	_, err = svc.GetMeal(userID, doomed.ID)
	assert.Error(t, err)
	_, err = svc.GetMeal(userID, keep.ID)
	assert.NoError(t, err)
}

func TestDeleteMealNotFound(t *testing.T) {
	db := newTestDB(t)
	stats := newTestStatsService(t, db, "2024-01-05")
	svc := newTestMealService(t, db, stats)
	userID := seedUser(t, db, "ada@example.com")

	ok, err := svc.DeleteMeal(userID, uuid.New())
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestDeleteMealScopedToOwner(t *testing.T) {
	db := newTestDB(t)
	stats := newTestStatsService(t, db, "2024-01-05")
	svc := newTestMealService(t, db, stats)
	owner := seedUser(t, db, "ada@example.com")
	other := seedUser(t, db, "bayo@example.com")

	meal, err := svc.LogMeal(owner, LogMealRequest{
		Type:  models.MealLunch,
		Date:  "2024-01-05",
		Foods: []MealFoodRequest{{FoodID: "eba", Grams: 200}},
	})
	require.NoError(t, err)

	ok, err := svc.DeleteMeal(other, meal.ID)
	require.NoError(t, err)
	assert.False(t, ok, "a user cannot delete someone else's meal")

	_, err = svc.GetMeal(owner, meal.ID)
	assert.NoError(t, err)
}

func TestMealQueriesByDate(t *testing.T) {
	db := newTestDB(t)
	stats := newTestStatsService(t, db, "2024-01-06")
	svc := newTestMealService(t, db, stats)
	userID := seedUser(t, db, "ada@example.com")

	for _, d := range []string{"2024-01-03", "2024-01-04", "2024-01-04", "2024-01-06"} {
		_, err := svc.LogMeal(userID, LogMealRequest{
			Type:  models.MealLunch,
			Date:  d,
			Foods: []MealFoodRequest{{FoodID: "moi-moi", Grams: 120}},
		})
		require.NoError(t, err)
	}

	byDate, err := svc.MealsByDate(userID, "2024-01-04")
	require.NoError(t, err)
	assert.Len(t, byDate, 2)

	ranged, err := svc.MealsByDateRange(userID, "2024-01-04", "2024-01-06")
	require.NoError(t, err)
	assert.Len(t, ranged, 3)

	recent, err := svc.RecentMeals(userID, 0)
	require.NoError(t, err)
	require.Len(t, recent, 3)
	assert.Equal(t, "2024-01-06", recent[0].Date)

	all, err := svc.ListMeals(userID)
	require.NoError(t, err)
	assert.Len(t, all, 4)
}
