package services

import (
	"encoding/json"
	"testing"

	"naijafit/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestExportImportRoundTrip(t *testing.T) {
	db := newTestDB(t)
	stats := newTestStatsService(t, db, "2024-01-05")
	meals := newTestMealService(t, db, stats)
	port := NewPortabilityService(db, stats, zap.NewNop())

	userID := seedUser(t, db, "ada@example.com")
	_, err := stats.Initialize(userID)
	require.NoError(t, err)

	_, err = meals.LogMeal(userID, LogMealRequest{
		Type: models.MealLunch, Date: "2024-01-04",
		Foods: []MealFoodRequest{{FoodID: "egusi-soup", Grams: 250}},
	})
	require.NoError(t, err)
	_, err = meals.LogMeal(userID, LogMealRequest{
		Type: models.MealDinner, Date: "2024-01-05", Mood: "happy",
		Foods: []MealFoodRequest{{FoodID: "suya", Grams: 150}},
	})
	require.NoError(t, err)

	bundle, err := port.Export(userID)
	require.NoError(t, err)
	require.Len(t, bundle.Meals, 2)
	require.NotNil(t, bundle.Stats)
	assert.Equal(t, 2, bundle.Stats.TotalMealsLogged)

	raw, err := json.Marshal(bundle)
	require.NoError(t, err)

	// Import into a second account on a fresh database.
	db2 := newTestDB(t)
	stats2 := newTestStatsService(t, db2, "2024-01-05")
	port2 := NewPortabilityService(db2, stats2, zap.NewNop())
	target := seedUser(t, db2, "bayo@example.com")
	_, err = stats2.Initialize(target)
	require.NoError(t, err)

	added, err := port2.Import(target, raw)
	require.NoError(t, err)
	assert.Equal(t, 2, added)

	got, err := stats2.Get(target)
	require.NoError(t, err)
	assert.Equal(t, 2, got.TotalMealsLogged)
	assert.Equal(t, 2, got.CurrentStreak)

	var imported []models.Meal
	require.NoError(t, db2.Preload("Foods").Where("user_id = ?", target).
		Order("date ASC").Find(&imported).Error)
	require.Len(t, imported, 2)
	assert.Equal(t, "egusi-soup", imported[0].Foods[0].FoodID)
	assert.Equal(t, "happy", imported[1].Mood)
}

func TestImportSkipsExistingMeals(t *testing.T) {
	db := newTestDB(t)
	stats := newTestStatsService(t, db, "2024-01-05")
	meals := newTestMealService(t, db, stats)
	port := NewPortabilityService(db, stats, zap.NewNop())

	userID := seedUser(t, db, "ada@example.com")
	_, err := stats.Initialize(userID)
	require.NoError(t, err)

	_, err = meals.LogMeal(userID, LogMealRequest{
		Type: models.MealLunch, Date: "2024-01-05",
		Foods: []MealFoodRequest{{FoodID: "dodo", Grams: 100}},
	})
	require.NoError(t, err)

	bundle, err := port.Export(userID)
	require.NoError(t, err)
	raw, err := json.Marshal(bundle)
	require.NoError(t, err)

	// Importing a user's own export is a no-op.
	added, err := port.Import(userID, raw)
	require.NoError(t, err)
	assert.Zero(t, added)

	got, err := stats.Get(userID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.TotalMealsLogged)
}

func TestImportRejectsMalformedBundle(t *testing.T) {
	db := newTestDB(t)
	stats := newTestStatsService(t, db, "2024-01-05")
	port := NewPortabilityService(db, stats, zap.NewNop())

	_, err := port.Import(1, []byte("{not json"))
	assert.Error(t, err)
}
