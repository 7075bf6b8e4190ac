package services

import (
	"path/filepath"
	"testing"
	"time"

	"naijafit/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "test.db") + "?_foreign_keys=on"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Meal{},
		&models.MealFood{},
		&models.UserStats{},
		&models.UserDevice{},
	))
	return db
}

// newTestStatsService pins "today" so streak assertions are stable.
func newTestStatsService(t *testing.T, db *gorm.DB, today string) *StatsService {
	t.Helper()

	svc := NewStatsService(db, zap.NewNop())
	fixed, err := time.Parse(models.DateLayout, today)
	require.NoError(t, err)
	svc.Now = func() time.Time { return fixed }
	return svc
}

func seedUser(t *testing.T, db *gorm.DB, email string) uint {
	t.Helper()

	user := models.User{Email: email, Password: "x", FullName: "Test User"}
	require.NoError(t, db.Create(&user).Error)
	return user.ID
}

// insertMeal persists a meal through the factory and runs the incremental
// stats update, mirroring the meal-logging flow. Foods each weigh 100g with
// calories split evenly.
func insertMeal(t *testing.T, db *gorm.DB, stats *StatsService, userID uint, date string, calories float64, foodNames ...string) *models.Meal {
	t.Helper()

	if len(foodNames) == 0 {
		foodNames = []string{"Jollof Rice"}
	}
	foods := make([]models.MealFood, 0, len(foodNames))
	per := calories / float64(len(foodNames))
	for _, name := range foodNames {
		foods = append(foods, models.MealFood{
			Name:      name,
			Grams:     100,
			Nutrition: models.Nutrition{Calories: per},
		})
	}

	meal := models.NewMeal(userID, models.MealLunch, date, "12:30 PM", foods)
	require.NoError(t, db.Create(meal).Error)

	_, err := stats.UpdateAfterInsert(userID, meal)
	require.NoError(t, err)
	return meal
}
