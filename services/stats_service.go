package services

import (
	"errors"
	"sync"
	"time"

	"naijafit/models"

	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var (
	// ErrUserNotFound means a stats operation referenced a user whose record
	// was never initialized. Callers treat it as "stats unavailable", not as
	// a reason to abort the triggering meal mutation.
	ErrUserNotFound = errors.New("user stats not initialized")

	// ErrDuplicateUser means Initialize was called twice for the same user.
	ErrDuplicateUser = errors.New("user stats already initialized")
)

// StatsService owns the user_stats rows: it derives them from the meal log
// and nothing else writes them.
type StatsService struct {
	db  *gorm.DB
	log *zap.Logger

	// Now supplies "today" for streak computation; tests pin it.
	Now func() time.Time

	mu    sync.Mutex
	users map[uint]*sync.Mutex
}

func NewStatsService(db *gorm.DB, log *zap.Logger) *StatsService {
	return &StatsService{db: db, log: log, Now: time.Now, users: make(map[uint]*sync.Mutex)}
}

// lockUser serializes mutations per user. Both update paths are
// read-modify-write cycles with no optimistic-concurrency check, so
// concurrent requests for the same user would race otherwise.
func (s *StatsService) lockUser(userID uint) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.users[userID]
	if !ok {
		m = &sync.Mutex{}
		s.users[userID] = m
	}
	return m
}

func (s *StatsService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// Initialize creates the zeroed stats record for a freshly registered user.
func (s *StatsService) Initialize(userID uint) (*models.UserStats, error) {
	mu := s.lockUser(userID)
	mu.Lock()
	defer mu.Unlock()

	var existing models.UserStats
	err := s.db.Where("user_id = ?", userID).First(&existing).Error
	if err == nil {
		return nil, ErrDuplicateUser
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	stats := &models.UserStats{
		UserID:         userID,
		FavoriteFood:   models.FavoriteFoodUnknown,
		Achievements:   datatypes.JSONSlice[string]{AchievementWelcome},
		WeightProgress: datatypes.JSONSlice[models.WeightSample]{},
		LastUpdated:    s.now(),
	}
	if err := s.db.Create(stats).Error; err != nil {
		return nil, err
	}
	return stats, nil
}

// Get returns the persisted record, or a zeroed default view when the user
// was never initialized. A pure read never fails on a missing record.
func (s *StatsService) Get(userID uint) (*models.UserStats, error) {
	var stats models.UserStats
	err := s.db.Where("user_id = ?", userID).First(&stats).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &models.UserStats{
			UserID:         userID,
			FavoriteFood:   models.FavoriteFoodUnknown,
			Achievements:   datatypes.JSONSlice[string]{},
			WeightProgress: datatypes.JSONSlice[models.WeightSample]{},
		}, nil
	}
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

// UpdateAfterInsert is the incremental path, invoked right after a meal has
// been persisted. The meal count is incremented; averages, favorite food and
// streaks are re-derived from the full meal list (cheap, it is one query);
// longestStreak is kept as a high-water mark.
func (s *StatsService) UpdateAfterInsert(userID uint, meal *models.Meal) (*models.UserStats, error) {
	mu := s.lockUser(userID)
	mu.Lock()
	defer mu.Unlock()

	stats, err := s.load(userID)
	if err != nil {
		return nil, err
	}

	meals, err := s.userMeals(userID)
	if err != nil {
		return nil, err
	}

	stats.TotalMealsLogged++
	stats.AverageDailyCalories = averageDailyCalories(meals)
	if name := favoriteFood(meals); name != "" {
		stats.FavoriteFood = name
	}

	current, longest := ComputeStreaks(mealDates(meals), s.now())
	stats.CurrentStreak = current
	if longest > stats.LongestStreak {
		stats.LongestStreak = longest
	}

	unlocked := applyAchievements(stats)
	stats.LastUpdated = s.now()

	if err := s.db.Save(stats).Error; err != nil {
		return nil, err
	}

	s.log.Debug("stats updated after meal insert",
		zap.Uint("user_id", userID),
		zap.String("meal_id", meal.ID.String()),
		zap.Strings("unlocked", unlocked))

	emitStatsUpdated(stats)
	emitAchievementsUnlocked(userID, unlocked)
	return stats, nil
}

// RecomputeFull rebuilds the record from the remaining meals. Used after a
// deletion: favorite-food and streak state cannot be cheaply reversed, so
// everything is derived from scratch. Achievements are never re-evaluated or
// revoked here — once unlocked they are permanent.
func (s *StatsService) RecomputeFull(userID uint) (*models.UserStats, error) {
	mu := s.lockUser(userID)
	mu.Lock()
	defer mu.Unlock()

	stats, err := s.load(userID)
	if err != nil {
		return nil, err
	}

	meals, err := s.userMeals(userID)
	if err != nil {
		return nil, err
	}

	stats.TotalMealsLogged = len(meals)
	if len(meals) == 0 {
		stats.AverageDailyCalories = 0
		stats.FavoriteFood = models.FavoriteFoodUnknown
		stats.CurrentStreak = 0
		// longestStreak stays: deleting all meals does not erase the
		// historical high-water mark.
	} else {
		stats.AverageDailyCalories = averageDailyCalories(meals)
		if name := favoriteFood(meals); name != "" {
			stats.FavoriteFood = name
		} else {
			stats.FavoriteFood = models.FavoriteFoodUnknown
		}

		current, longest := ComputeStreaks(mealDates(meals), s.now())
		stats.CurrentStreak = current
		stats.LongestStreak = longest // overwritten, not high-water marked
	}
	stats.LastUpdated = s.now()

	if err := s.db.Save(stats).Error; err != nil {
		return nil, err
	}

	emitStatsUpdated(stats)
	return stats, nil
}

// AddWeightSample appends a dated weight measurement. This is the profile
// update flow's hook; meal logging never touches weight progress.
func (s *StatsService) AddWeightSample(userID uint, date string, weight float64) (*models.UserStats, error) {
	mu := s.lockUser(userID)
	mu.Lock()
	defer mu.Unlock()

	stats, err := s.load(userID)
	if err != nil {
		return nil, err
	}

	stats.WeightProgress = append(stats.WeightProgress, models.WeightSample{Date: date, Weight: weight})
	stats.LastUpdated = s.now()

	if err := s.db.Save(stats).Error; err != nil {
		return nil, err
	}
	return stats, nil
}

func (s *StatsService) load(userID uint) (*models.UserStats, error) {
	var stats models.UserStats
	err := s.db.Where("user_id = ?", userID).First(&stats).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

// userMeals fetches the full meal list in insertion order; the favorite-food
// tally depends on that order for its first-encounter tie-break.
func (s *StatsService) userMeals(userID uint) ([]models.Meal, error) {
	var meals []models.Meal
	err := s.db.
		Preload("Foods").
		Where("user_id = ?", userID).
		Order("created_at ASC, id ASC").
		Find(&meals).Error
	return meals, err
}

// averageDailyCalories is the mean of per-day calorie sums over the days that
// have at least one meal. Days without meals never enter the denominator.
func averageDailyCalories(meals []models.Meal) float64 {
	days := make(map[string]struct{})
	var total float64
	for _, m := range meals {
		total += m.TotalNutrition.Calories
		days[m.Date] = struct{}{}
	}
	if len(days) == 0 {
		return 0
	}
	return total / float64(len(days))
}

// favoriteFood tallies line-item name occurrences across all meals. Ties go
// to the name first encountered during the tally. Empty string when there is
// nothing to tally.
func favoriteFood(meals []models.Meal) string {
	counts := make(map[string]int)
	var order []string
	for _, m := range meals {
		for _, f := range m.Foods {
			if _, seen := counts[f.Name]; !seen {
				order = append(order, f.Name)
			}
			counts[f.Name]++
		}
	}

	best := ""
	bestCount := 0
	for _, name := range order {
		if counts[name] > bestCount {
			best = name
			bestCount = counts[name]
		}
	}
	return best
}

func mealDates(meals []models.Meal) []string {
	dates := make([]string, 0, len(meals))
	for _, m := range meals {
		dates = append(dates, m.Date)
	}
	return dates
}
