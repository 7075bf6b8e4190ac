package services

import "naijafit/models"

const (
	AchievementWelcome          = "Welcome"
	AchievementFirstMeal        = "First Meal Logged"
	AchievementConsistentLogger = "Consistent Logger"
	AchievementWeekWarrior      = "Week Warrior"
	AchievementMonthlyMaster    = "Monthly Master"
)

type achievementRule struct {
	Name      string
	Qualifies func(*models.UserStats) bool
}

// Count rules fire on the exact crossing call; streak rules fire on any call
// once the threshold is met (and then never again, the name is already there).
var achievementRules = []achievementRule{
	{AchievementFirstMeal, func(s *models.UserStats) bool { return s.TotalMealsLogged == 1 }},
	{AchievementConsistentLogger, func(s *models.UserStats) bool { return s.TotalMealsLogged == 10 }},
	{AchievementWeekWarrior, func(s *models.UserStats) bool { return s.CurrentStreak >= 7 }},
	{AchievementMonthlyMaster, func(s *models.UserStats) bool { return s.LongestStreak >= 30 }},
}

// applyAchievements appends every newly qualified achievement to stats and
// returns the names it added. Idempotent: a second run adds nothing.
func applyAchievements(stats *models.UserStats) []string {
	var unlocked []string
	for _, rule := range achievementRules {
		if rule.Qualifies(stats) && !stats.HasAchievement(rule.Name) {
			stats.Achievements = append(stats.Achievements, rule.Name)
			unlocked = append(unlocked, rule.Name)
		}
	}
	return unlocked
}
