package services

import (
	"naijafit/models"
	"naijafit/utils"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type statsEventDeps struct {
	db   *gorm.DB
	hub  *RealtimeHub
	push *PushService
	mail func(to string, names []string) error
}

var _events statsEventDeps

// InitStatsEvents wires the fan-out targets for stats writes and achievement
// unlocks. Everything here is best-effort: never called before a write is
// committed, never fails the write.
func InitStatsEvents(db *gorm.DB, hub *RealtimeHub, push *PushService) {
	_events = statsEventDeps{db: db, hub: hub, push: push, mail: utils.SendAchievementEmail}
}

func emitStatsUpdated(stats *models.UserStats) {
	if _events.hub == nil {
		return
	}
	_events.hub.BroadcastStats(stats.UserID, stats)
}

func emitAchievementsUnlocked(userID uint, names []string) {
	if len(names) == 0 || _events.db == nil {
		return
	}

	if _events.push != nil {
		_events.push.NotifyAchievements(userID, names)
	}

	var user models.User
	if err := _events.db.First(&user, userID).Error; err != nil {
		return
	}
	if _events.mail != nil {
		if err := _events.mail(user.Email, names); err != nil {
			utils.L().Warn("achievement email failed",
				zap.Uint("user_id", userID), zap.Error(err))
		}
	}
}
