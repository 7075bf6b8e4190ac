package services

import (
	"errors"

	"naijafit/models"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// StatsRepairJob periodically rebuilds every user's stats from the meal log.
// Per-update failures are best-effort and leave stats stale until this sweep
// catches them up.
type StatsRepairJob struct {
	db    *gorm.DB
	stats *StatsService
	log   *zap.Logger
	cron  *cron.Cron
}

func NewStatsRepairJob(db *gorm.DB, stats *StatsService, log *zap.Logger) *StatsRepairJob {
	return &StatsRepairJob{db: db, stats: stats, log: log}
}

// Start schedules Run under the given cron spec, e.g. "0 3 * * *".
func (j *StatsRepairJob) Start(spec string) error {
	c := cron.New()
	if _, err := c.AddFunc(spec, j.Run); err != nil {
		return err
	}
	c.Start()
	j.cron = c
	return nil
}

func (j *StatsRepairJob) Stop() {
	if j.cron != nil {
		j.cron.Stop()
	}
}

func (j *StatsRepairJob) Run() {
	var rows []models.UserStats
	if err := j.db.Find(&rows).Error; err != nil {
		j.log.Error("stats repair sweep failed to list users", zap.Error(err))
		return
	}

	repaired := 0
	for _, row := range rows {
		if _, err := j.stats.RecomputeFull(row.UserID); err != nil {
			if !errors.Is(err, ErrUserNotFound) {
				j.log.Warn("stats repair failed for user",
					zap.Uint("user_id", row.UserID), zap.Error(err))
			}
			continue
		}
		repaired++
	}
	j.log.Info("stats repair sweep finished",
		zap.Int("users", len(rows)), zap.Int("repaired", repaired))
}
