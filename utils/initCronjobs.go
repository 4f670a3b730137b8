package utils

import (
	"treadmill/auth"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// CronCleaner runs the daily token sweep. Verify already evicts expired
// tokens lazily; the sweep clears the ones nobody presents again.
func CronCleaner(gate *auth.Gate, logger *zap.Logger) {
	c := cron.New()

	c.AddFunc("@daily", func() {
		removed := gate.Sweep()
		if removed > 0 {
			logger.Info("期限切れトークンを削除しました", zap.Int("removed", removed))
		}
	})

	c.Start()
}
