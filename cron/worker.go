package cron

import (
	"context"
	"time"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	"curbside/config"
	reviewRepo "curbside/database/repository/review"
	"curbside/utils"
)

const TypeRatingReconcile = "rating:reconcile"

// InitReconcileWorker runs the periodic rating reconciliation in the
// background: recompute every truck's aggregate from the full review set and
// repair drift the rolling transaction cannot heal on its own.
func InitReconcileWorker(reviews reviewRepo.ReviewRepository) {
	logger := utils.GetLogger()

	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 1,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeRatingReconcile, handleReconcileTask(reviews))

	go func() {
		logger.Info("reconcile worker: starting")
		const maxAttempts = 5
		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				logger.Error("reconcile worker: failed to start",
					zap.Int("attempt", attempts), zap.Error(err))
				if attempts == maxAttempts {
					logger.Fatal("reconcile worker: max retry attempts reached")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()

	scheduler := asynq.NewScheduler(redisOpts, nil)
	// Unique keeps overlapping reconcile runs from piling up.
	if _, err := scheduler.Register(
		config.AppConfig.ReconcileSpec,
		asynq.NewTask(TypeRatingReconcile, nil),
		asynq.Unique(time.Hour),
	); err != nil {
		logger.Fatal("reconcile worker: failed to register schedule", zap.Error(err))
	}
	go func() {
		if err := scheduler.Run(); err != nil {
			logger.Error("reconcile worker: scheduler stopped", zap.Error(err))
		}
	}()
}

func handleReconcileTask(reviews reviewRepo.ReviewRepository) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		logger := utils.GetLogger()

		fixed, err := reviews.ReconcileAggregates(ctx)
		if err != nil {
			logger.Error("reconcile: pass failed", zap.Error(err))
			return err
		}
		if fixed > 0 {
			logger.Warn("reconcile: repaired drifted truck aggregates", zap.Int("trucks", fixed))
		} else {
			logger.Debug("reconcile: aggregates consistent")
		}
		return nil
	}
}
