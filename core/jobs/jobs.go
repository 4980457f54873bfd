package jobs

import (
	"context"

	"event-admin-api/core/logger"

	"github.com/hibiken/asynq"
)

// Jobs runs the background task server and its periodic schedule. The only
// registered work is housekeeping (expired OAuth state cleanup); record
// mutations never go through here.
type Jobs struct {
	server    *asynq.Server
	scheduler *asynq.Scheduler
	mux       *asynq.ServeMux
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

func New(cfg RedisConfig) *Jobs {
	redisOpt := asynq.RedisClientOpt{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	}

	server := asynq.NewServer(redisOpt, asynq.Config{
		Concurrency: 1,
	})
	scheduler := asynq.NewScheduler(redisOpt, nil)

	return &Jobs{
		server:    server,
		scheduler: scheduler,
		mux:       asynq.NewServeMux(),
	}
}

// RegisterPeriodic schedules a task type on a cron-style spec and binds its
// handler.
func (j *Jobs) RegisterPeriodic(spec string, taskType string, handler func(ctx context.Context) error) error {
	j.mux.HandleFunc(taskType, func(ctx context.Context, t *asynq.Task) error {
		return handler(ctx)
	})

	if _, err := j.scheduler.Register(spec, asynq.NewTask(taskType, nil)); err != nil {
		return err
	}

	return nil
}

// Start launches the worker and scheduler. Failure here is logged but not
// fatal: the API keeps serving without housekeeping.
func (j *Jobs) Start() {
	go func() {
		if err := j.server.Run(j.mux); err != nil {
			logger.Error("Jobs:Start:Server:Error:", err)
		}
	}()
	go func() {
		if err := j.scheduler.Run(); err != nil {
			logger.Error("Jobs:Start:Scheduler:Error:", err)
		}
	}()
}

func (j *Jobs) Shutdown() {
	j.scheduler.Shutdown()
	j.server.Shutdown()
}
