package jobs

import (
	"context"
	"time"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/metrics"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

// DelayReportHandler reports overdue operations and returns how many were reported.
type DelayReportHandler interface {
	Handle(ctx context.Context, cmd commands.ReportDelaysCommand) (int, error)
}

// DelayReportJob runs the delay report on a cron schedule. A run that is
// still in progress when the next tick fires causes that tick to be skipped.
type DelayReportJob struct {
	handler   DelayReportHandler
	schedule  string
	batchSize int
	timeout   time.Duration
	cron      *cron.Cron
	logger    zerolog.Logger
}

// NewDelayReportJob creates the job. schedule uses the six field cron format
// with seconds, for example "0 */5 * * * *".
func NewDelayReportJob(
	handler DelayReportHandler,
	schedule string,
	batchSize int,
	logger zerolog.Logger,
) *DelayReportJob {
	cronLogger := cron.PrintfLogger(&logger)

	return &DelayReportJob{
		handler:   handler,
		schedule:  schedule,
		batchSize: batchSize,
		timeout:   time.Minute,
		cron: cron.New(
			cron.WithSeconds(),
			cron.WithChain(cron.Recover(cronLogger), cron.SkipIfStillRunning(cronLogger)),
		),
		logger: logger.With().Str("component", "delay_report_job").Logger(),
	}
}

// Start registers the run and starts the scheduler.
func (j *DelayReportJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, j.Run); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info().Str("schedule", j.schedule).Msg("delay report job started")
	return nil
}

// Run performs a single report. It is what the scheduler calls on every tick.
func (j *DelayReportJob) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
	defer cancel()

	cmd, err := commands.NewReportDelaysCommand(j.batchSize)
	if err != nil {
		metrics.DelayReportRuns.WithLabelValues("failed").Inc()
		j.logger.Error().Err(err).Msg("delay report job misconfigured")
		return
	}

	reported, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		metrics.DelayReportRuns.WithLabelValues("failed").Inc()
		j.logger.Error().Err(err).Int("reported", reported).Msg("delay report job failed")
		return
	}

	metrics.DelayReportRuns.WithLabelValues("succeeded").Inc()
	if reported > 0 {
		j.logger.Info().Int("reported", reported).Msg("delays reported")
	}
}

// Stop stops the scheduler and waits for a running report to finish.
func (j *DelayReportJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info().Msg("delay report job stopped")
}
