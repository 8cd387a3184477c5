package jobs

import (
	"context"
	"log/slog"

	"dispatch/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

const DefaultGeometryRepairSchedule = "@every 30s"

// GeometryRepairHandler repairs one batch of deliveries flagged for geometry refresh.
type GeometryRepairHandler interface {
	Handle(ctx context.Context, cmd commands.RepairGeometryCommand) (int, error)
}

// GeometryRepairJob periodically resolves geocodes and routes of deliveries
// created or edited since the last run.
type GeometryRepairJob struct {
	handler  GeometryRepairHandler
	schedule string
	batch    int
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewGeometryRepairJob creates the job. An empty schedule uses
// DefaultGeometryRepairSchedule.
func NewGeometryRepairJob(handler GeometryRepairHandler, schedule string, batch int, logger *slog.Logger) *GeometryRepairJob {
	if schedule == "" {
		schedule = DefaultGeometryRepairSchedule
	}
	return &GeometryRepairJob{
		handler:  handler,
		schedule: schedule,
		batch:    batch,
		cron:     cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger:   logger.With("component", "geometry_repair_job"),
	}
}

// Start schedules the job. Runs never overlap: a tick is skipped while the
// previous batch is still working.
func (j *GeometryRepairJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() {
		j.RunOnce(context.Background())
	}); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Geometry repair job started", "schedule", j.schedule, "batch", j.batch)
	return nil
}

// RunOnce repairs a single batch and returns how many deliveries were written.
func (j *GeometryRepairJob) RunOnce(ctx context.Context) int {
	cmd, err := commands.NewRepairGeometryCommand(j.batch)
	if err != nil {
		j.logger.ErrorContext(ctx, "Invalid geometry repair batch", "error", err)
		return 0
	}

	repaired, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		j.logger.ErrorContext(ctx, "Geometry repair job failed", "error", err)
		return repaired
	}
	if repaired > 0 {
		j.logger.DebugContext(ctx, "Geometry repaired", "deliveries", repaired)
	}
	return repaired
}

// Stop stops scheduling and waits for a running batch to finish.
func (j *GeometryRepairJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Geometry repair job stopped")
}
