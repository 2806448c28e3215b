package jobs

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/sci2zero/TeslaRIS-backend-sub000/internal/service"
)

// ReindexTask periodically rebuilds the search projection from the system
// of record, repairing any staleness left by interrupted rewrites.
type ReindexTask struct {
	reindex  *service.ReindexService
	schedule string
}

func NewReindexTask(schedule string, reindex *service.ReindexService) *ReindexTask {
	return &ReindexTask{
		reindex:  reindex,
		schedule: schedule,
	}
}

func (t *ReindexTask) Name() string {
	return "reindex_sweep"
}

func (t *ReindexTask) Schedule() string {
	return t.schedule
}

func (t *ReindexTask) Run() {
	if err := t.reindex.RebuildAll(context.Background()); err != nil {
		logrus.Errorf("reindex sweep failed: %v", err)
	}
}
