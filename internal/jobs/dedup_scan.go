package jobs

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/sci2zero/TeslaRIS-backend-sub000/internal/service"
)

// DuplicateScanTask periodically runs the duplicate scan. The scan itself
// is single-flight; an overlapping tick is reported back as not started.
type DuplicateScanTask struct {
	dedup    *service.DeduplicationService
	schedule string
}

func NewDuplicateScanTask(schedule string, dedup *service.DeduplicationService) *DuplicateScanTask {
	return &DuplicateScanTask{
		dedup:    dedup,
		schedule: schedule,
	}
}

func (t *DuplicateScanTask) Name() string {
	return "duplicate_scan"
}

func (t *DuplicateScanTask) Schedule() string {
	return t.schedule
}

func (t *DuplicateScanTask) Run() {
	started, err := t.dedup.StartScan(context.Background())
	if err != nil {
		logrus.Errorf("duplicate scan failed: %v", err)
		return
	}
	if !started {
		logrus.Warn("duplicate scan skipped, another scan is running")
	}
}
