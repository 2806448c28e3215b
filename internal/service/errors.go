package service

import (
	"fmt"

	"github.com/sci2zero/TeslaRIS-backend-sub000/internal/store"
)

// ErrNotFound is surfaced when a referenced id does not exist in the system
// of record. It is never retried internally.
var ErrNotFound = store.ErrNotFound

// BulkError reports how many per-item rewrites failed during a bulk
// reference switch. Successful items stay committed; the caller decides
// whether to retry the rest.
type BulkError struct {
	Failed int
	Total  int
}

func (e *BulkError) Error() string {
	return fmt.Sprintf("%d of %d reference switches failed", e.Failed, e.Total)
}
