package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-feed-board/internal/service"
)

// refreshWorker adapts the client's background feed refresh job to the
// Worker contract so it can run alongside other workers.
type refreshWorker struct {
	job      service.ClientRefreshJob
	interval time.Duration
}

// NewRefreshWorker wraps the refresh job as a Worker that starts it with
// the given interval.
func NewRefreshWorker(job service.ClientRefreshJob, interval time.Duration) Worker {
	return &refreshWorker{job: job, interval: interval}
}

func (r *refreshWorker) Run() {
	r.job.Start(context.Background(), r.interval)
}
