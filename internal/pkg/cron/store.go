package cron

import (
	"context"
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/service/state"
)

// StoreLoader re-reads the Record Store into the mirror.
type StoreLoader interface {
	Load(ctx context.Context) (state.Summary, error)
}

// StoreJobs keeps the mirror in step with writes made by other instances
// sharing the same Record Store.
type StoreJobs struct {
	loader   StoreLoader
	interval time.Duration
}

func NewStoreJobs(loader StoreLoader, interval time.Duration) *StoreJobs {
	return &StoreJobs{
		loader:   loader,
		interval: interval,
	}
}

func (j *StoreJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("reload_record_store", j.interval, j.Reload)
}

// Reload replaces the mirror. A failed load keeps the previous mirror.
func (j *StoreJobs) Reload(ctx context.Context) error {
	_, err := j.loader.Load(ctx)
	return err
}
