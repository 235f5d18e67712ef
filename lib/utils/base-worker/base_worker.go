// Package baseworker runs a job on a fixed schedule until its context ends.
package baseworker

import (
	"context"
	"runtime/debug"
	"sync/atomic"
	"time"

	log "github.com/sirupsen/logrus"
)

type BaseImpl struct {
	WorkerName    string
	firstRunDelay time.Duration
	runInterval   time.Duration
	runs          atomic.Int64
	panics        atomic.Int64
}

func NewInstance(workerName string, firstRunDelay, runInterval time.Duration) *BaseImpl {
	return &BaseImpl{
		WorkerName:    workerName,
		firstRunDelay: firstRunDelay,
		runInterval:   runInterval,
	}
}

func (i *BaseImpl) GetLogger() *log.Entry {
	return log.WithField("worker_name", i.WorkerName)
}

// Runs is the number of finished runs, panicked ones included.
func (i *BaseImpl) Runs() int64 {
	return i.runs.Load()
}

// Panics is the number of runs that ended in a recovered panic.
func (i *BaseImpl) Panics() int64 {
	return i.panics.Load()
}

// Run blocks until ctx is done. The first run starts after firstRunDelay and
// the next one runInterval after the previous run returns. A panicking run is
// logged and does not stop the schedule. A non-positive runInterval runs the
// job once.
func (i *BaseImpl) Run(ctx context.Context, jobFunc func(ctx context.Context)) {
	logger := i.GetLogger()
	timer := time.NewTimer(i.firstRunDelay)
	defer timer.Stop()
	for {
		select {
		case <-ctx.Done():
			logger.WithField("runs", i.Runs()).Info("worker stopped")
			return
		case <-timer.C:
		}
		i.runOnce(ctx, jobFunc, logger)
		if i.runInterval <= 0 {
			logger.Info("worker finished its only run")
			return
		}
		timer.Reset(i.runInterval)
	}
}

func (i *BaseImpl) runOnce(ctx context.Context, jobFunc func(ctx context.Context), logger *log.Entry) {
	started := time.Now()
	defer func() {
		i.runs.Add(1)
		if r := recover(); r != nil {
			i.panics.Add(1)
			logger.
				WithField("panic_stack", string(debug.Stack())).
				Errorf("worker run panicked: (%v)", r)
			return
		}
		logger.WithField("took", time.Since(started).String()).Debug("worker run finished")
	}()
	jobFunc(ctx)
}
