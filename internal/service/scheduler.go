package service

import "time"

// Scheduler paces a re-analysis run between its checkpoints. Production runs
// sleep a fixed interval per step so the progress stream is observable; tests
// inject an immediate scheduler.
type Scheduler interface {
	Wait(checkpoint int)
}

type timedScheduler struct {
	interval time.Duration
}

func NewTimedScheduler(interval time.Duration) Scheduler {
	return &timedScheduler{interval: interval}
}

func (s *timedScheduler) Wait(checkpoint int) {
	time.Sleep(s.interval)
}

// ImmediateScheduler advances runs without delay.
type ImmediateScheduler struct{}

func (ImmediateScheduler) Wait(checkpoint int) {}
