package service

import (
	"testing"
	"time"
)

func TestTimedSchedulerWaits(t *testing.T) {
	s := NewTimedScheduler(20 * time.Millisecond)

	start := time.Now()
	s.Wait(20)
	elapsed := time.Since(start)

	if elapsed < 20*time.Millisecond {
		t.Errorf("Wait returned after %v, want at least 20ms", elapsed)
	}
}

func TestImmediateSchedulerDoesNotBlock(t *testing.T) {
	s := ImmediateScheduler{}

	start := time.Now()
	for _, checkpoint := range []int{20, 50, 80, 100} {
		s.Wait(checkpoint)
	}
	elapsed := time.Since(start)

	if elapsed > 10*time.Millisecond {
		t.Errorf("immediate scheduler took %v across checkpoints", elapsed)
	}
}
