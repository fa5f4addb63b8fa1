package worker

import (
	"context"
	"sort"
	"testing"
	"time"
)

func TestPool_CollectsAllResults(t *testing.T) {
	pool := NewPool[int](3)
	pool.Start()

	for i := 0; i < 10; i++ {
		n := i
		pool.Submit(func(ctx context.Context) int { return n * 2 })
	}

	results := pool.Wait()
	if len(results) != 10 {
		t.Fatalf("expected 10 results, got %d", len(results))
	}

	sort.Ints(results)
	for i, got := range results {
		if got != i*2 {
			t.Errorf("result %d: expected %d, got %d", i, i*2, got)
		}
	}
}

func TestPool_SingleWorkerFallback(t *testing.T) {
	pool := NewPool[string](0)
	pool.Start()
	pool.Submit(func(ctx context.Context) string { return "ok" })

	results := pool.Wait()
	if len(results) != 1 || results[0] != "ok" {
		t.Errorf("expected single result, got %v", results)
	}
}

func TestPool_ShutdownCancelsJobs(t *testing.T) {
	pool := NewPool[bool](1)
	pool.Start()

	started := make(chan struct{})
	pool.Submit(func(ctx context.Context) bool {
		close(started)
		select {
		case <-ctx.Done():
			return true
		case <-time.After(5 * time.Second):
			return false
		}
	})

	<-started
	pool.Shutdown()
}

func TestPool_WaitWithoutJobs(t *testing.T) {
	pool := NewPool[int](2)
	pool.Start()

	if results := pool.Wait(); len(results) != 0 {
		t.Errorf("expected no results, got %v", results)
	}
}
