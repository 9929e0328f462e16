package probe

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/hamed0406/pingprobe/internal/domain"
)

// slowProber tracks how many probes overlap.
type slowProber struct {
	mu      sync.Mutex
	active  int
	maxSeen int
}

func (s *slowProber) Probe(_ context.Context, host domain.Host) Outcome {
	s.mu.Lock()
	s.active++
	if s.active > s.maxSeen {
		s.maxSeen = s.active
	}
	s.mu.Unlock()

	time.Sleep(50 * time.Millisecond)

	s.mu.Lock()
	s.active--
	s.mu.Unlock()
	return Outcome{Status: StatusSuccess, Output: host.String()}
}

func TestPool_CapsConcurrentLaunches(t *testing.T) {
	inner := &slowProber{}
	pool := NewPool(inner, 1)
	defer pool.Stop()

	host := mustHost(t, "example.com")

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			out := pool.Probe(context.Background(), host)
			if out.Status != StatusSuccess {
				t.Errorf("want success, got %+v", out)
			}
		}()
	}
	wg.Wait()

	if inner.maxSeen != 1 {
		t.Fatalf("cap of 1 violated: saw %d overlapping probes", inner.maxSeen)
	}
}
