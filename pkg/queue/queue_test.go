package queue_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/damassweet/damas/pkg/queue"
)

var processed = make(chan string, 100)

type echoJob struct {
	Message string `json:"message"`
}

func (j *echoJob) Handle() error {
	processed <- j.Message
	return nil
}

var flakyAttempts atomic.Int32

type flakyJob struct{}

func (j *flakyJob) Handle() error {
	if flakyAttempts.Add(1) == 1 {
		return errors.New("transient failure")
	}
	processed <- "flaky-done"
	return nil
}

func init() {
	queue.Register("*queue_test.echoJob", func() queue.Job { return &echoJob{} })
	queue.Register("*queue_test.flakyJob", func() queue.Job { return &flakyJob{} })
	queue.StartWorkers(context.Background(), 2)
}

func waitFor(t *testing.T, want string, timeout time.Duration) {
	t.Helper()
	select {
	case got := <-processed:
		if got != want {
			t.Fatalf("processed %q, want %q", got, want)
		}
	case <-time.After(timeout):
		t.Fatalf("timed out waiting for %q", want)
	}
}

func TestDispatchProcessesJob(t *testing.T) {
	if err := queue.Dispatch(&echoJob{Message: "hello"}); err != nil {
		t.Fatalf("dispatch: %v", err)
	}
	waitFor(t, "hello", 3*time.Second)
}

func TestDispatchAfterDelaysJob(t *testing.T) {
	start := time.Now()
	queue.DispatchAfter(&echoJob{Message: "later"}, 200*time.Millisecond)
	waitFor(t, "later", 3*time.Second)

	if elapsed := time.Since(start); elapsed < 200*time.Millisecond {
		t.Errorf("job ran after %v, want at least 200ms", elapsed)
	}
}

func TestFailingJobIsRetried(t *testing.T) {
	flakyAttempts.Store(0)

	if err := queue.Dispatch(&flakyJob{}); err != nil {
		t.Fatalf("dispatch: %v", err)
	}
	// First attempt fails, the retry lands after the backoff.
	waitFor(t, "flaky-done", 5*time.Second)

	if got := flakyAttempts.Load(); got != 2 {
		t.Errorf("handled %d times, want 2", got)
	}
}
