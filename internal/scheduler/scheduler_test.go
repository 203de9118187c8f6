package scheduler

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

type fakeNotifier struct {
	mu     sync.Mutex
	counts []int
	err    error
	sent   chan int
}

func (f *fakeNotifier) SendDueReminder(count int) error {
	f.mu.Lock()
	f.counts = append(f.counts, count)
	f.mu.Unlock()
	if f.sent != nil {
		f.sent <- count
	}
	return f.err
}

func (f *fakeNotifier) calls() []int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]int(nil), f.counts...)
}

func fixedCounter(n int) DueCounter {
	return DueCounterFunc(func(context.Context) int { return n })
}

func newTestScheduler(due int, hour int, n *fakeNotifier) *Scheduler {
	s := New(fixedCounter(due), n, Config{StartHour: 8, EndHour: 22, Location: time.UTC}, nil)
	s.now = func() time.Time { return time.Date(2026, 3, 2, hour, 15, 0, 0, time.UTC) }
	return s
}

func TestCheckRespectsNotificationWindow(t *testing.T) {
	tests := []struct {
		hour int
		want int
	}{
		{7, 0},
		{8, 1},
		{14, 1},
		{22, 1},
		{23, 0},
	}
	for _, tt := range tests {
		n := &fakeNotifier{}
		newTestScheduler(5, tt.hour, n).checkAndSendReminders(context.Background())
		if got := len(n.calls()); got != tt.want {
			t.Errorf("hour %d: %d reminders, want %d", tt.hour, got, tt.want)
		}
	}
}

func TestCheckSkipsWhenNothingDue(t *testing.T) {
	n := &fakeNotifier{}
	newTestScheduler(0, 12, n).checkAndSendReminders(context.Background())
	if len(n.calls()) != 0 {
		t.Fatalf("unexpected reminders %v", n.calls())
	}
}

func TestRunManualCheckIgnoresWindow(t *testing.T) {
	n := &fakeNotifier{}
	count, err := newTestScheduler(3, 2, n).RunManualCheck(context.Background())
	if err != nil {
		t.Fatalf("RunManualCheck: %v", err)
	}
	if count != 3 {
		t.Fatalf("count = %d, want 3", count)
	}
	if got := n.calls(); len(got) != 1 || got[0] != 3 {
		t.Fatalf("reminders = %v", got)
	}
}

func TestRunManualCheckReportsNotifierError(t *testing.T) {
	n := &fakeNotifier{err: errors.New("chat not found")}
	if _, err := newTestScheduler(1, 12, n).RunManualCheck(context.Background()); err == nil {
		t.Fatal("expected notifier error")
	}
}

func TestRunManualCheckCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	n := &fakeNotifier{}
	if _, err := newTestScheduler(1, 12, n).RunManualCheck(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("error = %v, want context.Canceled", err)
	}
}

func TestStartRunsFirstCheckImmediately(t *testing.T) {
	n := &fakeNotifier{sent: make(chan int, 1)}
	s := newTestScheduler(4, 12, n)
	if err := s.Start(context.Background()); err != nil {
		t.Fatalf("Start: %v", err)
	}
	defer s.Stop()

	select {
	case count := <-n.sent:
		if count != 4 {
			t.Fatalf("count = %d, want 4", count)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("scheduler did not run the first check")
	}
}

func TestNewDefaults(t *testing.T) {
	s := New(fixedCounter(0), &fakeNotifier{}, Config{}, nil)
	if s.cfg.Interval != time.Hour || s.cfg.Location == nil {
		t.Fatalf("unexpected defaults %+v", s.cfg)
	}
}
