package livefeed

import (
	"context"
	"testing"
	"time"
)

func TestNotifyReachesSubscribers(t *testing.T) {
	h := NewHub()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch := h.Subscribe(ctx)
	h.Notify()

	select {
	case <-ch:
	case <-time.After(time.Second):
		t.Fatal("subscriber never received the pulse")
	}
}

func TestPulsesCoalesce(t *testing.T) {
	h := NewHub()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch := h.Subscribe(ctx)
	h.Notify()
	h.Notify()
	h.Notify()

	<-ch
	select {
	case <-ch:
		// a second pending pulse is acceptable only if it arrived after a drain
	case <-time.After(50 * time.Millisecond):
	}
	// The channel must never block Notify regardless of backlog.
	h.Notify()
}

func TestUnsubscribeOnContextCancel(t *testing.T) {
	h := NewHub()
	ctx, cancel := context.WithCancel(context.Background())
	h.Subscribe(ctx)

	if got := h.SubscriberCount(); got != 1 {
		t.Fatalf("subscriber count = %d, want 1", got)
	}

	cancel()
	deadline := time.Now().Add(time.Second)
	for h.SubscriberCount() != 0 {
		if time.Now().After(deadline) {
			t.Fatal("subscription was not torn down after context cancel")
		}
		time.Sleep(5 * time.Millisecond)
	}

	// A pulse after teardown must not panic or leak to the stale view.
	h.Notify()
}

func TestIndependentSubscribers(t *testing.T) {
	h := NewHub()
	ctxA, cancelA := context.WithCancel(context.Background())
	defer cancelA()
	ctxB, cancelB := context.WithCancel(context.Background())

	chA := h.Subscribe(ctxA)
	h.Subscribe(ctxB)
	cancelB()

	h.Notify()
	select {
	case <-chA:
	case <-time.After(time.Second):
		t.Fatal("remaining subscriber missed the pulse")
	}
}
