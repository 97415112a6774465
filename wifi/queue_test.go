package wifi

import (
	"testing"
	"time"
)

func TestQueueOrdering(t *testing.T) {
	q := newQueue[int]()

	for i := 0; i < 100; i++ {
		q.in <- i
	}

	for i := 0; i < 100; i++ {
		if v := <-q.out; v != i {
			t.Fatalf("expected %v, got %v", i, v)
		}
	}
}

func TestQueueUnboundedSend(t *testing.T) {
	q := newQueue[int]()

	// sends must never block, even with no consumer
	done := make(chan struct{})

	go func() {
		for i := 0; i < 10000; i++ {
			q.in <- i
		}

		close(done)
	}()

	select {
	case <-done:
	case <-time.After(3 * time.Second):
		t.Fatal("sends blocked without a consumer")
	}
}

func TestQueueCloseDrains(t *testing.T) {
	q := newQueue[int]()

	for i := 0; i < 10; i++ {
		q.in <- i
	}

	q.close()

	for i := 0; i < 10; i++ {
		v, ok := <-q.out
		if !ok {
			t.Fatalf("stream closed before draining, at %v", i)
		}

		if v != i {
			t.Fatalf("expected %v, got %v", i, v)
		}
	}

	if _, ok := <-q.out; ok {
		t.Fatal("expected the stream to be closed after draining")
	}
}
