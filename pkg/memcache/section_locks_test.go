package mem

import (
	"testing"
	"time"
)

func TestSectionLocksAcquireRelease(t *testing.T) {
	locks := NewSectionLocks()

	if !locks.TryAcquire("day-2:lunch", time.Minute) {
		t.Fatalf("fresh lock not acquired")
	}
	if locks.TryAcquire("day-2:lunch", time.Minute) {
		t.Fatalf("held lock acquired twice")
	}
	if !locks.Held("day-2:lunch") {
		t.Fatalf("held lock not reported")
	}

	// Independent keys never contend.
	if !locks.TryAcquire("day-2:dinner", time.Minute) {
		t.Fatalf("unrelated key blocked")
	}

	locks.Release("day-2:lunch")
	if locks.Held("day-2:lunch") {
		t.Fatalf("released lock still reported held")
	}
	if !locks.TryAcquire("day-2:lunch", time.Minute) {
		t.Fatalf("released lock not reacquirable")
	}
}

func TestSectionLocksExpire(t *testing.T) {
	locks := NewSectionLocks()

	if !locks.TryAcquire("day-1:morning", 5*time.Millisecond) {
		t.Fatalf("fresh lock not acquired")
	}
	time.Sleep(10 * time.Millisecond)

	if locks.Held("day-1:morning") {
		t.Fatalf("expired lock still reported held")
	}
	if !locks.TryAcquire("day-1:morning", time.Minute) {
		t.Fatalf("expired lock not reacquirable")
	}
}
