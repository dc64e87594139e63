package storage

import (
	"testing"
	"time"
)

func TestIsFresh(t *testing.T) {
	if IsFresh(time.Time{}, time.Minute) {
		t.Error("zero fetch time must never be fresh")
	}
	if !IsFresh(time.Now(), 30*time.Second) {
		t.Error("just-fetched data must be fresh inside its window")
	}
	if IsFresh(time.Now().Add(-time.Minute), 30*time.Second) {
		t.Error("data older than the window must be stale")
	}
	if IsFresh(time.Now(), 0) {
		t.Error("a zero window admits nothing")
	}
}
