package rlog

import "testing"

func TestDiscardIsNilSafe(t *testing.T) {
	l := Discard()
	if l != nil {
		t.Fatal("Discard should return nil")
	}
	// These must not panic on a nil receiver.
	l.Debug("unreachable")
	l.Info("unreachable", "k", "v")
	l.Warn("unreachable")
}
