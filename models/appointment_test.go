package models

import "testing"

func TestValidStatus(t *testing.T) {
	for _, s := range []string{StatusPending, StatusConfirmed, StatusCancelled} {
		if !ValidStatus(s) {
			t.Errorf("expected %q to be a valid status", s)
		}
	}
	for _, s := range []string{"", "done", "Pending", "CONFIRMED"} {
		if ValidStatus(s) {
			t.Errorf("expected %q to be rejected", s)
		}
	}
}
