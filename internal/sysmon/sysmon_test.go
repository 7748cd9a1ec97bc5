package sysmon

import "testing"

func TestSample(t *testing.T) {
	s := Sample()

	if s.CPUPercent < 0 || s.CPUPercent > 100 {
		t.Errorf("CPUPercent = %f, want 0..100", s.CPUPercent)
	}
	if s.MemPercent < 0 || s.MemPercent > 100 {
		t.Errorf("MemPercent = %f, want 0..100", s.MemPercent)
	}
}
