package pricing

import (
	"testing"
)

func TestNights(t *testing.T) {
	tests := []struct {
		name     string
		checkIn  string
		checkOut string
		want     int
		wantErr  bool
	}{
		{"one night", "2025-12-24", "2025-12-25", 1, false},
		{"two nights", "2025-12-24", "2025-12-26", 2, false},
		{"across month boundary", "2025-11-30", "2025-12-02", 2, false},
		{"same day", "2025-12-24", "2025-12-24", 0, true},
		{"check-out before check-in", "2025-12-25", "2025-12-24", 0, true},
		{"malformed check-in", "24.12.2025", "2025-12-25", 0, true},
		{"empty check-out", "2025-12-24", "", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Nights(tt.checkIn, tt.checkOut)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got nights=%d", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("Nights returned error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %d nights, got %d", tt.want, got)
			}
		})
	}
}

func TestTotals(t *testing.T) {
	local := TotalLocal(3, 4500)
	if local != 13500 {
		t.Errorf("expected 13500, got %d", local)
	}

	foreign := TotalForeign(13500, 117.2)
	if foreign != "115.19" {
		t.Errorf("expected 115.19, got %s", foreign)
	}
}

func TestTotalForeignTwoDecimals(t *testing.T) {
	// A divisor that does not terminate must still render to 2 places.
	got := TotalForeign(10000, 117.0)
	if got != "85.47" {
		t.Errorf("expected 85.47, got %s", got)
	}
}
