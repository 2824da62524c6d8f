package service

import "testing"

func TestComputeFinalPrice(t *testing.T) {
	tests := []struct {
		name          string
		pricePerMonth int64
		months        int
		promoPct      int
		want          int64
	}{
		{"one month no discount", 6000, 1, 0, 6000},
		{"three months tier", 6000, 3, 0, 15300},
		{"six months tier", 6000, 6, 0, 29520},
		{"twelve months tier", 6000, 12, 0, 57600},
		{"promo stacks on tier", 6000, 3, 10, 13770},
		{"full promo discount", 6000, 1, 100, 0},
		{"unknown duration gets no tier", 6000, 2, 0, 12000},
		{"rounding to nearest unit", 999, 3, 7, 2369},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeFinalPrice(tt.pricePerMonth, tt.months, tt.promoPct)
			if got != tt.want {
				t.Errorf("ComputeFinalPrice(%d, %d, %d) = %d, want %d",
					tt.pricePerMonth, tt.months, tt.promoPct, got, tt.want)
			}
		})
	}
}

func TestDurationDiscount(t *testing.T) {
	tests := []struct {
		months int
		want   float64
	}{
		{1, 0},
		{3, 0.15},
		{6, 0.18},
		{12, 0.20},
		{2, 0},
		{24, 0},
	}

	for _, tt := range tests {
		if got := DurationDiscount(tt.months); got != tt.want {
			t.Errorf("DurationDiscount(%d) = %v, want %v", tt.months, got, tt.want)
		}
	}
}
