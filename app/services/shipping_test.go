package services

import "testing"

func TestShippingFeeTiers(t *testing.T) {
	cases := []struct {
		name     string
		subtotal float64
		want     float64
	}{
		{"empty order", 0, 0},
		{"negative subtotal", -10, 0},
		{"small order", 600, 50},
		{"exactly first boundary", 1000, 50},
		{"just past first boundary", 1000.01, 100},
		{"mid tier", 3000, 100},
		{"exactly second boundary", 5000, 100},
		{"just past second boundary", 5000.01, 150},
		{"large order", 6000, 150},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ShippingFee(tc.subtotal); got != tc.want {
				t.Errorf("ShippingFee(%v) = %v, want %v", tc.subtotal, got, tc.want)
			}
		})
	}
}
