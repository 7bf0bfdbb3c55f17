package services

// Flat shipping-fee tiers by order subtotal.
//
//	subtotal ≤ 0        → 0 (nothing to ship)
//	0 < subtotal ≤ 1000 → 50
//	1000 < subtotal ≤ 5000 → 100
//	subtotal > 5000     → 150
const (
	shippingTier1Limit = 1000.0
	shippingTier2Limit = 5000.0

	shippingTier1Fee = 50.0
	shippingTier2Fee = 100.0
	shippingTier3Fee = 150.0
)

// ShippingFee returns the flat delivery fee for an order subtotal.
func ShippingFee(subtotal float64) float64 {
	switch {
	case subtotal <= 0:
		return 0
	case subtotal <= shippingTier1Limit:
		return shippingTier1Fee
	case subtotal <= shippingTier2Limit:
		return shippingTier2Fee
	default:
		return shippingTier3Fee
	}
}
