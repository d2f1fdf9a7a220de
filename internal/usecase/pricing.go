package usecase

import (
	"strings"

	"airport-ops/pkg/utils"
)

const studentDiscountReason = "Student .edu discount (20%)"

// PricingEngine maps (email, seat count) to a base/final price and an
// optional discount reason. Pure: no side effects, no I/O.
type PricingEngine struct {
	baseSeatPrice int
}

func NewPricingEngine(cfg utils.PricingConfig) *PricingEngine {
	return &PricingEngine{baseSeatPrice: cfg.BaseSeatPrice}
}

// Quote returns the base price, the final price after discounts and the
// discount reason (nil when no discount applies). Students with a ".edu"
// email get 20% off, rounded down.
func (p *PricingEngine) Quote(email string, numSeats int) (base int, final int, reason *string) {
	base = p.baseSeatPrice * numSeats
	final = base

	if strings.HasSuffix(strings.ToLower(email), ".edu") {
		final = int(float64(base) * 0.8)
		r := studentDiscountReason
		reason = &r
	}

	return base, final, reason
}
