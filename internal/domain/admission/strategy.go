package admission

import "fmt"

const (
	insuranceCoverage = 0.5
	serviceCharge     = 500
	taxRate           = 0.18
)

// Strategy is a billing rule applied to the base bill.
type Strategy int

const (
	// InsuranceDiscount bills half of the base amount.
	InsuranceDiscount Strategy = iota + 1
	// StandardEnhanced adds a flat service charge and tax on the base amount.
	StandardEnhanced
)

func (s Strategy) String() string {
	switch s {
	case InsuranceDiscount:
		return "insurance-discount"
	case StandardEnhanced:
		return "standard-enhanced"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// Apply transforms a base amount into the final payable amount.
func (s Strategy) Apply(base float64) float64 {
	switch s {
	case InsuranceDiscount:
		return base * insuranceCoverage
	default:
		return base + serviceCharge + base*taxRate
	}
}

// SelectStrategy picks the billing strategy for a category. Insurance
// patients get the discount; everyone else pays the enhanced rate.
func SelectStrategy(c Category) (Strategy, error) {
	switch c {
	case Insurance:
		return InsuranceDiscount, nil
	case General, Emergency, ICU, Diagnostic:
		return StandardEnhanced, nil
	default:
		return 0, fmt.Errorf("%w: %d", ErrInvalidCategory, int(c))
	}
}

// ApplyBilling computes the final amount for a patient under strategy s.
func ApplyBilling(p *Patient, s Strategy) (float64, error) {
	base, err := BaseBill(p.Category)
	if err != nil {
		return 0, err
	}
	return s.Apply(base), nil
}
