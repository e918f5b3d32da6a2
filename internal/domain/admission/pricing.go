package admission

import "fmt"

var baseBills = map[Category]float64{
	General:    2000,
	Emergency:  5000,
	Insurance:  3000,
	ICU:        8000,
	Diagnostic: 1500,
}

// BaseBill returns the fixed starting charge for a category.
func BaseBill(c Category) (float64, error) {
	amount, ok := baseBills[c]
	if !ok {
		return 0, fmt.Errorf("%w: %d", ErrInvalidCategory, int(c))
	}
	return amount, nil
}
