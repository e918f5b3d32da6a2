package admission

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// ErrInvalidCategory is returned when a category is outside the closed set.
var ErrInvalidCategory = errors.New("invalid category")

// Category classifies a patient. Values match the service-type menu choices;
// the zero value means no category was chosen.
type Category int

const (
	General Category = iota + 1
	Emergency
	Insurance
	ICU
	Diagnostic
)

var categoryNames = map[Category]string{
	General:    "General",
	Emergency:  "Emergency",
	Insurance:  "Insurance",
	ICU:        "ICU",
	Diagnostic: "Diagnostic",
}

// Categories returns the closed category set in menu order.
func Categories() []Category {
	return []Category{General, Emergency, Insurance, ICU, Diagnostic}
}

func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Category(%d)", int(c))
}

// Valid reports whether c belongs to the closed set.
func (c Category) Valid() bool {
	_, ok := categoryNames[c]
	return ok
}

// ParseCategory resolves a category from its name (case-insensitive) or its
// menu number.
func ParseCategory(s string) (Category, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		c := Category(n)
		if !c.Valid() {
			return 0, fmt.Errorf("%w: %d", ErrInvalidCategory, n)
		}
		return c, nil
	}
	for c, name := range categoryNames {
		if strings.EqualFold(name, s) {
			return c, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidCategory, s)
}

// Patient is the intake record for one admission. Category is fixed at
// creation; FinalBill is attached by the admission flow for display.
type Patient struct {
	ID            int      `json:"id"`
	Name          string   `json:"name"`
	Age           int      `json:"age"`
	ContactNumber string   `json:"contact_number"`
	Symptoms      string   `json:"symptoms"`
	Category      Category `json:"category"`
	FinalBill     *float64 `json:"final_bill,omitempty"`
}

// AdmissionResult is what a completed admission hands back to its caller.
type AdmissionResult struct {
	AdmissionID uuid.UUID `json:"admission_id"`
	PatientID   int       `json:"patient_id"`
	Category    string    `json:"category"`
	Strategy    string    `json:"strategy"`
	BaseAmount  float64   `json:"base_amount"`
	FinalAmount float64   `json:"final_amount"`
	Messages    []string  `json:"messages"`
}

// FormatAmount renders an amount in its shortest exact decimal form,
// e.g. 2860 or 2861.5.
func FormatAmount(amount float64) string {
	return strconv.FormatFloat(amount, 'f', -1, 64)
}
