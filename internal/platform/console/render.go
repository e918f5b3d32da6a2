package console

import (
	"fmt"
	"io"

	"github.com/goccy/go-json"
	"github.com/olekukonko/tablewriter"

	"github.com/hms/hms/internal/domain/admission"
)

// RenderDetails prints the patient detail block.
func RenderDetails(w io.Writer, p *admission.Patient) {
	fmt.Fprintln(w, "\n--- Patient Details ---")
	fmt.Fprintf(w, "ID       : %d\n", p.ID)
	fmt.Fprintf(w, "Name     : %s\n", p.Name)
	fmt.Fprintf(w, "Age      : %d\n", p.Age)
	fmt.Fprintf(w, "Contact  : %s\n", p.ContactNumber)
	fmt.Fprintf(w, "Symptoms : %s\n", p.Symptoms)
	fmt.Fprintf(w, "Service  : %s\n", p.Category)
	if p.FinalBill != nil {
		fmt.Fprintf(w, "Bill     : Rs.%s\n", admission.FormatAmount(*p.FinalBill))
	}
}

type admissionView struct {
	Patient *admission.Patient         `json:"patient"`
	Result  *admission.AdmissionResult `json:"result"`
}

// RenderJSON writes the patient and admission result as one JSON document.
func RenderJSON(w io.Writer, p *admission.Patient, r *admission.AdmissionResult) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(admissionView{Patient: p, Result: r}); err != nil {
		return fmt.Errorf("encode admission: %w", err)
	}
	return nil
}

// RenderTariff prints every category with its base bill, strategy and the
// amount that strategy produces.
func RenderTariff(w io.Writer) error {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Choice", "Category", "Base Bill", "Strategy", "Final Bill"})
	for _, c := range admission.Categories() {
		base, err := admission.BaseBill(c)
		if err != nil {
			return err
		}
		s, err := admission.SelectStrategy(c)
		if err != nil {
			return err
		}
		table.Append([]string{
			fmt.Sprintf("%d", int(c)),
			c.String(),
			"Rs." + admission.FormatAmount(base),
			s.String(),
			"Rs." + admission.FormatAmount(s.Apply(base)),
		})
	}
	table.Render()
	return nil
}
