// Package console holds the interactive presentation layer: prompting for
// patient intake and rendering admission output.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/hms/hms/internal/domain/admission"
)

// ErrInputClosed is returned once the input stream is exhausted.
var ErrInputClosed = errors.New("input closed")

// Prompter reads one answer per line.
type Prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewScanner(in), out: out}
}

// String prints label and returns the next line without surrounding spaces.
func (p *Prompter) String(label string) (string, error) {
	fmt.Fprint(p.out, label)
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		return "", ErrInputClosed
	}
	return strings.TrimSpace(p.in.Text()), nil
}

// Int asks until the answer parses as an integer.
func (p *Prompter) Int(label string) (int, error) {
	for {
		s, err := p.String(label)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(s)
		if err == nil {
			return n, nil
		}
		fmt.Fprintln(p.out, "Please enter a whole number.")
	}
}

// ReadPatient collects an intake record. An out-of-range service choice is
// reported and returned as admission.ErrInvalidCategory.
func ReadPatient(p *Prompter) (*admission.Patient, error) {
	var (
		pt  admission.Patient
		err error
	)
	if pt.ID, err = p.Int("Enter Patient ID: "); err != nil {
		return nil, err
	}
	if pt.Name, err = p.String("Enter Patient Name: "); err != nil {
		return nil, err
	}
	if pt.Age, err = p.Int("Enter Age: "); err != nil {
		return nil, err
	}
	if pt.ContactNumber, err = p.String("Enter Contact Number: "); err != nil {
		return nil, err
	}
	if pt.Symptoms, err = p.String("Enter Symptoms: "); err != nil {
		return nil, err
	}

	fmt.Fprintln(p.out, "\nSelect Service Type")
	for _, c := range admission.Categories() {
		fmt.Fprintf(p.out, "%d. %s\n", int(c), c)
	}
	choice, err := p.Int("Choice: ")
	if err != nil {
		return nil, err
	}
	pt.Category = admission.Category(choice)
	if !pt.Category.Valid() {
		fmt.Fprintln(p.out, "Invalid service type")
		return nil, fmt.Errorf("%w: %d", admission.ErrInvalidCategory, choice)
	}
	return &pt, nil
}
