package console

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/hms/hms/internal/domain/admission"
)

const (
	optionAdmit = 1
	optionExit  = 2
)

// Session is the interactive menu loop.
type Session struct {
	prompt     *Prompter
	out        io.Writer
	admissions *admission.Service
	logger     zerolog.Logger
	jsonOutput bool
}

func NewSession(in io.Reader, out io.Writer, svc *admission.Service, logger zerolog.Logger, jsonOutput bool) *Session {
	return &Session{
		prompt:     NewPrompter(in, out),
		out:        out,
		admissions: svc,
		logger:     logger,
		jsonOutput: jsonOutput,
	}
}

// Run shows the main menu until the user exits or input ends.
func (s *Session) Run() error {
	for {
		fmt.Fprintln(s.out, "=== Hospital Management System ===")
		fmt.Fprintln(s.out, "1. Admit New Patient")
		fmt.Fprintln(s.out, "2. Exit")

		answer, err := s.prompt.String("Select Option: ")
		if err != nil {
			return ignoreClosed(err)
		}
		option, err := strconv.Atoi(answer)
		if err != nil {
			continue
		}

		switch option {
		case optionAdmit:
			if err := s.admit(); err != nil {
				return ignoreClosed(err)
			}
		case optionExit:
			return nil
		default:
			continue
		}

		if _, err := s.prompt.String("\nPress Enter to continue..."); err != nil {
			return ignoreClosed(err)
		}
	}
}

func (s *Session) admit() error {
	p, err := ReadPatient(s.prompt)
	if errors.Is(err, admission.ErrInvalidCategory) {
		s.logger.Warn().Err(err).Msg("admission skipped")
		return nil
	}
	if err != nil {
		return err
	}
	return Admit(s.out, s.admissions, p, s.jsonOutput)
}

// Admit runs one admission and renders the outcome.
func Admit(w io.Writer, svc *admission.Service, p *admission.Patient, jsonOutput bool) error {
	result, err := svc.AdmitPatient(p)
	if err != nil {
		return fmt.Errorf("admit patient %d: %w", p.ID, err)
	}
	if jsonOutput {
		return RenderJSON(w, p, result)
	}
	RenderDetails(w, p)
	return nil
}

func ignoreClosed(err error) error {
	if errors.Is(err, ErrInputClosed) {
		return nil
	}
	return err
}
