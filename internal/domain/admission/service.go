package admission

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/hms/hms/internal/platform/notification"
)

type Service struct {
	events *notification.Channel
}

func NewService(events *notification.Channel) *Service {
	return &Service{events: events}
}

// AdmitPatient announces the admission, bills the patient and announces the
// final amount. The category is resolved first so an invalid record fails
// before anything is published.
func (s *Service) AdmitPatient(p *Patient) (*AdmissionResult, error) {
	base, err := BaseBill(p.Category)
	if err != nil {
		return nil, err
	}
	strategy, err := SelectStrategy(p.Category)
	if err != nil {
		return nil, err
	}

	admitted, err := s.events.Publish(notification.KindAdmission, fmt.Sprintf("Patient %s admitted.", p.Name))
	if err != nil {
		return nil, err
	}

	final, err := ApplyBilling(p, strategy)
	if err != nil {
		return nil, err
	}
	p.FinalBill = &final

	billed, err := s.events.Publish(notification.KindBilling, "Final Bill Amount: Rs."+FormatAmount(final))
	if err != nil {
		return nil, err
	}

	return &AdmissionResult{
		AdmissionID: uuid.New(),
		PatientID:   p.ID,
		Category:    p.Category.String(),
		Strategy:    strategy.String(),
		BaseAmount:  base,
		FinalAmount: final,
		Messages:    []string{admitted.Message, billed.Message},
	}, nil
}
