package notification

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// ---------------------------------------------------------------------------
// Channel Tests
// ---------------------------------------------------------------------------

func TestChannel_PublishNoObservers(t *testing.T) {
	ch := NewChannel()
	evt, err := ch.Publish(KindAdmission, "Patient Alice admitted.")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if evt.Message != "Patient Alice admitted." {
		t.Errorf("message = %q, want %q", evt.Message, "Patient Alice admitted.")
	}
	if evt.ID == uuid.Nil {
		t.Error("expected event ID to be assigned")
	}
}

func TestChannel_SubscriptionOrder(t *testing.T) {
	ch := NewChannel()
	var order []string
	ch.Subscribe(KindBilling, func(Event) error { order = append(order, "first"); return nil })
	ch.Subscribe(KindBilling, func(Event) error { order = append(order, "second"); return nil })
	ch.Subscribe(KindBilling, func(Event) error { order = append(order, "third"); return nil })

	if _, err := ch.Publish(KindBilling, "Final Bill Amount: Rs.2860"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "first,second,third"
	if got := strings.Join(order, ","); got != want {
		t.Errorf("order = %q, want %q", got, want)
	}
}

func TestChannel_KindsAreIsolated(t *testing.T) {
	ch := NewChannel()
	admissions := &Recorder{}
	bills := &Recorder{}
	ch.Subscribe(KindAdmission, admissions.Observe)
	ch.Subscribe(KindBilling, bills.Observe)

	if _, err := ch.Publish(KindAdmission, "Patient Bob admitted."); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(admissions.Events()) != 1 {
		t.Errorf("admission observer got %d events, want 1", len(admissions.Events()))
	}
	if len(bills.Events()) != 0 {
		t.Errorf("billing observer got %d events, want 0", len(bills.Events()))
	}
	if ch.Observers(KindAdmission) != 1 || ch.Observers(KindBilling) != 1 {
		t.Errorf("observer counts = %d/%d, want 1/1", ch.Observers(KindAdmission), ch.Observers(KindBilling))
	}
}

func TestChannel_ObserverErrorStopsFanOut(t *testing.T) {
	ch := NewChannel()
	boom := errors.New("printer jammed")
	called := false
	ch.Subscribe(KindBilling, func(Event) error { return boom })
	ch.Subscribe(KindBilling, func(Event) error { called = true; return nil })

	_, err := ch.Publish(KindBilling, "Final Bill Amount: Rs.1500")
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped observer error, got %v", err)
	}
	if called {
		t.Error("observer after the failing one should not be called")
	}
}

// ---------------------------------------------------------------------------
// Observer Tests
// ---------------------------------------------------------------------------

func TestPrefixWriter(t *testing.T) {
	var buf bytes.Buffer
	ch := NewChannel()
	ch.Subscribe(KindAdmission, PrefixWriter(&buf, "Reception"))

	if _, err := ch.Publish(KindAdmission, "Patient Carol admitted."); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "[Reception] Patient Carol admitted.\n"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}

func TestLogObserver(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)
	ch := NewChannel()
	ch.Subscribe(KindBilling, LogObserver(logger))

	evt, err := ch.Publish(KindBilling, "Final Bill Amount: Rs.6400")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := buf.String()
	for _, want := range []string{`"kind":"billing"`, `"message":"Final Bill Amount: Rs.6400"`, evt.ID.String()} {
		if !strings.Contains(out, want) {
			t.Errorf("log output %q missing %q", out, want)
		}
	}
}

func TestRecorder_Messages(t *testing.T) {
	rec := &Recorder{}
	ch := NewChannel()
	ch.Subscribe(KindAdmission, rec.Observe)
	ch.Subscribe(KindBilling, rec.Observe)

	ch.Publish(KindAdmission, "one")
	ch.Publish(KindBilling, "two")

	msgs := rec.Messages()
	if len(msgs) != 2 || msgs[0] != "one" || msgs[1] != "two" {
		t.Errorf("messages = %v, want [one two]", msgs)
	}
	events := rec.Events()
	if events[0].Kind != KindAdmission || events[1].Kind != KindBilling {
		t.Errorf("kinds = %s,%s", events[0].Kind, events[1].Kind)
	}
}
