package audit

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"panel/pkg/requestcontext"
)

// Sink persists or forwards audit events.
type Sink interface {
	Write(ctx context.Context, event Event) error
}

// Publisher captures structured audit events and fans them out to sinks. It
// is append-only so tests can swap sinks easily.
type Publisher struct {
	sinks []Sink
}

func NewPublisher(sinks ...Sink) *Publisher {
	return &Publisher{sinks: sinks}
}

// Emit stamps the event with an ID, time, caller and request ID where unset
// and writes it to every sink. All sinks are attempted even if one fails.
func (p *Publisher) Emit(ctx context.Context, event Event) error {
	if event.ID == uuid.Nil {
		event.ID = uuid.New()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = requestcontext.Now(ctx)
	}
	if event.ActorID == 0 {
		event.ActorID = requestcontext.UserID(ctx)
	}
	if event.RequestID == "" {
		event.RequestID = requestcontext.RequestID(ctx)
	}

	var errs []error
	for _, sink := range p.sinks {
		if err := sink.Write(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// timestampUTC normalizes event time for serialized sinks.
func timestampUTC(t time.Time) time.Time {
	return t.UTC().Truncate(time.Microsecond)
}
