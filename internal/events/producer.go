package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"spotBooker/internal/lib/logger/sl"
	"spotBooker/internal/models"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

var ErrQueueFull = errors.New("event queue is full")

const writeTimeout = 5 * time.Second

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Producer publishes booking events through a buffered queue drained by a
// single goroutine, so publishing never blocks a request.
type Producer struct {
	log     *slog.Logger
	w       messageWriter
	service string
	inbox   chan kafka.Message
	done    chan struct{}
}

func NewProducer(log *slog.Logger, brokers []string, topic, service string, buf int) *Producer {
	return newProducer(log, &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
	}, service, buf)
}

func newProducer(log *slog.Logger, w messageWriter, service string, buf int) *Producer {
	if buf < 1 {
		buf = 1
	}

	return &Producer{
		log:     log.With(slog.String("component", "events/producer")),
		w:       w,
		service: service,
		inbox:   make(chan kafka.Message, buf),
		done:    make(chan struct{}),
	}
}

// Start drains the queue until ctx is cancelled, then flushes what is left
// and closes the writer.
func (p *Producer) Start(ctx context.Context) {
	go func() {
		defer close(p.done)

		for {
			select {
			case m := <-p.inbox:
				p.write(m)
			case <-ctx.Done():
				for {
					select {
					case m := <-p.inbox:
						p.write(m)
					default:
						if err := p.w.Close(); err != nil {
							p.log.Error("failed to close kafka writer", sl.Err(err))
						}
						return
					}
				}
			}
		}
	}()
}

func (p *Producer) WaitClosed() {
	<-p.done
}

func (p *Producer) write(m kafka.Message) {
	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()

	if err := p.w.WriteMessages(ctx, m); err != nil {
		p.log.Error("failed to publish event", slog.String("key", string(m.Key)), sl.Err(err))
	}
}

func (p *Producer) PublishBookingCreated(ctx context.Context, booking models.Booking) error {
	const op = "events.PublishBookingCreated"

	payload, err := json.Marshal(BookingCreatedPayload{
		BookingID: booking.ID,
		SpotID:    booking.SpotID,
		UserID:    booking.UserID,
		StartDate: booking.StartDate,
		EndDate:   booking.EndDate,
	})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	value, err := json.Marshal(Envelope{
		EventID:       uuid.NewString(),
		EventType:     EventBookingCreated,
		EventVersion:  1,
		OccurredAt:    time.Now().UTC(),
		Producer:      p.service,
		TraceID:       middleware.GetReqID(ctx),
		CorrelationID: strconv.Itoa(booking.ID),
		Payload:       payload,
	})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	msg := kafka.Message{
		Key:   PartitionKey(booking.SpotID),
		Value: value,
		Time:  time.Now(),
		Headers: []kafka.Header{
			{Key: "x-event-type", Value: []byte(EventBookingCreated)},
			{Key: "x-event-version", Value: []byte("1")},
		},
	}

	select {
	case p.inbox <- msg:
		return nil
	default:
		return fmt.Errorf("%s: %w", op, ErrQueueFull)
	}
}

// Nop is used when no brokers are configured.
type Nop struct{}

func (Nop) PublishBookingCreated(context.Context, models.Booking) error {
	return nil
}
