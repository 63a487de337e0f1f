package broker

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/segmentio/kafka-go"

	"github.com/abhay963/Nagar-Sahayata-Portal/internal/entity"
	"github.com/abhay963/Nagar-Sahayata-Portal/pkg/metrics"
)

type Producer struct {
	l     *slog.Logger
	w     *kafka.Writer
	topic string
}

func NewProducer(l *slog.Logger, brokers []string, topic string) *Producer {
	l = l.WithGroup("kafka").With("topic", topic)

	w := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Balancer:               &kafka.Hash{},
		Async:                  true,
		Logger:                 &infoLogger{l: l},
		ErrorLogger:            &errorLogger{l: l},
		AllowAutoTopicCreation: true,
		Completion: func(messages []kafka.Message, err error) {
			if err != nil {
				metrics.ReportEvents.WithLabelValues("failed").Add(float64(len(messages)))
				l.Error(fmt.Sprintf("deliver %d report events: %s", len(messages), err))

				return
			}

			metrics.ReportEvents.WithLabelValues("delivered").Add(float64(len(messages)))
		},
	}

	return &Producer{
		l:     l,
		w:     w,
		topic: topic,
	}
}

// PublishReportEvent queues the event; delivery failures are only logged.
func (p *Producer) PublishReportEvent(ctx context.Context, event entity.ReportEvent) {
	b, err := json.Marshal(event)
	if err != nil {
		p.l.ErrorContext(ctx, fmt.Sprintf("marshal event: %s", err))
		return
	}

	err = p.w.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.ReportID.String()),
		Value: b,
		Topic: p.topic,
		Headers: []kafka.Header{
			{Key: "type", Value: []byte(event.Type)},
		},
	})
	if err != nil {
		metrics.ReportEvents.WithLabelValues("failed").Inc()
		p.l.ErrorContext(ctx, fmt.Sprintf("write kafka message: %s", err))

		return
	}
}

func (p *Producer) Close() {
	err := p.w.Close()
	if err != nil {
		p.l.Error(fmt.Sprintf("close kafka writer: %s", err))
	}
}
