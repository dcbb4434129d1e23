package eventqueue

import (
	"context"
	"fmt"
	"sync"

	"medscreen-service/internal/app/contracts"
	"medscreen-service/internal/app/models"
	"medscreen-service/internal/pkg/constvars"
	"medscreen-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

const (
	AssessmentEventQueueName = "assessment_events_queue"
	DeadLetterQueueName      = "assessment_events_dlq"
)

// Service publishes completed-assessment events to RabbitMQ. Both queues are
// durable and every publish waits for a broker confirm.
type Service struct {
	ch       *amqp.Channel
	log      *zap.Logger
	confirms chan amqp.Confirmation
	mu       sync.Mutex
}

func NewService(conn *amqp.Connection, log *zap.Logger, prefetch int) (contracts.EventQueueService, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, err
	}

	_, err = ch.QueueDeclare(
		AssessmentEventQueueName, // name
		true,                     // durable
		false,                    // autoDelete
		false,                    // exclusive
		false,                    // noWait
		nil,                      // args
	)
	if err != nil {
		return nil, exceptions.ErrQueueDeclare(err, AssessmentEventQueueName)
	}

	// Dead-letter queue for consumers that give up on an event.
	_, err = ch.QueueDeclare(
		DeadLetterQueueName,
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return nil, exceptions.ErrQueueDeclare(err, DeadLetterQueueName)
	}

	if prefetch <= 0 {
		prefetch = 1
	}
	if err := ch.Qos(prefetch, 0, false); err != nil {
		return nil, err
	}

	if err := ch.Confirm(false); err != nil {
		return nil, err
	}

	svc := &Service{
		ch:       ch,
		log:      log,
		confirms: ch.NotifyPublish(make(chan amqp.Confirmation, 1)),
	}

	return svc, nil
}

func (s *Service) PublishAssessmentCompleted(ctx context.Context, event models.AssessmentEvent) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	s.log.Info("EventQueue.PublishAssessmentCompleted called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQueueNameKey, AssessmentEventQueueName),
		zap.String(constvars.LoggingSessionIDKey, event.SessionID),
	)

	body, err := json.Marshal(event)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	msg := amqp.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp.Persistent,
	}

	if err := s.ch.PublishWithContext(ctx, "", AssessmentEventQueueName, false, false, msg); err != nil {
		return exceptions.ErrQueuePublish(err, AssessmentEventQueueName)
	}

	select {
	case confirmed := <-s.confirms:
		if !confirmed.Ack {
			return exceptions.ErrQueueConfirm(fmt.Errorf("message not confirmed"), AssessmentEventQueueName)
		}
	case <-ctx.Done():
		return exceptions.ErrQueueConfirm(ctx.Err(), AssessmentEventQueueName)
	}
	return nil
}
