package notifier

import (
	"context"
	"medifind-service/internal/app/contracts"
	"medifind-service/internal/pkg/constvars"
	"medifind-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

type notifierService struct {
	Channel      *amqp091.Channel
	BookingQueue string
	OTPQueue     string
	Logger       *zap.Logger
}

func NewNotifierService(rabbitMQConnection *amqp091.Connection, bookingQueue, otpQueue string, logger *zap.Logger) (contracts.Notifier, error) {
	channel, err := rabbitMQConnection.Channel()
	if err != nil {
		return nil, err
	}

	for _, queue := range []string{bookingQueue, otpQueue} {
		_, err = channel.QueueDeclare(queue, true, false, false, false, nil)
		if err != nil {
			return nil, err
		}
	}

	return &notifierService{
		Channel:      channel,
		BookingQueue: bookingQueue,
		OTPQueue:     otpQueue,
		Logger:       logger,
	}, nil
}

func (s *notifierService) PublishBookingConfirmed(ctx context.Context, payload interface{}) error {
	return s.publish(ctx, s.BookingQueue, payload)
}

func (s *notifierService) PublishOTPRequested(ctx context.Context, payload interface{}) error {
	return s.publish(ctx, s.OTPQueue, payload)
}

func (s *notifierService) publish(ctx context.Context, queue string, payload interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	headers := amqp091.Table{
		"message_type":     "JSON",
		"requeue_strategy": "DROP",
	}

	message := amqp091.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp091.Persistent,
		Priority:     0,
		Headers:      headers,
	}

	err = s.Channel.PublishWithContext(ctx, "", queue, false, false, message)
	if err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err, queue)
	}

	s.Logger.Debug("published message",
		zap.String(constvars.LoggingQueueKey, queue),
	)
	return nil
}
