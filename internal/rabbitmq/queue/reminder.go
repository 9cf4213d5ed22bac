package queue

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/wb-go/wbf/rabbitmq"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/plant-care/internal/config"
	"github.com/aliskhannn/plant-care/internal/model"
)

// ReminderQueue carries reminder batches from the dispatcher to the senders.
// It implements notify.Channel, so a dispatcher in queue mode treats a
// successful publish as the hand-off.
type ReminderQueue struct {
	Publisher  *rabbitmq.Publisher
	Consumer   *rabbitmq.Consumer
	routingKey string
	strategy   retry.Strategy
}

// NewReminderQueue declares the exchange, the main queue with its retry queue
// and dead-letter queue, and binds them.
func NewReminderQueue(ch *rabbitmq.Channel, cfg *config.Config) (*ReminderQueue, error) {
	rc := cfg.RabbitMQ

	exchange := rabbitmq.NewExchange(rc.Exchange, "direct")
	if err := exchange.BindToChannel(ch); err != nil {
		return nil, fmt.Errorf("failed to bind to exchange: %w", err)
	}

	qm := rabbitmq.NewQueueManager(ch)

	_, err := qm.DeclareQueue(rc.DLQ, rabbitmq.QueueConfig{Durable: true})
	if err != nil {
		return nil, fmt.Errorf("failed to declare DLQ queue: %w", err)
	}

	retryArgs := map[string]interface{}{
		"x-dead-letter-exchange":    "",
		"x-dead-letter-routing-key": rc.Queue,
		"x-message-ttl":             int32(rc.RetryTTL.Milliseconds()),
	}

	_, err = qm.DeclareQueue(rc.RetryQueue, rabbitmq.QueueConfig{
		Durable: true,
		Args:    retryArgs,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to declare retry queue: %w", err)
	}

	mainArgs := map[string]interface{}{
		"x-dead-letter-exchange":    "",
		"x-dead-letter-routing-key": rc.DLQ,
	}

	mainQ, err := qm.DeclareQueue(rc.Queue, rabbitmq.QueueConfig{
		Durable: true,
		Args:    mainArgs,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to declare main queue: %w", err)
	}

	if err := ch.QueueBind(mainQ.Name, rc.RoutingKey, exchange.Name(), false, nil); err != nil {
		return nil, fmt.Errorf("failed to bind the exchange to the main queue: %w", err)
	}

	pub := rabbitmq.NewPublisher(ch, exchange.Name())
	cons := rabbitmq.NewConsumer(ch, rabbitmq.NewConsumerConfig(mainQ.Name))

	return &ReminderQueue{
		Publisher:  pub,
		Consumer:   cons,
		routingKey: rc.RoutingKey,
		strategy:   cfg.Retry,
	}, nil
}

// Publish puts one batch on the exchange.
func (q *ReminderQueue) Publish(batch model.ReminderBatch, strategy retry.Strategy) error {
	body, err := json.Marshal(batch)
	if err != nil {
		return fmt.Errorf("failed to marshal batch: %w", err)
	}

	return q.Publisher.PublishWithRetry(body, q.routingKey, "application/json", strategy)
}

// SendReminder publishes the batch with the queue's retry strategy.
func (q *ReminderQueue) SendReminder(ctx context.Context, batch model.ReminderBatch) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return q.Publish(batch, q.strategy)
}

// Consume decodes batches from the main queue into out until ctx is done.
func (q *ReminderQueue) Consume(ctx context.Context, out chan<- model.ReminderBatch, strategy retry.Strategy) error {
	msgChan := make(chan []byte)

	go func() {
		for m := range msgChan {
			var batch model.ReminderBatch
			if err := json.Unmarshal(m, &batch); err != nil {
				zlog.Logger.Error().Err(err).Msg("failed to unmarshal batch")
				continue
			}

			select {
			case out <- batch:
			case <-ctx.Done():
				return
			}
		}
	}()

	return q.Consumer.ConsumeWithRetry(msgChan, strategy)
}
