package worker

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/plant-care/internal/model"
)

//go:generate mockgen -source=notifier.go -destination=../mocks/worker/mock.go -package=mocks
type batchConsumer interface {
	Consume(ctx context.Context, out chan<- model.ReminderBatch, strategy retry.Strategy) error
}

type messageHandler interface {
	HandleMessage(ctx context.Context, batch model.ReminderBatch)
}

type statusReader interface {
	GetDeliveryStatus(ctx context.Context, id uuid.UUID) (model.DeliveryStatus, error)
}

// Notifier consumes reminder batches and hands them to a pool of workers.
type Notifier struct {
	queue   batchConsumer
	handler messageHandler
	status  statusReader
}

func NewNotifier(q batchConsumer, h messageHandler, s statusReader) *Notifier {
	return &Notifier{
		queue:   q,
		handler: h,
		status:  s,
	}
}

func (n *Notifier) Run(ctx context.Context, strategy retry.Strategy, workerCount int) {
	var wg sync.WaitGroup
	batches := make(chan model.ReminderBatch, workerCount*10)

	go func() {
		if err := n.queue.Consume(ctx, batches, strategy); err != nil {
			zlog.Logger.Error().Err(err).Msg("failed to consume batches")
		}
	}()

	wg.Add(workerCount)
	for i := 0; i < workerCount; i++ {
		go func(id int) {
			defer wg.Done()

			log := zlog.Logger.With().Int("worker", id).Logger()
			log.Info().Msg("worker started")

			for {
				select {
				case <-ctx.Done():
					log.Info().Msg("worker shutting down")
					return
				case batch, ok := <-batches:
					if !ok {
						log.Info().Msg("channel closed, shutting down")
						return
					}

					batch.Items = n.stillSent(ctx, batch.Items)
					if len(batch.Items) == 0 {
						log.Debug().Int64("user_id", batch.UserID).Msg("batch resolved before delivery, skipping")
						continue
					}

					n.handler.HandleMessage(ctx, batch)
				}
			}
		}(i)
	}

	<-ctx.Done()
	wg.Wait()
	zlog.Logger.Info().Msg("notifier stopped")
}

// stillSent drops items the user already answered or that were cancelled
// while the batch waited in the queue.
func (n *Notifier) stillSent(ctx context.Context, items []model.ReminderItem) []model.ReminderItem {
	kept := items[:0]
	for _, item := range items {
		status, err := n.status.GetDeliveryStatus(ctx, item.DeliveryID)
		if err != nil {
			zlog.Logger.Error().Err(err).Str("delivery_id", item.DeliveryID.String()).Msg("failed to get delivery status")
			continue
		}

		if status != model.StatusSent {
			zlog.Logger.Info().Str("delivery_id", item.DeliveryID.String()).Str("status", string(status)).Msg("delivery no longer sent, skipping")
			continue
		}

		kept = append(kept, item)
	}

	return kept
}
