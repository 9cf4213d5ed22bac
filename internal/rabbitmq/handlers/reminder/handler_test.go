package reminder

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/retry"

	"github.com/aliskhannn/plant-care/internal/cache"
	cachemocks "github.com/aliskhannn/plant-care/internal/mocks/cache"
	mocks "github.com/aliskhannn/plant-care/internal/mocks/rabbitmq/handlers/reminder"
	"github.com/aliskhannn/plant-care/internal/model"
	"github.com/aliskhannn/plant-care/internal/repository/delivery"
)

func testBatch() model.ReminderBatch {
	return model.ReminderBatch{
		UserID:  42,
		Channel: "telegram",
		Address: "100500",
		Zone:    "UTC",
		Items: []model.ReminderItem{
			{DeliveryID: uuid.New(), Attempt: 1, PlantName: "Fern", Kind: model.ActionWater, DueAt: time.Now()},
			{DeliveryID: uuid.New(), Attempt: 1, PlantName: "Ficus", Kind: model.ActionFeed, DueAt: time.Now()},
		},
	}
}

func TestHandler_HandleMessage_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sender := mocks.NewMockbatchSender(ctrl)
	deliveries := mocks.NewMockdeliveryUpdater(ctrl)
	store := cachemocks.NewMockstore(ctrl)
	h := NewHandler(sender, deliveries, cache.NewStatusCache(store, retry.Strategy{Attempts: 1}))

	batch := testBatch()

	sender.EXPECT().SendReminder(gomock.Any(), batch).Return(nil)

	h.HandleMessage(context.Background(), batch)
}

func TestHandler_HandleMessage_SendFailsThenEscalate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sender := mocks.NewMockbatchSender(ctrl)
	deliveries := mocks.NewMockdeliveryUpdater(ctrl)
	store := cachemocks.NewMockstore(ctrl)
	strategy := retry.Strategy{Attempts: 1, Delay: time.Millisecond}
	h := NewHandler(sender, deliveries, cache.NewStatusCache(store, strategy))

	batch := testBatch()

	// the sender retries on its own, the handler must not repeat the batch
	sender.EXPECT().SendReminder(gomock.Any(), batch).Return(errors.New("bot blocked")).Times(1)
	for _, item := range batch.Items {
		gomock.InOrder(
			deliveries.EXPECT().
				Transition(gomock.Any(), item.DeliveryID, model.StatusSent, model.StatusEscalated, model.EscalationDeliveryFailed, gomock.Any()).
				Return(nil),
			store.EXPECT().
				SetWithRetry(gomock.Any(), strategy, "delivery:"+item.DeliveryID.String(), "escalated").
				Return(nil),
		)
	}

	h.HandleMessage(context.Background(), batch)
}

func TestHandler_HandleMessage_EscalateSkipsAnsweredItems(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sender := mocks.NewMockbatchSender(ctrl)
	deliveries := mocks.NewMockdeliveryUpdater(ctrl)
	store := cachemocks.NewMockstore(ctrl)
	h := NewHandler(sender, deliveries, cache.NewStatusCache(store, retry.Strategy{Attempts: 1}))

	batch := testBatch()

	// neither item is escalated, so the cache is left alone
	sender.EXPECT().SendReminder(gomock.Any(), batch).Return(errors.New("smtp timeout"))
	deliveries.EXPECT().
		Transition(gomock.Any(), batch.Items[0].DeliveryID, model.StatusSent, model.StatusEscalated, model.EscalationDeliveryFailed, gomock.Any()).
		Return(delivery.ErrStaleTransition)
	deliveries.EXPECT().
		Transition(gomock.Any(), batch.Items[1].DeliveryID, model.StatusSent, model.StatusEscalated, model.EscalationDeliveryFailed, gomock.Any()).
		Return(errors.New("db error"))

	h.HandleMessage(context.Background(), batch)
}

func TestHandler_HandleMessage_EscalateWithoutCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sender := mocks.NewMockbatchSender(ctrl)
	deliveries := mocks.NewMockdeliveryUpdater(ctrl)
	h := NewHandler(sender, deliveries, nil)

	batch := testBatch()
	batch.Items = batch.Items[:1]

	sender.EXPECT().SendReminder(gomock.Any(), batch).Return(errors.New("bot blocked"))
	deliveries.EXPECT().
		Transition(gomock.Any(), batch.Items[0].DeliveryID, model.StatusSent, model.StatusEscalated, model.EscalationDeliveryFailed, gomock.Any()).
		Return(nil)

	h.HandleMessage(context.Background(), batch)
}

func TestHandler_HandleMessage_ContextCanceled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sender := mocks.NewMockbatchSender(ctrl)
	deliveries := mocks.NewMockdeliveryUpdater(ctrl)
	h := NewHandler(sender, deliveries, nil)

	batch := testBatch()
	batch.Items = batch.Items[:1]

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// SendReminder is never called
	deliveries.EXPECT().
		Transition(ctx, batch.Items[0].DeliveryID, model.StatusSent, model.StatusEscalated, model.EscalationDeliveryFailed, gomock.Any()).
		Return(nil)

	h.HandleMessage(ctx, batch)
}
