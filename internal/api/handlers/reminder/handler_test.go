package reminder

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	mocks "github.com/aliskhannn/plant-care/internal/mocks/api/handlers/reminder"
	"github.com/aliskhannn/plant-care/internal/model"
	"github.com/aliskhannn/plant-care/internal/repository/delivery"
	"github.com/aliskhannn/plant-care/internal/service/care"
)

func setupHandler(t *testing.T) (*Handler, *mocks.MockreminderService) {
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockreminderService(ctrl)
	return NewHandler(mockService), mockService
}

func newContext(method string, id string) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, "/api/reminders/"+id, nil)
	c.Params = gin.Params{{Key: "id", Value: id}}
	return c, w
}

func TestHandler_Acknowledge(t *testing.T) {
	id := uuid.New()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"ok", nil, http.StatusOK},
		{"not found", delivery.ErrDeliveryNotFound, http.StatusNotFound},
		{"expired", care.ErrExpiredDelivery, http.StatusConflict},
		{"already handled", care.ErrNotActionable, http.StatusConflict},
		{"internal", assert.AnError, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, mockService := setupHandler(t)
			c, w := newContext(http.MethodPost, id.String())

			mockService.EXPECT().AcknowledgeReminder(gomock.Any(), id).Return(model.CareEvent{}, tt.err)

			handler.Acknowledge(c)

			assert.Equal(t, tt.want, w.Result().StatusCode)
		})
	}
}

func TestHandler_Acknowledge_InvalidID(t *testing.T) {
	handler, _ := setupHandler(t)
	c, w := newContext(http.MethodPost, "not-a-uuid")

	handler.Acknowledge(c)

	assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode)
}

func TestHandler_Snooze_Success(t *testing.T) {
	handler, mockService := setupHandler(t)
	id := uuid.New()
	c, w := newContext(http.MethodPost, id.String())

	remindAt := time.Date(2024, 3, 9, 9, 0, 0, 0, time.UTC)
	mockService.EXPECT().
		SnoozeReminder(gomock.Any(), id).
		Return(care.Snoozed{Delivery: model.ReminderDelivery{ID: id, Status: model.StatusSnoozed}, RemindAt: remindAt}, nil)

	handler.Snooze(c)

	assert.Equal(t, http.StatusOK, w.Result().StatusCode)
	assert.Contains(t, w.Body.String(), `"remind_at":"2024-03-09T09:00:00Z"`)
}

func TestHandler_Snooze_LimitReached(t *testing.T) {
	handler, mockService := setupHandler(t)
	id := uuid.New()
	c, w := newContext(http.MethodPost, id.String())

	mockService.EXPECT().SnoozeReminder(gomock.Any(), id).Return(care.Snoozed{}, care.ErrSnoozeLimitReached)

	handler.Snooze(c)

	assert.Equal(t, http.StatusConflict, w.Result().StatusCode)
}

func TestHandler_GetStatus_Success(t *testing.T) {
	handler, mockService := setupHandler(t)
	id := uuid.New()
	c, w := newContext(http.MethodGet, id.String())

	mockService.EXPECT().GetDeliveryStatus(gomock.Any(), id).Return(model.StatusSent, nil)

	handler.GetStatus(c)

	assert.Equal(t, http.StatusOK, w.Result().StatusCode)
	assert.Contains(t, w.Body.String(), string(model.StatusSent))
}
