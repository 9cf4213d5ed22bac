package plant

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/aliskhannn/plant-care/internal/api/dto"
	mocks "github.com/aliskhannn/plant-care/internal/mocks/api/handlers/plant"
	"github.com/aliskhannn/plant-care/internal/model"
	plantrepo "github.com/aliskhannn/plant-care/internal/repository/plant"
	"github.com/aliskhannn/plant-care/internal/schedule"
	"github.com/aliskhannn/plant-care/internal/service/care"
)

func setupHandler(t *testing.T) (*Handler, *mocks.MockcareService) {
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockcareService(ctrl)
	handler := NewHandler(mockService, validator.New())
	return handler, mockService
}

func newContext(method, target string, body interface{}) (*gin.Context, *httptest.ResponseRecorder) {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, target, &buf)
	return c, w
}

func TestHandler_Register_Success(t *testing.T) {
	handler, mockService := setupHandler(t)

	interval := 7
	req := dto.RegisterPlantRequest{
		Species:          "Ficus",
		AcquiredAt:       "2024-03-01T09:00:00Z",
		WateringInterval: &interval,
	}

	c, w := newContext(http.MethodPost, "/api/users/42/plants", req)
	c.Params = gin.Params{{Key: "user_id", Value: "42"}}

	mockService.EXPECT().
		RegisterPlant(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, r care.Registration) (model.Plant, error) {
			assert.Equal(t, int64(42), r.UserID)
			assert.Equal(t, "Ficus", r.Species)
			assert.Equal(t, &interval, r.WateringInterval)
			assert.True(t, r.AcquiredAt.Equal(time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)))
			return model.Plant{ID: uuid.New(), UserID: 42, Species: "Ficus"}, nil
		})

	handler.Register(c)

	assert.Equal(t, http.StatusCreated, w.Result().StatusCode)
}

func TestHandler_Register_ValidationError(t *testing.T) {
	handler, _ := setupHandler(t)

	zero := 0
	c, w := newContext(http.MethodPost, "/api/users/42/plants", dto.RegisterPlantRequest{
		Species:          "Ficus",
		WateringInterval: &zero,
	})
	c.Params = gin.Params{{Key: "user_id", Value: "42"}}

	handler.Register(c)

	assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode)
}

func TestHandler_Register_InvalidUserID(t *testing.T) {
	handler, _ := setupHandler(t)

	c, w := newContext(http.MethodPost, "/api/users/abc/plants", dto.RegisterPlantRequest{Species: "Ficus"})
	c.Params = gin.Params{{Key: "user_id", Value: "abc"}}

	handler.Register(c)

	assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode)
}

func TestHandler_Register_InvalidSchedule(t *testing.T) {
	handler, mockService := setupHandler(t)

	c, w := newContext(http.MethodPost, "/api/users/42/plants", dto.RegisterPlantRequest{Species: "Ficus"})
	c.Params = gin.Params{{Key: "user_id", Value: "42"}}

	mockService.EXPECT().
		RegisterPlant(gomock.Any(), gomock.Any()).
		Return(model.Plant{}, schedule.ErrInvalidScheduleConfig)

	handler.Register(c)

	assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode)
}

func TestHandler_Get_NotFound(t *testing.T) {
	handler, mockService := setupHandler(t)
	id := uuid.New()

	c, w := newContext(http.MethodGet, "/api/plants/"+id.String(), nil)
	c.Params = gin.Params{{Key: "id", Value: id.String()}}

	mockService.EXPECT().PlantView(gomock.Any(), id).Return(model.PlantView{}, plantrepo.ErrUnknownPlant)

	handler.Get(c)

	assert.Equal(t, http.StatusNotFound, w.Result().StatusCode)
}

func TestHandler_Get_InvalidID(t *testing.T) {
	handler, _ := setupHandler(t)

	c, w := newContext(http.MethodGet, "/api/plants/nope", nil)
	c.Params = gin.Params{{Key: "id", Value: "nope"}}

	handler.Get(c)

	assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode)
}

func TestHandler_List_Success(t *testing.T) {
	handler, mockService := setupHandler(t)

	c, w := newContext(http.MethodGet, "/api/users/7/plants", nil)
	c.Params = gin.Params{{Key: "user_id", Value: "7"}}

	mockService.EXPECT().ListPlantViews(gomock.Any(), int64(7)).Return([]model.PlantView{{}}, nil)

	handler.List(c)

	assert.Equal(t, http.StatusOK, w.Result().StatusCode)
}

func TestHandler_Update_Archived(t *testing.T) {
	handler, mockService := setupHandler(t)
	id := uuid.New()

	c, w := newContext(http.MethodPut, "/api/plants/"+id.String(), dto.UpdatePlantRequest{Species: "Ficus"})
	c.Params = gin.Params{{Key: "id", Value: id.String()}}

	mockService.EXPECT().
		UpdateCareProfile(gomock.Any(), id, care.CareProfile{Species: "Ficus"}).
		Return(model.Plant{}, plantrepo.ErrPlantArchived)

	handler.Update(c)

	assert.Equal(t, http.StatusConflict, w.Result().StatusCode)
}

func TestHandler_Archive_Success(t *testing.T) {
	handler, mockService := setupHandler(t)
	id := uuid.New()

	c, w := newContext(http.MethodDelete, "/api/plants/"+id.String(), nil)
	c.Params = gin.Params{{Key: "id", Value: id.String()}}

	mockService.EXPECT().ArchivePlant(gomock.Any(), id).Return(nil)

	handler.Archive(c)

	assert.Equal(t, http.StatusOK, w.Result().StatusCode)
}

func TestHandler_RecordAction(t *testing.T) {
	id := uuid.New()

	t.Run("created", func(t *testing.T) {
		handler, mockService := setupHandler(t)

		c, w := newContext(http.MethodPost, "/api/plants/"+id.String()+"/events", dto.CareActionRequest{Kind: "water", Note: "soaked"})
		c.Params = gin.Params{{Key: "id", Value: id.String()}}

		mockService.EXPECT().
			RecordCareAction(gomock.Any(), care.Action{PlantID: id, Kind: model.ActionWater, Note: "soaked"}).
			Return(model.CareEvent{ID: uuid.New(), PlantID: id, Kind: model.ActionWater}, nil)

		handler.RecordAction(c)

		assert.Equal(t, http.StatusCreated, w.Result().StatusCode)
	})

	t.Run("unknown kind", func(t *testing.T) {
		handler, _ := setupHandler(t)

		c, w := newContext(http.MethodPost, "/api/plants/"+id.String()+"/events", dto.CareActionRequest{Kind: "prune"})
		c.Params = gin.Params{{Key: "id", Value: id.String()}}

		handler.RecordAction(c)

		assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode)
	})

	t.Run("bad occurred_at", func(t *testing.T) {
		handler, _ := setupHandler(t)

		c, w := newContext(http.MethodPost, "/api/plants/"+id.String()+"/events", map[string]string{
			"kind":        "water",
			"occurred_at": "yesterday",
		})
		c.Params = gin.Params{{Key: "id", Value: id.String()}}

		handler.RecordAction(c)

		assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode)
	})
}
