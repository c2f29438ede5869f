package save

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"vue-production/internal/storage"
)

// MockOrderSaver реализует интерфейс OrderSaver для тестов
type MockOrderSaver struct {
	mock.Mock
}

func (m *MockOrderSaver) SaveOrder(ctx context.Context, details storage.OrderDetails) (int64, error) {
	args := m.Called(ctx, details)
	return args.Get(0).(int64), args.Error(1)
}

func TestSaveOrder_Success(t *testing.T) {
	mockStorage := new(MockOrderSaver)
	mockStorage.On("SaveOrder", mock.Anything, mock.MatchedBy(func(d storage.OrderDetails) bool {
		return d.PartName == "Bracket-A" && d.PlannedQuantity == 100 && d.MachineNumber == 3
	})).Return(int64(12), nil)

	handler := SaveOrder(slog.Default(), mockStorage)

	body := `{"part_name":"Bracket-A","planned_quantity":100,"machine_number":3,
	          "start_time":"2024-01-01T08:00","end_time":"2024-01-01T16:00"}`
	req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(body))
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp Response
	err := render.DecodeJSON(strings.NewReader(rr.Body.String()), &resp)
	require.NoError(t, err)

	assert.True(t, resp.Success)
	require.NotNil(t, resp.Data)
	assert.Equal(t, int64(12), resp.Data.ID)
	assert.Equal(t, "Bracket-A", resp.Data.PartName)
	assert.Equal(t, "2024-01-01 08:00", resp.Data.StartTime)

	mockStorage.AssertExpectations(t)
}

// Невалидный план не должен доходить до хранилища
func TestSaveOrder_ValidationError(t *testing.T) {
	mockStorage := new(MockOrderSaver)
	handler := SaveOrder(slog.Default(), mockStorage)

	body := `{"part_name":"Bracket-A","planned_quantity":100,"machine_number":3,
	          "start_time":"2024-01-01T16:00","end_time":"2024-01-01T08:00"}`
	req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(body))
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)

	var resp Response
	err := render.DecodeJSON(strings.NewReader(rr.Body.String()), &resp)
	require.NoError(t, err)

	assert.False(t, resp.Success)
	assert.Equal(t, "End time должен быть позже start time", resp.Error)

	mockStorage.AssertNotCalled(t, "SaveOrder", mock.Anything, mock.Anything)
}

func TestSaveOrder_BadJSON(t *testing.T) {
	mockStorage := new(MockOrderSaver)
	handler := SaveOrder(slog.Default(), mockStorage)

	req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader("{not json"))
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	mockStorage.AssertNotCalled(t, "SaveOrder", mock.Anything, mock.Anything)
}

func TestSaveOrder_StorageError(t *testing.T) {
	mockStorage := new(MockOrderSaver)
	mockStorage.On("SaveOrder", mock.Anything, mock.Anything).
		Return(int64(0), errors.New("connection refused"))

	handler := SaveOrder(slog.Default(), mockStorage)

	body := `{"part_name":"Bracket-A","planned_quantity":"100","machine_number":"3",
	          "start_time":"2024-01-01T08:00","end_time":"2024-01-01T16:00"}`
	req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(body))
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)

	var resp Response
	err := render.DecodeJSON(strings.NewReader(rr.Body.String()), &resp)
	require.NoError(t, err)
	assert.False(t, resp.Success)
	assert.Equal(t, "Ошибка при сохранении данных", resp.Error)
}
