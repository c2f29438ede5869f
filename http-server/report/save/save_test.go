package save

import (
	"context"
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

type MockReportSaver struct {
	mock.Mock
}

func (m *MockReportSaver) SaveReport(ctx context.Context, details storage.ReportDetails) (int64, bool, error) {
	args := m.Called(ctx, details)
	return args.Get(0).(int64), args.Bool(1), args.Error(2)
}

func reportBody() string {
	return `{"order_id":7,"actual_quantity":95,"bubble_count":2,"underfill_count":1,"inclusion_count":0,
	         "actual_start_time":"2024-01-01T08:05","actual_end_time":"2024-01-01T15:50"}`
}

func TestSaveReport_Created(t *testing.T) {
	mockStorage := new(MockReportSaver)
	mockStorage.On("SaveReport", mock.Anything, mock.MatchedBy(func(d storage.ReportDetails) bool {
		// итоговый брак пересчитан из счетчиков
		return d.OrderID == 7 && d.DefectCount == 3
	})).Return(int64(1), true, nil)

	handler := SaveReport(slog.Default(), mockStorage)

	req := httptest.NewRequest(http.MethodPost, "/api/report", strings.NewReader(reportBody()))
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp Response
	err := render.DecodeJSON(strings.NewReader(rr.Body.String()), &resp)
	require.NoError(t, err)

	assert.True(t, resp.Success)
	assert.True(t, resp.Created)
	assert.Contains(t, resp.Message, "сохранен")

	mockStorage.AssertExpectations(t)
}

func TestSaveReport_Updated(t *testing.T) {
	mockStorage := new(MockReportSaver)
	mockStorage.On("SaveReport", mock.Anything, mock.Anything).
		Return(int64(1), false, nil)

	handler := SaveReport(slog.Default(), mockStorage)

	req := httptest.NewRequest(http.MethodPost, "/api/report", strings.NewReader(reportBody()))
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp Response
	err := render.DecodeJSON(strings.NewReader(rr.Body.String()), &resp)
	require.NoError(t, err)

	assert.True(t, resp.Success)
	assert.False(t, resp.Created)
	assert.Contains(t, resp.Message, "обновлен")
}

// Присланный клиентом defect_count игнорируется
func TestSaveReport_ClientDefectCountIgnored(t *testing.T) {
	mockStorage := new(MockReportSaver)
	mockStorage.On("SaveReport", mock.Anything, mock.MatchedBy(func(d storage.ReportDetails) bool {
		return d.DefectCount == 3
	})).Return(int64(1), true, nil)

	handler := SaveReport(slog.Default(), mockStorage)

	body := `{"order_id":7,"actual_quantity":95,"bubble_count":2,"underfill_count":1,"inclusion_count":0,
	         "defect_count":999,
	         "actual_start_time":"2024-01-01T08:05","actual_end_time":"2024-01-01T15:50"}`
	req := httptest.NewRequest(http.MethodPost, "/api/report", strings.NewReader(body))
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	mockStorage.AssertExpectations(t)
}

func TestSaveReport_OrderNotFound(t *testing.T) {
	mockStorage := new(MockReportSaver)
	mockStorage.On("SaveReport", mock.Anything, mock.Anything).
		Return(int64(0), false, storage.ErrOrderNotFound)

	handler := SaveReport(slog.Default(), mockStorage)

	req := httptest.NewRequest(http.MethodPost, "/api/report", strings.NewReader(reportBody()))
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)

	var resp Response
	err := render.DecodeJSON(strings.NewReader(rr.Body.String()), &resp)
	require.NoError(t, err)
	assert.Equal(t, "Заказ не найден", resp.Error)
}

func TestSaveReport_ValidationError(t *testing.T) {
	mockStorage := new(MockReportSaver)
	handler := SaveReport(slog.Default(), mockStorage)

	body := `{"order_id":7,"actual_quantity":0,
	         "actual_start_time":"2024-01-01T08:05","actual_end_time":"2024-01-01T15:50"}`
	req := httptest.NewRequest(http.MethodPost, "/api/report", strings.NewReader(body))
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	mockStorage.AssertNotCalled(t, "SaveReport", mock.Anything, mock.Anything)
}
