package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tucasahr/hr-apigateway/internal/domain"
	"github.com/tucasahr/hr-apigateway/internal/service"
	"github.com/tucasahr/hr-apigateway/internal/service/serviceutils"
)

type memTimeRecordRepo struct {
	records []domain.RawTimeRecord
}

func (m *memTimeRecordRepo) List(ctx context.Context) ([]domain.RawTimeRecord, error) {
	return m.records, nil
}

func (m *memTimeRecordRepo) ListRange(ctx context.Context, fromDate, toDate string) ([]domain.RawTimeRecord, error) {
	var out []domain.RawTimeRecord
	for _, rec := range m.records {
		if rec.Date >= fromDate && rec.Date <= toDate {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (m *memTimeRecordRepo) UpsertDay(ctx context.Context, rec *domain.RawTimeRecord) error {
	for i := range m.records {
		if m.records[i].Date == rec.Date && m.records[i].EmployeeID == rec.EmployeeID {
			m.records[i] = *rec
			return nil
		}
	}
	m.records = append(m.records, *rec)
	return nil
}

func submitRequest(t *testing.T, body string) (*httptest.ResponseRecorder, echo.Context) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/times/submit", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return rec, e.NewContext(req, rec)
}

func TestHandleSubmit(t *testing.T) {
	repo := &memTimeRecordRepo{}
	h := NewTimesheetHandler(service.NewTimesheetService(repo, nil))

	rec, c := submitRequest(t, `{"2024-07-01": {"e-001": {"entryTime": "08:00", "overtimeHours": 1}}}`)
	require.NoError(t, h.HandleSubmit(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp serviceutils.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	require.Len(t, repo.records, 1)
	assert.Equal(t, "2024-07-01", repo.records[0].Date)
	require.NotNil(t, repo.records[0].OvertimeHours)
	assert.Equal(t, 1.0, *repo.records[0].OvertimeHours)
}

func TestHandleSubmitUnknownField(t *testing.T) {
	repo := &memTimeRecordRepo{}
	h := NewTimesheetHandler(service.NewTimesheetService(repo, nil))

	rec, c := submitRequest(t, `{"2024-07-01": {"e-001": {"lunchHours": 1}}}`)
	require.NoError(t, h.HandleSubmit(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, repo.records)
}

func TestHandleSubmitEmptyPayload(t *testing.T) {
	h := NewTimesheetHandler(service.NewTimesheetService(&memTimeRecordRepo{}, nil))

	rec, c := submitRequest(t, `{}`)
	require.NoError(t, h.HandleSubmit(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleListRequiresBothBounds(t *testing.T) {
	h := NewTimesheetHandler(service.NewTimesheetService(&memTimeRecordRepo{}, nil))

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/times?from=2024-07-01", nil)
	rec := httptest.NewRecorder()
	require.NoError(t, h.HandleList(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
