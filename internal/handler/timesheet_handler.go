package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tucasahr/hr-apigateway/internal/service"
	"github.com/tucasahr/hr-apigateway/internal/service/serviceutils"
	"github.com/tucasahr/hr-apigateway/internal/timesheet"
)

// TimesheetHandler serves the raw time record endpoints.
type TimesheetHandler struct {
	timesheetService *service.TimesheetService
}

// NewTimesheetHandler creates a new TimesheetHandler instance
func NewTimesheetHandler(timesheetService *service.TimesheetService) *TimesheetHandler {
	return &TimesheetHandler{timesheetService: timesheetService}
}

// HandleList returns raw time records, optionally bounded by ?from= and ?to=
// ISO dates (inclusive).
func (h *TimesheetHandler) HandleList(c echo.Context) error {
	from := c.QueryParam("from")
	to := c.QueryParam("to")
	if (from == "") != (to == "") {
		return serviceutils.ResponseError(c, http.StatusBadRequest, "from and to must be given together", nil)
	}

	records, err := h.timesheetService.Records(c.Request().Context(), from, to)
	if err != nil {
		return serviceutils.ResponseError(c, http.StatusInternalServerError, "failed to list time records", err)
	}
	return serviceutils.ResponseSuccess(c, http.StatusOK, "time records retrieved", records)
}

// HandleSubmit persists edited time sheet days. The body maps ISO date to
// employee id to field values:
//
//	{"2024-07-01": {"e-104": {"entryTime": "08:00", "overtimeHours": 1}}}
func (h *TimesheetHandler) HandleSubmit(c echo.Context) error {
	var payload map[string]service.DayPatch
	if err := c.Bind(&payload); err != nil {
		return serviceutils.ResponseError(c, http.StatusBadRequest, "invalid submit payload", err)
	}
	if len(payload) == 0 {
		return serviceutils.ResponseError(c, http.StatusBadRequest, "submit payload is empty", nil)
	}

	ctx := c.Request().Context()
	for date, patch := range payload {
		if err := h.timesheetService.SubmitDay(ctx, date, patch); err != nil {
			if errors.Is(err, timesheet.ErrUnknownField) {
				return serviceutils.ResponseError(c, http.StatusBadRequest, "unknown time sheet field", err)
			}
			return serviceutils.ResponseError(c, http.StatusInternalServerError, "failed to submit time records", err)
		}
	}
	return serviceutils.ResponseSuccess(c, http.StatusOK, "time records submitted", nil)
}
