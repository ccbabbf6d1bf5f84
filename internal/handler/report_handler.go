package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/tucasahr/hr-apigateway/internal/service"
	"github.com/tucasahr/hr-apigateway/internal/service/serviceutils"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ReportHandler serves the weekly report in JSON, spreadsheet, and document
// form.
type ReportHandler struct {
	reportService *service.ReportService
}

// NewReportHandler creates a new ReportHandler instance
func NewReportHandler(reportService *service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

func weekStartParam(c echo.Context) (time.Time, error) {
	raw := c.QueryParam("weekStart")
	if raw == "" {
		return time.Time{}, fmt.Errorf("weekStart query parameter is required")
	}
	return time.Parse("2006-01-02", raw)
}

// HandleWeekly returns the per-employee report rows for the 7 days starting
// at ?weekStart=, optionally filtered by ?employeeCode=.
func (h *ReportHandler) HandleWeekly(c echo.Context) error {
	weekStart, err := weekStartParam(c)
	if err != nil {
		return serviceutils.ResponseError(c, http.StatusBadRequest, "invalid weekStart date", err)
	}
	rows, days, err := h.reportService.WeeklyRows(c.Request().Context(), weekStart, c.QueryParam("employeeCode"))
	if err != nil {
		return serviceutils.ResponseError(c, http.StatusInternalServerError, "failed to build weekly report", err)
	}
	return serviceutils.ResponseSuccess(c, http.StatusOK, "weekly report built", map[string]interface{}{
		"days": days,
		"rows": rows,
	})
}

// HandleWeeklySheet downloads the weekly report as an xlsx workbook.
func (h *ReportHandler) HandleWeeklySheet(c echo.Context) error {
	weekStart, err := weekStartParam(c)
	if err != nil {
		return serviceutils.ResponseError(c, http.StatusBadRequest, "invalid weekStart date", err)
	}
	data, err := h.reportService.WeeklySheet(c.Request().Context(), weekStart, c.QueryParam("employeeCode"))
	if err != nil {
		return serviceutils.ResponseError(c, http.StatusInternalServerError, "failed to render weekly sheet", err)
	}

	filename := fmt.Sprintf("weekly-report-%s.xlsx", weekStart.Format("2006-01-02"))
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Blob(http.StatusOK, xlsxContentType, data)
}

// HandleWeeklyDocument downloads one employee's weekly time sheet as a PDF.
func (h *ReportHandler) HandleWeeklyDocument(c echo.Context) error {
	weekStart, err := weekStartParam(c)
	if err != nil {
		return serviceutils.ResponseError(c, http.StatusBadRequest, "invalid weekStart date", err)
	}
	employeeID := c.QueryParam("employeeId")
	if employeeID == "" {
		return serviceutils.ResponseError(c, http.StatusBadRequest, "employeeId query parameter is required", nil)
	}
	data, err := h.reportService.WeeklyDocument(c.Request().Context(), weekStart, employeeID)
	if err != nil {
		return serviceutils.ResponseError(c, http.StatusInternalServerError, "failed to render weekly document", err)
	}

	filename := fmt.Sprintf("timesheet-%s-%s.pdf", employeeID, weekStart.Format("2006-01-02"))
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Blob(http.StatusOK, "application/pdf", data)
}
