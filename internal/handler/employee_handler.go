package handler

import (
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/tucasahr/hr-apigateway/internal/domain"
	"github.com/tucasahr/hr-apigateway/internal/logger"
	"github.com/tucasahr/hr-apigateway/internal/service"
	"github.com/tucasahr/hr-apigateway/internal/service/serviceutils"
)

// EmployeeHandler serves the employee directory endpoints, including the
// profile photo upload.
type EmployeeHandler struct {
	employeeService *service.EmployeeService
	uploadDir       string
}

// NewEmployeeHandler creates a new EmployeeHandler instance
func NewEmployeeHandler(employeeService *service.EmployeeService, uploadDir string) *EmployeeHandler {
	return &EmployeeHandler{employeeService: employeeService, uploadDir: uploadDir}
}

func (h *EmployeeHandler) HandleList(c echo.Context) error {
	var filter domain.EmployeeFilter
	if v := c.QueryParam("departmentId"); v != "" {
		id, err := strconv.Atoi(v)
		if err != nil {
			return serviceutils.ResponseError(c, http.StatusBadRequest, "invalid department filter", err)
		}
		filter.DepartmentID = id
	}
	if v := c.QueryParam("limit"); v != "" {
		filter.Limit, _ = strconv.Atoi(v)
	}
	if v := c.QueryParam("offset"); v != "" {
		filter.Offset, _ = strconv.Atoi(v)
	}

	employees, err := h.employeeService.List(c.Request().Context(), filter)
	if err != nil {
		return serviceutils.ResponseError(c, http.StatusInternalServerError, "failed to list employees", err)
	}
	return serviceutils.ResponseSuccess(c, http.StatusOK, "employees retrieved", employees)
}

func (h *EmployeeHandler) HandleGet(c echo.Context) error {
	employee, err := h.employeeService.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return serviceutils.ResponseError(c, http.StatusNotFound, "employee not found", err)
	}
	return serviceutils.ResponseSuccess(c, http.StatusOK, "employee retrieved", employee)
}

func (h *EmployeeHandler) HandleCreate(c echo.Context) error {
	var employee domain.Employee
	if err := c.Bind(&employee); err != nil {
		return serviceutils.ResponseError(c, http.StatusBadRequest, "invalid employee payload", err)
	}
	if err := h.employeeService.Create(c.Request().Context(), &employee); err != nil {
		return serviceutils.ResponseError(c, http.StatusBadRequest, "failed to create employee", err)
	}
	return serviceutils.ResponseSuccess(c, http.StatusCreated, "employee created", employee)
}

func (h *EmployeeHandler) HandleUpdate(c echo.Context) error {
	var employee domain.Employee
	if err := c.Bind(&employee); err != nil {
		return serviceutils.ResponseError(c, http.StatusBadRequest, "invalid employee payload", err)
	}
	employee.EmployeeID = c.Param("id")
	if err := h.employeeService.Update(c.Request().Context(), &employee); err != nil {
		return serviceutils.ResponseError(c, http.StatusBadRequest, "failed to update employee", err)
	}
	return serviceutils.ResponseSuccess(c, http.StatusOK, "employee updated", employee)
}

func (h *EmployeeHandler) HandleDelete(c echo.Context) error {
	if err := h.employeeService.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return serviceutils.ResponseError(c, http.StatusInternalServerError, "failed to delete employee", err)
	}
	return serviceutils.ResponseSuccess(c, http.StatusOK, "employee deleted", nil)
}

// HandleSaveFile stores an uploaded profile photo under a generated name and
// returns that name for the caller to attach to the employee record.
func (h *EmployeeHandler) HandleSaveFile(c echo.Context) error {
	file, err := c.FormFile("file")
	if err != nil {
		return serviceutils.ResponseError(c, http.StatusBadRequest, "missing file upload", err)
	}
	src, err := file.Open()
	if err != nil {
		return serviceutils.ResponseError(c, http.StatusBadRequest, "unreadable file upload", err)
	}
	defer src.Close()

	if err := os.MkdirAll(h.uploadDir, 0o755); err != nil {
		return serviceutils.ResponseError(c, http.StatusInternalServerError, "failed to prepare upload directory", err)
	}

	name := uuid.NewString() + filepath.Ext(file.Filename)
	dst, err := os.Create(filepath.Join(h.uploadDir, name))
	if err != nil {
		return serviceutils.ResponseError(c, http.StatusInternalServerError, "failed to store file", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return serviceutils.ResponseError(c, http.StatusInternalServerError, "failed to store file", err)
	}

	logger.InfoLog(c.Request().Context(), "stored uploaded photo %s (%d bytes)", name, file.Size)
	return serviceutils.ResponseSuccess(c, http.StatusCreated, "file saved", name)
}
