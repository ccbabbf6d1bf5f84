package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/tucasahr/hr-apigateway/internal/domain"
	"github.com/tucasahr/hr-apigateway/internal/service"
	"github.com/tucasahr/hr-apigateway/internal/service/serviceutils"
)

// DepartmentHandler serves the department CRUD endpoints.
type DepartmentHandler struct {
	departmentService *service.DepartmentService
}

// NewDepartmentHandler creates a new DepartmentHandler instance
func NewDepartmentHandler(departmentService *service.DepartmentService) *DepartmentHandler {
	return &DepartmentHandler{departmentService: departmentService}
}

func (h *DepartmentHandler) HandleList(c echo.Context) error {
	departments, err := h.departmentService.List(c.Request().Context())
	if err != nil {
		return serviceutils.ResponseError(c, http.StatusInternalServerError, "failed to list departments", err)
	}
	return serviceutils.ResponseSuccess(c, http.StatusOK, "departments retrieved", departments)
}

func (h *DepartmentHandler) HandleGet(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return serviceutils.ResponseError(c, http.StatusBadRequest, "invalid department id", err)
	}
	department, err := h.departmentService.Get(c.Request().Context(), id)
	if err != nil {
		return serviceutils.ResponseError(c, http.StatusNotFound, "department not found", err)
	}
	return serviceutils.ResponseSuccess(c, http.StatusOK, "department retrieved", department)
}

func (h *DepartmentHandler) HandleCreate(c echo.Context) error {
	var department domain.Department
	if err := c.Bind(&department); err != nil {
		return serviceutils.ResponseError(c, http.StatusBadRequest, "invalid department payload", err)
	}
	if err := h.departmentService.Create(c.Request().Context(), &department); err != nil {
		return serviceutils.ResponseError(c, http.StatusBadRequest, "failed to create department", err)
	}
	return serviceutils.ResponseSuccess(c, http.StatusCreated, "department created", department)
}

func (h *DepartmentHandler) HandleUpdate(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return serviceutils.ResponseError(c, http.StatusBadRequest, "invalid department id", err)
	}
	var department domain.Department
	if err := c.Bind(&department); err != nil {
		return serviceutils.ResponseError(c, http.StatusBadRequest, "invalid department payload", err)
	}
	department.DepartmentID = id
	if err := h.departmentService.Update(c.Request().Context(), &department); err != nil {
		return serviceutils.ResponseError(c, http.StatusBadRequest, "failed to update department", err)
	}
	return serviceutils.ResponseSuccess(c, http.StatusOK, "department updated", department)
}

func (h *DepartmentHandler) HandleDelete(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return serviceutils.ResponseError(c, http.StatusBadRequest, "invalid department id", err)
	}
	if err := h.departmentService.Delete(c.Request().Context(), id); err != nil {
		return serviceutils.ResponseError(c, http.StatusInternalServerError, "failed to delete department", err)
	}
	return serviceutils.ResponseSuccess(c, http.StatusOK, "department deleted", nil)
}
