package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/tucasahr/hr-apigateway/internal/domain"
	"github.com/tucasahr/hr-apigateway/internal/service"
	"github.com/tucasahr/hr-apigateway/internal/service/serviceutils"
)

// GenderHandler serves the gender reference endpoints.
type GenderHandler struct {
	genderService   *service.GenderService
	employeeService *service.EmployeeService
}

// NewGenderHandler creates a new GenderHandler instance
func NewGenderHandler(genderService *service.GenderService, employeeService *service.EmployeeService) *GenderHandler {
	return &GenderHandler{genderService: genderService, employeeService: employeeService}
}

func (h *GenderHandler) HandleList(c echo.Context) error {
	genders, err := h.genderService.List(c.Request().Context())
	if err != nil {
		return serviceutils.ResponseError(c, http.StatusInternalServerError, "failed to list genders", err)
	}
	return serviceutils.ResponseSuccess(c, http.StatusOK, "genders retrieved", genders)
}

// HandleCount returns the employee headcount per gender.
func (h *GenderHandler) HandleCount(c echo.Context) error {
	counts, err := h.employeeService.GenderCounts(c.Request().Context())
	if err != nil {
		return serviceutils.ResponseError(c, http.StatusInternalServerError, "failed to count employees by gender", err)
	}
	return serviceutils.ResponseSuccess(c, http.StatusOK, "gender counts retrieved", counts)
}

func (h *GenderHandler) HandleGet(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return serviceutils.ResponseError(c, http.StatusBadRequest, "invalid gender id", err)
	}
	gender, err := h.genderService.Get(c.Request().Context(), id)
	if err != nil {
		return serviceutils.ResponseError(c, http.StatusNotFound, "gender not found", err)
	}
	return serviceutils.ResponseSuccess(c, http.StatusOK, "gender retrieved", gender)
}

func (h *GenderHandler) HandleCreate(c echo.Context) error {
	var gender domain.Gender
	if err := c.Bind(&gender); err != nil {
		return serviceutils.ResponseError(c, http.StatusBadRequest, "invalid gender payload", err)
	}
	if err := h.genderService.Create(c.Request().Context(), &gender); err != nil {
		return serviceutils.ResponseError(c, http.StatusBadRequest, "failed to create gender", err)
	}
	return serviceutils.ResponseSuccess(c, http.StatusCreated, "gender created", gender)
}

func (h *GenderHandler) HandleUpdate(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return serviceutils.ResponseError(c, http.StatusBadRequest, "invalid gender id", err)
	}
	var gender domain.Gender
	if err := c.Bind(&gender); err != nil {
		return serviceutils.ResponseError(c, http.StatusBadRequest, "invalid gender payload", err)
	}
	gender.GenderID = id
	if err := h.genderService.Update(c.Request().Context(), &gender); err != nil {
		return serviceutils.ResponseError(c, http.StatusBadRequest, "failed to update gender", err)
	}
	return serviceutils.ResponseSuccess(c, http.StatusOK, "gender updated", gender)
}

func (h *GenderHandler) HandleDelete(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return serviceutils.ResponseError(c, http.StatusBadRequest, "invalid gender id", err)
	}
	if err := h.genderService.Delete(c.Request().Context(), id); err != nil {
		return serviceutils.ResponseError(c, http.StatusInternalServerError, "failed to delete gender", err)
	}
	return serviceutils.ResponseSuccess(c, http.StatusOK, "gender deleted", nil)
}
