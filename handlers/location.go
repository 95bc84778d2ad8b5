package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"estatecrm/models"
	"estatecrm/services"
	"estatecrm/utils"
)

type LocationHandler struct {
	service *services.LocationService
}

func NewLocationHandler(service *services.LocationService) *LocationHandler {
	return &LocationHandler{service: service}
}

func (h *LocationHandler) List(c echo.Context) error {
	q := services.LocationQuery{
		Search:   c.QueryParam("search"),
		Featured: c.QueryParam("featured"),
		Active:   c.QueryParam("active"),
		Page:     c.QueryParam("page"),
		Limit:    c.QueryParam("limit"),
		Sort:     c.QueryParam("sort"),
	}

	page, err := h.service.List(c.Request().Context(), q)
	if err != nil {
		return err
	}
	return utils.OK(c, http.StatusOK, page)
}

func (h *LocationHandler) Search(c echo.Context) error {
	result, err := h.service.SearchCities(c.Request().Context(), c.QueryParam("q"), c.QueryParam("limit"))
	if err != nil {
		return err
	}
	return utils.OK(c, http.StatusOK, result)
}

func (h *LocationHandler) Get(c echo.Context) error {
	location, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return utils.OK(c, http.StatusOK, location)
}

func (h *LocationHandler) Create(c echo.Context) error {
	var req models.CreateLocationRequest
	if err := c.Bind(&req); err != nil {
		return utils.NewBadRequest("Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	location, err := h.service.Create(c.Request().Context(), &req)
	if err != nil {
		return err
	}
	return utils.OK(c, http.StatusCreated, location)
}

func (h *LocationHandler) Update(c echo.Context) error {
	var req models.UpdateLocationRequest
	if err := c.Bind(&req); err != nil {
		return utils.NewBadRequest("Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	location, err := h.service.Update(c.Request().Context(), c.Param("id"), &req)
	if err != nil {
		return err
	}
	return utils.OK(c, http.StatusOK, location)
}

func (h *LocationHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return utils.OKMessage(c, http.StatusOK, "Location deleted successfully")
}
