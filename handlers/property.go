package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"estatecrm/models"
	"estatecrm/services"
	"estatecrm/utils"
)

type PropertyHandler struct {
	service *services.PropertyService
}

func NewPropertyHandler(service *services.PropertyService) *PropertyHandler {
	return &PropertyHandler{service: service}
}

func (h *PropertyHandler) List(c echo.Context) error {
	q := services.PropertyQuery{
		Search:      c.QueryParam("search"),
		Type:        c.QueryParam("propertyType"),
		Status:      c.QueryParam("status"),
		LocationID:  c.QueryParam("locationId"),
		DeveloperID: c.QueryParam("developerId"),
		Featured:    c.QueryParam("featured"),
		Active:      c.QueryParam("active"),
		MinPrice:    c.QueryParam("minPrice"),
		MaxPrice:    c.QueryParam("maxPrice"),
		MinArea:     c.QueryParam("minArea"),
		MaxArea:     c.QueryParam("maxArea"),
		Page:        c.QueryParam("page"),
		Limit:       c.QueryParam("limit"),
		Sort:        c.QueryParam("sort"),
	}

	page, err := h.service.List(c.Request().Context(), q)
	if err != nil {
		return err
	}
	return utils.OK(c, http.StatusOK, page)
}

func (h *PropertyHandler) Featured(c echo.Context) error {
	properties, err := h.service.Featured(c.Request().Context(), c.QueryParam("limit"))
	if err != nil {
		return err
	}
	return utils.OK(c, http.StatusOK, properties)
}

func (h *PropertyHandler) Search(c echo.Context) error {
	term := c.QueryParam("q")
	if term == "" {
		return utils.NewBadRequest("Query parameter 'q' is required")
	}

	page, err := h.service.Search(c.Request().Context(), term, c.QueryParam("page"), c.QueryParam("limit"))
	if err != nil {
		return err
	}
	return utils.OK(c, http.StatusOK, page)
}

func (h *PropertyHandler) Get(c echo.Context) error {
	property, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return utils.OK(c, http.StatusOK, property)
}

func (h *PropertyHandler) Create(c echo.Context) error {
	var req models.CreatePropertyRequest
	if err := c.Bind(&req); err != nil {
		return utils.NewBadRequest("Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	property, err := h.service.Create(c.Request().Context(), &req)
	if err != nil {
		return err
	}
	return utils.OK(c, http.StatusCreated, property)
}

func (h *PropertyHandler) Update(c echo.Context) error {
	var req models.UpdatePropertyRequest
	if err := c.Bind(&req); err != nil {
		return utils.NewBadRequest("Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	property, err := h.service.Update(c.Request().Context(), c.Param("id"), &req)
	if err != nil {
		return err
	}
	return utils.OK(c, http.StatusOK, property)
}

func (h *PropertyHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return utils.OKMessage(c, http.StatusOK, "Property deleted successfully")
}
