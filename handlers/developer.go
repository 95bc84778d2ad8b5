package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"estatecrm/models"
	"estatecrm/services"
	"estatecrm/utils"
)

type DeveloperHandler struct {
	service *services.DeveloperService
}

func NewDeveloperHandler(service *services.DeveloperService) *DeveloperHandler {
	return &DeveloperHandler{service: service}
}

func (h *DeveloperHandler) List(c echo.Context) error {
	q := services.DeveloperQuery{
		Search:    c.QueryParam("search"),
		MinRating: c.QueryParam("minRating"),
		Active:    c.QueryParam("active"),
		Page:      c.QueryParam("page"),
		Limit:     c.QueryParam("limit"),
		Sort:      c.QueryParam("sort"),
	}

	page, err := h.service.List(c.Request().Context(), q)
	if err != nil {
		return err
	}
	return utils.OK(c, http.StatusOK, page)
}

func (h *DeveloperHandler) Get(c echo.Context) error {
	developer, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return utils.OK(c, http.StatusOK, developer)
}

func (h *DeveloperHandler) Create(c echo.Context) error {
	var req models.CreateDeveloperRequest
	if err := c.Bind(&req); err != nil {
		return utils.NewBadRequest("Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	developer, err := h.service.Create(c.Request().Context(), &req)
	if err != nil {
		return err
	}
	return utils.OK(c, http.StatusCreated, developer)
}

func (h *DeveloperHandler) Update(c echo.Context) error {
	var req models.UpdateDeveloperRequest
	if err := c.Bind(&req); err != nil {
		return utils.NewBadRequest("Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	developer, err := h.service.Update(c.Request().Context(), c.Param("id"), &req)
	if err != nil {
		return err
	}
	return utils.OK(c, http.StatusOK, developer)
}

func (h *DeveloperHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return utils.OKMessage(c, http.StatusOK, "Developer deleted successfully")
}
