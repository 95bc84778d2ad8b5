package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"estatecrm/models"
	"estatecrm/services"
	"estatecrm/utils"
)

type CustomerHandler struct {
	service *services.CustomerService
}

func NewCustomerHandler(service *services.CustomerService) *CustomerHandler {
	return &CustomerHandler{service: service}
}

func (h *CustomerHandler) List(c echo.Context) error {
	q := services.CustomerQuery{
		Search: c.QueryParam("search"),
		Status: c.QueryParam("status"),
		Page:   c.QueryParam("page"),
		Limit:  c.QueryParam("limit"),
		Sort:   c.QueryParam("sort"),
	}

	page, err := h.service.List(c.Request().Context(), q)
	if err != nil {
		return err
	}
	return utils.OK(c, http.StatusOK, page)
}

func (h *CustomerHandler) Get(c echo.Context) error {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return utils.NewBadRequest("Invalid customer id")
	}

	customer, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return utils.OK(c, http.StatusOK, customer)
}

func (h *CustomerHandler) UpdateStatus(c echo.Context) error {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return utils.NewBadRequest("Invalid customer id")
	}

	var req models.UpdateCustomerStatusRequest
	if err := c.Bind(&req); err != nil {
		return utils.NewBadRequest("Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	customer, err := h.service.UpdateStatus(c.Request().Context(), id, models.CustomerStatus(req.Status))
	if err != nil {
		return err
	}
	return utils.OK(c, http.StatusOK, customer)
}
