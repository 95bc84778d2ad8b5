package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"estatecrm/models"
	"estatecrm/services"
	"estatecrm/utils"
)

type LeadHandler struct {
	service *services.LeadService
}

func NewLeadHandler(service *services.LeadService) *LeadHandler {
	return &LeadHandler{service: service}
}

func leadID(c echo.Context) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return primitive.NilObjectID, utils.NewBadRequest("Invalid lead id")
	}
	return id, nil
}

func (h *LeadHandler) List(c echo.Context) error {
	q := services.LeadQuery{
		Search:        c.QueryParam("search"),
		Status:        c.QueryParam("leadStatus"),
		AssignedAgent: c.QueryParam("assignedAgent"),
		Page:          c.QueryParam("page"),
		Limit:         c.QueryParam("limit"),
		Sort:          c.QueryParam("sort"),
	}

	page, err := h.service.List(c.Request().Context(), q)
	if err != nil {
		return err
	}
	return utils.OK(c, http.StatusOK, page)
}

func (h *LeadHandler) Get(c echo.Context) error {
	id, err := leadID(c)
	if err != nil {
		return err
	}

	lead, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return utils.OK(c, http.StatusOK, lead)
}

func (h *LeadHandler) Create(c echo.Context) error {
	var req models.CreateLeadRequest
	if err := c.Bind(&req); err != nil {
		return utils.NewBadRequest("Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	lead, err := h.service.Create(c.Request().Context(), &req)
	if err != nil {
		return err
	}
	return utils.OK(c, http.StatusCreated, lead)
}

func (h *LeadHandler) Update(c echo.Context) error {
	id, err := leadID(c)
	if err != nil {
		return err
	}

	var req models.UpdateLeadRequest
	if err := c.Bind(&req); err != nil {
		return utils.NewBadRequest("Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	lead, err := h.service.Update(c.Request().Context(), id, &req)
	if err != nil {
		return err
	}
	return utils.OK(c, http.StatusOK, lead)
}

func (h *LeadHandler) Delete(c echo.Context) error {
	id, err := leadID(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return utils.OKMessage(c, http.StatusOK, "Lead deleted successfully")
}

func (h *LeadHandler) UpdateStatus(c echo.Context) error {
	id, err := leadID(c)
	if err != nil {
		return err
	}

	var req models.UpdateLeadStatusRequest
	if err := c.Bind(&req); err != nil {
		return utils.NewBadRequest("Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	lead, err := h.service.UpdateStatus(c.Request().Context(), id, models.LeadStatus(req.Status))
	if err != nil {
		return err
	}
	return utils.OK(c, http.StatusOK, lead)
}

func (h *LeadHandler) Assign(c echo.Context) error {
	id, err := leadID(c)
	if err != nil {
		return err
	}

	var req models.AssignLeadRequest
	if err := c.Bind(&req); err != nil {
		return utils.NewBadRequest("Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	agentID, err := primitive.ObjectIDFromHex(req.AgentID)
	if err != nil {
		return utils.NewBadRequest("Invalid agent id")
	}

	lead, err := h.service.Assign(c.Request().Context(), id, agentID)
	if err != nil {
		return err
	}
	return utils.OK(c, http.StatusOK, lead)
}

func (h *LeadHandler) Convert(c echo.Context) error {
	id, err := leadID(c)
	if err != nil {
		return err
	}

	customer, err := h.service.Convert(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return utils.OK(c, http.StatusCreated, customer)
}
