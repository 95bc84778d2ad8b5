package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"estatecrm/models"
	"estatecrm/services"
	"estatecrm/utils"
)

type ProjectHandler struct {
	service *services.ProjectService
}

func NewProjectHandler(service *services.ProjectService) *ProjectHandler {
	return &ProjectHandler{service: service}
}

func (h *ProjectHandler) List(c echo.Context) error {
	q := services.ProjectQuery{
		Search:      c.QueryParam("search"),
		Status:      c.QueryParam("project_status"),
		DeveloperID: c.QueryParam("developerId"),
		LocationID:  c.QueryParam("locationId"),
		Featured:    c.QueryParam("featured"),
		Active:      c.QueryParam("active"),
		MinPrice:    c.QueryParam("minPrice"),
		MaxPrice:    c.QueryParam("maxPrice"),
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

func (h *ProjectHandler) Get(c echo.Context) error {
	project, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return utils.OK(c, http.StatusOK, project)
}

func (h *ProjectHandler) Create(c echo.Context) error {
	var req models.CreateProjectRequest
	if err := c.Bind(&req); err != nil {
		return utils.NewBadRequest("Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	project, err := h.service.Create(c.Request().Context(), &req)
	if err != nil {
		return err
	}
	return utils.OK(c, http.StatusCreated, project)
}

func (h *ProjectHandler) BulkCreate(c echo.Context) error {
	var req models.BulkCreateProjectsRequest
	if err := c.Bind(&req); err != nil {
		return utils.NewBadRequest("Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	projects, err := h.service.BulkCreate(c.Request().Context(), &req)
	if err != nil {
		return err
	}
	return utils.OK(c, http.StatusCreated, projects)
}

func (h *ProjectHandler) Update(c echo.Context) error {
	var req models.UpdateProjectRequest
	if err := c.Bind(&req); err != nil {
		return utils.NewBadRequest("Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	project, err := h.service.Update(c.Request().Context(), c.Param("id"), &req)
	if err != nil {
		return err
	}
	return utils.OK(c, http.StatusOK, project)
}

func (h *ProjectHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return utils.OKMessage(c, http.StatusOK, "Project deleted successfully")
}
