package handlers

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson"

	"estatecrm/models"
	"estatecrm/query"
	"estatecrm/repositories"
	"estatecrm/utils"
)

// MirrorHandler ingests legacy property records as-is. There is no schema
// and no validation beyond "it is a JSON object"; that is the point.
type MirrorHandler struct {
	repo *repositories.MirrorRepository
}

func NewMirrorHandler(repo *repositories.MirrorRepository) *MirrorHandler {
	return &MirrorHandler{repo: repo}
}

func (h *MirrorHandler) Create(c echo.Context) error {
	var doc models.MirrorProperty
	if err := c.Bind(&doc); err != nil {
		return utils.NewBadRequest("Invalid request body")
	}
	// An empty body leaves doc a nil map; writing the id would panic.
	if len(doc) == 0 {
		return utils.NewBadRequest("Request body must be a non-empty JSON object")
	}
	if doc.ID() == "" {
		doc.SetID(uuid.New().String())
	}

	if err := h.repo.Create(c.Request().Context(), doc); err != nil {
		if utils.IsDuplicateKey(err) {
			return utils.NewConflict("Mirror property with this id already exists")
		}
		return utils.NewInternal(err)
	}
	return utils.OK(c, http.StatusCreated, doc)
}

func (h *MirrorHandler) Get(c echo.Context) error {
	doc, err := h.repo.FindByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return utils.NewInternal(err)
	}
	if doc == nil {
		return utils.NewNotFound("Mirror property not found")
	}
	return utils.OK(c, http.StatusOK, doc)
}

func (h *MirrorHandler) List(c echo.Context) error {
	ctx := c.Request().Context()
	p := query.ParsePagination(c.QueryParam("page"), c.QueryParam("limit"), query.DefaultLimit, query.SearchMaxLimit)

	docs, err := h.repo.Find(ctx, bson.M{}, p.Skip(), int64(p.Limit))
	if err != nil {
		return utils.NewInternal(err)
	}
	total, err := h.repo.Count(ctx, bson.M{})
	if err != nil {
		return utils.NewInternal(err)
	}
	return utils.OK(c, http.StatusOK, query.NewPage(docs, total, p))
}
