package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"estatecrm/models"
	"estatecrm/repositories"
	"estatecrm/utils"
)

type FavoriteHandler struct {
	favorites  *repositories.FavoriteRepository
	properties *repositories.PropertyRepository
}

func NewFavoriteHandler(favorites *repositories.FavoriteRepository, properties *repositories.PropertyRepository) *FavoriteHandler {
	return &FavoriteHandler{favorites: favorites, properties: properties}
}

func (h *FavoriteHandler) Create(c echo.Context) error {
	userID := c.Get("user_id").(primitive.ObjectID)

	var req models.CreateFavoriteRequest
	if err := c.Bind(&req); err != nil {
		return utils.NewBadRequest("Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	ctx := c.Request().Context()
	property, err := h.properties.FindByID(ctx, req.PropertyID)
	if err != nil {
		return utils.NewInternal(err)
	}
	if property == nil {
		return utils.NewNotFound("Property not found")
	}

	exists, err := h.favorites.Exists(ctx, userID, req.PropertyID)
	if err != nil {
		return utils.NewInternal(err)
	}
	if exists {
		return utils.NewConflict("Property already in favorites")
	}

	favorite := &models.Favorite{
		UserID:     userID,
		PropertyID: req.PropertyID,
		CreatedAt:  time.Now(),
	}
	if err := h.favorites.Create(ctx, favorite); err != nil {
		return utils.NewInternal(err)
	}
	return utils.OK(c, http.StatusCreated, favorite)
}

func (h *FavoriteHandler) List(c echo.Context) error {
	userID := c.Get("user_id").(primitive.ObjectID)

	favorites, err := h.favorites.FindByUser(c.Request().Context(), userID)
	if err != nil {
		return utils.NewInternal(err)
	}
	if favorites == nil {
		favorites = []models.Favorite{}
	}
	return utils.OK(c, http.StatusOK, favorites)
}

func (h *FavoriteHandler) Delete(c echo.Context) error {
	userID := c.Get("user_id").(primitive.ObjectID)

	deleted, err := h.favorites.Delete(c.Request().Context(), userID, c.Param("propertyId"))
	if err != nil {
		return utils.NewInternal(err)
	}
	if !deleted {
		return utils.NewNotFound("Favorite not found")
	}
	return utils.OKMessage(c, http.StatusOK, "Favorite removed")
}
