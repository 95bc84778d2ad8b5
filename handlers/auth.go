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

const authCookieName = "auth_token"

type AuthHandler struct {
	users *repositories.UserRepository
}

func NewAuthHandler(users *repositories.UserRepository) *AuthHandler {
	return &AuthHandler{users: users}
}

func (h *AuthHandler) Register(c echo.Context) error {
	var req models.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return utils.NewBadRequest("Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	ctx := c.Request().Context()
	existing, err := h.users.FindByEmail(ctx, req.Email)
	if err != nil {
		return utils.NewInternal(err)
	}
	if existing != nil {
		return utils.NewConflict("User with this email already exists")
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		return utils.NewInternal(err)
	}

	role := req.Role
	if role == "" {
		role = models.RoleSalesAgent
	}

	now := time.Now()
	user := models.User{
		ID:        primitive.NewObjectID(),
		Email:     req.Email,
		Password:  hashedPassword,
		Name:      req.Name,
		Phone:     req.Phone,
		Role:      role,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := h.users.Create(ctx, &user); err != nil {
		if utils.IsDuplicateKey(err) {
			return utils.NewConflict("User with this email already exists")
		}
		return utils.NewInternal(err)
	}

	token, err := utils.GenerateJWT(user.ID, user.Email, user.Role)
	if err != nil {
		return utils.NewInternal(err)
	}

	user.Password = ""
	setAuthCookie(c, token)
	return utils.OK(c, http.StatusCreated, models.LoginResponse{Token: token, User: user})
}

func (h *AuthHandler) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return utils.NewBadRequest("Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.users.FindByEmail(c.Request().Context(), req.Email)
	if err != nil {
		return utils.NewInternal(err)
	}
	// Wrong email and wrong password answer identically.
	if user == nil || !user.IsActive {
		return utils.NewUnauthorized()
	}
	if err := utils.CheckPassword(user.Password, req.Password); err != nil {
		return utils.NewUnauthorized()
	}

	token, err := utils.GenerateJWT(user.ID, user.Email, user.Role)
	if err != nil {
		return utils.NewInternal(err)
	}

	user.Password = ""
	setAuthCookie(c, token)
	return utils.OK(c, http.StatusOK, models.LoginResponse{Token: token, User: *user})
}

func (h *AuthHandler) Logout(c echo.Context) error {
	c.SetCookie(&http.Cookie{
		Name:     authCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
	return utils.OKMessage(c, http.StatusOK, "Logged out")
}

func (h *AuthHandler) Me(c echo.Context) error {
	userID := c.Get("user_id").(primitive.ObjectID)

	user, err := h.users.FindByID(c.Request().Context(), userID)
	if err != nil {
		return utils.NewInternal(err)
	}
	if user == nil {
		return utils.NewNotFound("User not found")
	}

	user.Password = ""
	return utils.OK(c, http.StatusOK, user)
}

func setAuthCookie(c echo.Context, token string) {
	c.SetCookie(&http.Cookie{
		Name:     authCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
