package handlers

import (
	"github.com/06bhavi/ecommerce-inventory-system/internal/models"
	"github.com/06bhavi/ecommerce-inventory-system/internal/services"
	"github.com/06bhavi/ecommerce-inventory-system/pkg/apperrors"

	"github.com/gofiber/fiber/v2"
)

// AuthHandler handles registration and login.
type AuthHandler struct {
	service *services.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(service *services.AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

// RegisterRoutes registers the public auth routes.
func (h *AuthHandler) RegisterRoutes(router fiber.Router) {
	auth := router.Group("/auth")
	auth.Post("/register", h.HandleRegister)
	auth.Post("/login", h.HandleLogin)
}

// HandleRegister creates a new admin account.
func (h *AuthHandler) HandleRegister(c *fiber.Ctx) error {
	var user models.User
	if err := c.BodyParser(&user); err != nil {
		return apperrors.NewInvalidRequest("invalid request body")
	}
	if user.Username == "" || user.Email == "" || user.Password == "" {
		return apperrors.NewValidationError("username, email and password are required", "")
	}

	if err := h.service.RegisterUser(&user); err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "user registered successfully",
	})
}

// HandleLogin authenticates a user and returns a JWT.
func (h *AuthHandler) HandleLogin(c *fiber.Ctx) error {
	var credentials struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&credentials); err != nil {
		return apperrors.NewInvalidRequest("invalid request body")
	}

	token, err := h.service.LoginUser(credentials.Username, credentials.Password)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"token": token})
}
