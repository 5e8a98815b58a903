package account

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

const internalErrorMessage = "Internal server error"

// Handler exposes the account HTTP endpoints.
type Handler struct {
	svc      *Service
	logger   *slog.Logger
	validate *validator.Validate
}

// NewHandler builds an account HTTP handler.
func NewHandler(svc *Service, logger *slog.Logger) *Handler {
	return &Handler{svc: svc, logger: logger, validate: validator.New()}
}

type registerRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// Register creates a new account and returns a token for it.
func (h *Handler) Register(c *fiber.Ctx) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}

	res, err := h.svc.Register(c.UserContext(), RegisterInput{
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if errors.Is(err, ErrDuplicateEmail) {
		h.logger.Error("email id already exists", slog.String("email", req.Email))
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "Email id already exists"})
	}
	if err != nil {
		h.logger.Error("register failed", slog.Any("error", err))
		return fiber.NewError(http.StatusInternalServerError, internalErrorMessage)
	}

	h.logger.Info("user registered successfully", slog.String("email", res.Email))
	return c.Status(http.StatusOK).JSON(fiber.Map{"token": res.Token, "email": res.Email})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login verifies credentials and returns a token plus display fields.
func (h *Handler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}

	res, err := h.svc.Login(c.UserContext(), req.Email, req.Password)
	if errors.Is(err, ErrNotFound) {
		h.logger.Error("user not found", slog.String("email", req.Email))
		return c.Status(http.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}
	if errors.Is(err, ErrWrongPassword) {
		h.logger.Error("password does not match", slog.String("email", req.Email))
		return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"error": "Wrong password"})
	}
	if err != nil {
		h.logger.Error("login failed", slog.Any("error", err))
		return fiber.NewError(http.StatusInternalServerError, internalErrorMessage)
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{
		"token":     res.Token,
		"firstName": res.FirstName,
		"email":     res.Email,
	})
}

type updateRequest struct {
	FirstName *string `json:"firstName" validate:"omitempty,min=1"`
	LastName  *string `json:"lastName" validate:"omitempty,min=1"`
	Password  *string `json:"password" validate:"omitempty,min=6"`
}

// Update applies profile changes to the account named by the email header.
// Validation runs before any store access and reports every violated rule;
// the missing-header and unknown-account cases are both 400s on this path.
func (h *Handler) Update(c *fiber.Ctx) error {
	var req updateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}

	if err := h.validate.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return fiber.NewError(http.StatusInternalServerError, internalErrorMessage)
		}
		violations := make([]fiber.Map, 0, len(verrs))
		for _, v := range verrs {
			violations = append(violations, fiber.Map{"field": v.Field(), "rule": v.Tag()})
		}
		h.logger.Error("update validation failed", slog.Int("violations", len(violations)))
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"errors": violations})
	}

	email := c.Get("email")
	if email == "" {
		h.logger.Error("email header missing in update request")
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "Email not found in the request headers"})
	}

	signed, err := h.svc.Update(c.UserContext(), email, ProfileChanges{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Password:  req.Password,
	})
	if errors.Is(err, ErrNotFound) {
		h.logger.Error("user not found for update", slog.String("email", email))
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "User not found"})
	}
	if err != nil {
		h.logger.Error("update failed", slog.Any("error", err))
		return fiber.NewError(http.StatusInternalServerError, internalErrorMessage)
	}

	h.logger.Info("user updated successfully", slog.String("email", email))
	return c.Status(http.StatusOK).JSON(fiber.Map{"token": signed})
}

// Profile returns the authenticated caller's own account. The account id is
// placed in locals by the bearer-token middleware.
func (h *Handler) Profile(c *fiber.Ctx) error {
	id, _ := c.Locals("account_id").(string)
	if id == "" {
		return fiber.NewError(http.StatusUnauthorized, "missing bearer token")
	}

	user, err := h.svc.Profile(c.UserContext(), id)
	if errors.Is(err, ErrNotFound) {
		return c.Status(http.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}
	if err != nil {
		h.logger.Error("profile lookup failed", slog.Any("error", err))
		return fiber.NewError(http.StatusInternalServerError, internalErrorMessage)
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{
		"email":     user.Email,
		"firstName": user.FirstName,
		"lastName":  user.LastName,
		"createdAt": user.CreatedAt,
		"updatedAt": user.UpdatedAt,
	})
}
