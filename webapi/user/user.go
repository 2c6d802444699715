// Package user exposes registration, login and profile endpoints.
package user

import (
	"github.com/anshgandhiii/InvestmentHub/pkg/dto"
	usersvc "github.com/anshgandhiii/InvestmentHub/pkg/service/user"
	"github.com/anshgandhiii/InvestmentHub/webapi/common"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
)

// Routes registers the user endpoints:
//   - POST  /user/register          : create a user and seed their account.
//   - POST  /user/login             : verify credentials, return a JWT.
//   - GET   /user/profile/:user_id  : full profile with both ledger states.
//   - PATCH /user/profile/:user_id  : partial profile update.
func Routes(app *fiber.App, userSvc *usersvc.Service, protected fiber.Handler) {
	app.Post("/user/register", Register(userSvc))
	app.Post("/user/login", Login(userSvc))
	app.Get("/user/profile/:user_id", protected, GetProfile(userSvc))
	app.Patch("/user/profile/:user_id", protected, UpdateProfile(userSvc))
}

// Register returns a handler creating a user with a freshly seeded
// account.
// @Summary Register a new user
// @Tags user
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Credentials"
// @Success 201 {object} RegisterResponse
// @Failure 400 {object} common.ErrorBody "Invalid request or username taken"
// @Router /user/register [post]
func Register(userSvc *usersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[RegisterRequest](c)
		if input == nil {
			return err
		}
		userID, err := userSvc.Register(c.UserContext(), input.Username, input.Email, input.Password)
		if err != nil {
			log.Errorf("registration failed: %v", err)
			return common.DomainErrorJSON(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(RegisterResponse{
			UserID:  userID.String(),
			Message: "User registered successfully!",
		})
	}
}

// Login returns a handler verifying credentials and issuing a JWT.
// @Summary Log in
// @Tags user
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} LoginResponse
// @Failure 400 {object} common.ErrorBody "Invalid credentials"
// @Router /user/login [post]
func Login(userSvc *usersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[LoginRequest](c)
		if input == nil {
			return err
		}
		userID, token, err := userSvc.Login(c.UserContext(), input.Username, input.Password)
		if err != nil {
			return common.DomainErrorJSON(c, err)
		}
		return c.JSON(LoginResponse{
			UserID:  userID.String(),
			Token:   token,
			Message: "Login successful!",
		})
	}
}

// GetProfile returns a handler reading the full profile.
// @Summary Get profile
// @Tags user
// @Produce json
// @Param user_id path string true "User ID"
// @Success 200 {object} ProfileResponse
// @Failure 404 {object} common.ErrorBody "Profile not found"
// @Router /user/profile/{user_id} [get]
// @Security BearerAuth
func GetProfile(userSvc *usersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := uuid.Parse(c.Params("user_id"))
		if err != nil {
			return common.ErrorJSON(c, fiber.StatusBadRequest, "invalid user_id")
		}
		profile, err := userSvc.GetProfile(c.UserContext(), userID)
		if err != nil {
			return common.DomainErrorJSON(c, err)
		}
		return c.JSON(toProfileResponse(profile))
	}
}

// UpdateProfile returns a handler applying a partial profile update.
// @Summary Update profile
// @Tags user
// @Accept json
// @Produce json
// @Param user_id path string true "User ID"
// @Param request body UpdateProfileRequest true "Fields to update"
// @Success 200 {object} ProfileResponse
// @Failure 400 {object} common.ErrorBody "Invalid request"
// @Failure 404 {object} common.ErrorBody "Profile not found"
// @Router /user/profile/{user_id} [patch]
// @Security BearerAuth
func UpdateProfile(userSvc *usersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := uuid.Parse(c.Params("user_id"))
		if err != nil {
			return common.ErrorJSON(c, fiber.StatusBadRequest, "invalid user_id")
		}
		input, err := common.BindAndValidate[UpdateProfileRequest](c)
		if input == nil {
			return err
		}
		profile, err := userSvc.UpdateProfile(c.UserContext(), userID, dto.ProfileUpdate{
			RiskTolerance: input.RiskTolerance,
			Email:         input.Email,
		})
		if err != nil {
			return common.DomainErrorJSON(c, err)
		}
		return c.JSON(toProfileResponse(profile))
	}
}
