// Package agent exposes the finance assistant endpoint.
package agent

import (
	agentsvc "github.com/anshgandhiii/InvestmentHub/pkg/service/agent"
	"github.com/anshgandhiii/InvestmentHub/webapi/common"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
)

// Routes registers the agent endpoint:
//   - POST /agent : natural-language finance assistant.
func Routes(app *fiber.App, agentSvc *agentsvc.Service, protected fiber.Handler) {
	app.Post("/agent", protected, Chat(agentSvc))
}

// PromptRequest is the agent payload.
type PromptRequest struct {
	UserID string `json:"user_id" validate:"required,uuid4"`
	Prompt string `json:"prompt" validate:"required,min=1,max=4000"`
}

// PromptResponse is the agent result.
type PromptResponse struct {
	Content string `json:"content"`
}

// Chat returns a handler running one agent turn. Trading commands found in
// the prompt are executed through the ledger engine before the model is
// asked for a response.
// @Summary Chat with the finance agent
// @Tags agent
// @Accept json
// @Produce json
// @Param request body PromptRequest true "Prompt"
// @Success 200 {object} PromptResponse
// @Failure 400 {object} common.ErrorBody "Invalid request"
// @Failure 500 {object} common.ErrorBody "Agent failure"
// @Router /agent [post]
// @Security BearerAuth
func Chat(agentSvc *agentsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[PromptRequest](c)
		if input == nil {
			return err
		}
		userID, err := uuid.Parse(input.UserID)
		if err != nil {
			return common.ErrorJSON(c, fiber.StatusBadRequest, "invalid user_id")
		}
		content, err := agentSvc.Chat(c.UserContext(), userID, input.Prompt)
		if err != nil {
			log.Errorf("agent chat failed: %v", err)
			return common.ErrorJSON(c, fiber.StatusInternalServerError, err.Error())
		}
		return c.JSON(PromptResponse{Content: content})
	}
}
