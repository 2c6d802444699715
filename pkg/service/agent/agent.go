// Package agent implements the finance assistant: a Gemini-backed chat
// endpoint that can act on natural-language trading commands. Command
// extraction is best effort and only ever issues well-formed calls into
// the ledger engine; free text can never bypass the engine's validation.
package agent

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/anshgandhiii/InvestmentHub/pkg/config"
	"github.com/anshgandhiii/InvestmentHub/pkg/domain"
	"github.com/anshgandhiii/InvestmentHub/pkg/provider"
	"github.com/anshgandhiii/InvestmentHub/pkg/service/ledger"
	"github.com/anshgandhiii/InvestmentHub/pkg/service/market"
	"github.com/anshgandhiii/InvestmentHub/pkg/service/user"
	"github.com/google/uuid"
)

const instructions = `You are a finance agent for a simulated investment portal.
1. Collect financial data using the provided context
2. Compare companies systematically
3. Present data in markdown tables
4. Include data sources and dates
5. Highlight key metrics
6. Show data in tabular format`

// Service is the finance agent.
type Service struct {
	model  provider.ContentGenerator
	ledger *ledger.Service
	market *market.Service
	users  *user.Service
	logger *slog.Logger
}

// NewService creates an agent Service over the ledger, market and user
// services.
func NewService(
	deps config.Deps,
	ledgerSvc *ledger.Service,
	marketSvc *market.Service,
	userSvc *user.Service,
) *Service {
	return &Service{
		model:  deps.Model,
		ledger: ledgerSvc,
		market: marketSvc,
		users:  userSvc,
		logger: deps.Logger,
	}
}

// Chat handles one agent turn: execute any trading commands found in the
// prompt, then ask the model for a response grounded in the user's risk
// tolerance and the command outcomes.
func (s *Service) Chat(ctx context.Context, userID uuid.UUID, prompt string) (string, error) {
	logger := s.logger.With("user_id", userID)

	risk := domain.RiskMedium
	if profile, err := s.users.GetProfile(ctx, userID); err == nil {
		risk = profile.RiskTolerance
	} else {
		logger.Warn("profile lookup failed, assuming medium risk", "error", err)
	}

	var toolResults []string
	for _, cmd := range ParseCommands(prompt) {
		toolResults = append(toolResults, s.runCommand(ctx, userID, cmd))
	}
	if wantsPortfolio(prompt) {
		toolResults = append(toolResults, s.portfolioSummary(ctx, userID))
	}

	full := buildPrompt(risk, toolResults, prompt)
	content, err := s.model.GenerateContent(ctx, full)
	if err != nil {
		logger.Error("model call failed", "error", err)
		return "", err
	}
	return content, nil
}

// runCommand executes one parsed trade through the ledger engine. Failures
// are reported back as text; the agent is best effort by design.
func (s *Service) runCommand(ctx context.Context, userID uuid.UUID, cmd Command) string {
	price, err := s.market.GetQuote(ctx, cmd.Symbol)
	if err != nil {
		return fmt.Sprintf("Could not fetch a price for %s: %v", cmd.Symbol, err)
	}
	rec, err := s.ledger.Execute(ctx, ledger.TradeRequest{
		UserID:     userID,
		Symbol:     cmd.Symbol,
		Price:      price.String(),
		Quantity:   fmt.Sprintf("%d", cmd.Quantity),
		Type:       string(cmd.Type),
		AssetClass: string(domain.ClassStock),
		Scope:      domain.ScopeReal,
	})
	if err != nil {
		return fmt.Sprintf("Failed to %s %d %s: %v", cmd.Type, cmd.Quantity, cmd.Symbol, err)
	}
	result := fmt.Sprintf("Executed %s of %d %s at %s (total %s)",
		cmd.Type, cmd.Quantity, cmd.Symbol, rec.Price.StringFixed(2), rec.Amount.StringFixed(2))
	if rec.ProfitLoss != nil {
		result += fmt.Sprintf(", profit/loss %s", rec.ProfitLoss.StringFixed(2))
	}
	return result
}

func (s *Service) portfolioSummary(ctx context.Context, userID uuid.UUID) string {
	holdings, err := s.ledger.Portfolio(ctx, userID, domain.ScopeReal)
	if err != nil {
		return fmt.Sprintf("Could not fetch portfolio: %v", err)
	}
	if len(holdings) == 0 {
		return "Your portfolio is empty."
	}
	lines := make([]string, 0, len(holdings))
	for _, h := range holdings {
		lines = append(lines, fmt.Sprintf("%s: %d shares", h.Symbol, h.Quantity))
	}
	return "Current portfolio:\n" + strings.Join(lines, "\n")
}

func buildPrompt(risk domain.RiskTolerance, toolResults []string, prompt string) string {
	var b strings.Builder
	b.WriteString(instructions)
	fmt.Fprintf(&b, "\n\nThe user's risk tolerance is %s.\n", risk)
	if len(toolResults) > 0 {
		b.WriteString("\nActions taken on the user's behalf:\n")
		for _, r := range toolResults {
			b.WriteString("- " + r + "\n")
		}
	}
	b.WriteString("\nUser: " + prompt)
	return b.String()
}
