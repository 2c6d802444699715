package user

import (
	"github.com/anshgandhiii/InvestmentHub/pkg/domain"
	usersvc "github.com/anshgandhiii/InvestmentHub/pkg/service/user"
)

// RegisterRequest is the registration payload.
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=150"`
	Email    string `json:"email" validate:"omitempty,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// RegisterResponse is the registration result.
type RegisterResponse struct {
	UserID  string `json:"user_id"`
	Message string `json:"message"`
}

// LoginRequest is the login payload.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse is the login result.
type LoginResponse struct {
	UserID  string `json:"user_id"`
	Token   string `json:"token"`
	Message string `json:"message"`
}

// UpdateProfileRequest is a partial profile update; absent fields are left
// untouched.
type UpdateProfileRequest struct {
	RiskTolerance *domain.RiskTolerance `json:"risk_tolerance" validate:"omitempty,oneof=low medium high"`
	Email         *string               `json:"email" validate:"omitempty,email"`
}

// ProfileResponse is the full profile view. Decimal fields are strings on
// the wire.
type ProfileResponse struct {
	UserID        string `json:"user_id"`
	Username      string `json:"username"`
	Email         string `json:"email"`
	RiskTolerance string `json:"risk_tolerance"`

	Balance        string `json:"balance"`
	BoughtSum      string `json:"bought_sum"`
	StocksTotal    string `json:"stocks_total"`
	BondsTotal     string `json:"bonds_total"`
	InsuranceTotal string `json:"insurance_total"`

	VirtualBalance        string `json:"virtual_balance"`
	VirtualBoughtSum      string `json:"virtual_bought_sum"`
	VirtualStocksTotal    string `json:"virtual_stocks_total"`
	VirtualBondsTotal     string `json:"virtual_bonds_total"`
	VirtualInsuranceTotal string `json:"virtual_insurance_total"`
}

func toProfileResponse(p *usersvc.Profile) ProfileResponse {
	return ProfileResponse{
		UserID:        p.UserID.String(),
		Username:      p.Username,
		Email:         p.Email,
		RiskTolerance: string(p.RiskTolerance),

		Balance:        p.Real.Balance.StringFixed(2),
		BoughtSum:      p.Real.BoughtSum.StringFixed(2),
		StocksTotal:    p.Real.StocksTotal.StringFixed(2),
		BondsTotal:     p.Real.BondsTotal.StringFixed(2),
		InsuranceTotal: p.Real.InsuranceTotal.StringFixed(2),

		VirtualBalance:        p.Virtual.Balance.StringFixed(2),
		VirtualBoughtSum:      p.Virtual.BoughtSum.StringFixed(2),
		VirtualStocksTotal:    p.Virtual.StocksTotal.StringFixed(2),
		VirtualBondsTotal:     p.Virtual.BondsTotal.StringFixed(2),
		VirtualInsuranceTotal: p.Virtual.InsuranceTotal.StringFixed(2),
	}
}
