// Package catalog exposes the asset catalog and the static insurance-plan
// list.
package catalog

import (
	"github.com/anshgandhiii/InvestmentHub/pkg/domain"
	"github.com/anshgandhiii/InvestmentHub/pkg/dto"
	catalogsvc "github.com/anshgandhiii/InvestmentHub/pkg/service/catalog"
	"github.com/anshgandhiii/InvestmentHub/webapi/common"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Routes registers the catalog endpoints:
//   - GET /investment/assets                : full asset catalog.
//   - GET /investment/suggestions/:user_id  : assets matching the user's risk tolerance.
//   - GET /investment/insurance             : static insurance plans, ?risk_level= filter.
func Routes(app *fiber.App, catalogSvc *catalogsvc.Service) {
	app.Get("/investment/assets", ListAssets(catalogSvc))
	app.Get("/investment/suggestions/:user_id", Suggestions(catalogSvc))
	app.Get("/investment/insurance", InsurancePlans(catalogSvc))
}

// AssetResponse is one catalog entry on the wire.
type AssetResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Type      string `json:"type"`
	Price     string `json:"price"`
	RiskLevel string `json:"risk_level"`
}

func toAssetResponses(assets []dto.AssetRead) []AssetResponse {
	out := make([]AssetResponse, 0, len(assets))
	for _, a := range assets {
		out = append(out, AssetResponse{
			ID:        a.ID.String(),
			Name:      a.Name,
			Type:      string(a.Type),
			Price:     a.Price.StringFixed(2),
			RiskLevel: string(a.RiskLevel),
		})
	}
	return out
}

// ListAssets returns a handler listing the asset catalog.
// @Summary List assets
// @Tags catalog
// @Produce json
// @Success 200 {array} AssetResponse
// @Router /investment/assets [get]
func ListAssets(catalogSvc *catalogsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		assets, err := catalogSvc.ListAssets(c.UserContext())
		if err != nil {
			return common.DomainErrorJSON(c, err)
		}
		return c.JSON(toAssetResponses(assets))
	}
}

// Suggestions returns a handler listing assets matching the user's risk
// tolerance.
// @Summary Suggest assets
// @Tags catalog
// @Produce json
// @Param user_id path string true "User ID"
// @Success 200 {array} AssetResponse
// @Failure 404 {object} common.ErrorBody "Account not found"
// @Router /investment/suggestions/{user_id} [get]
func Suggestions(catalogSvc *catalogsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := uuid.Parse(c.Params("user_id"))
		if err != nil {
			return common.ErrorJSON(c, fiber.StatusBadRequest, "invalid user_id")
		}
		assets, err := catalogSvc.Suggestions(c.UserContext(), userID)
		if err != nil {
			return common.DomainErrorJSON(c, err)
		}
		return c.JSON(toAssetResponses(assets))
	}
}

// InsurancePlans returns a handler listing the static insurance plans.
// @Summary List insurance plans
// @Tags catalog
// @Produce json
// @Param risk_level query string false "Filter by risk level (low, medium, high)"
// @Success 200 {array} catalogsvc.InsurancePlan
// @Router /investment/insurance [get]
func InsurancePlans(catalogSvc *catalogsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		risk := domain.RiskTolerance(c.Query("risk_level"))
		if risk != "" && !risk.Valid() {
			return common.ErrorJSON(c, fiber.StatusBadRequest, "invalid risk_level")
		}
		return c.JSON(catalogSvc.InsurancePlans(risk))
	}
}
