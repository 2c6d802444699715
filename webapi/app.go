// Package webapi assembles the Fiber application: middleware, services and
// every route group.
package webapi

import (
	"github.com/anshgandhiii/InvestmentHub/pkg/config"
	"github.com/anshgandhiii/InvestmentHub/pkg/middleware"
	agentsvc "github.com/anshgandhiii/InvestmentHub/pkg/service/agent"
	catalogsvc "github.com/anshgandhiii/InvestmentHub/pkg/service/catalog"
	ledgersvc "github.com/anshgandhiii/InvestmentHub/pkg/service/ledger"
	marketsvc "github.com/anshgandhiii/InvestmentHub/pkg/service/market"
	usersvc "github.com/anshgandhiii/InvestmentHub/pkg/service/user"
	"github.com/anshgandhiii/InvestmentHub/webapi/agent"
	"github.com/anshgandhiii/InvestmentHub/webapi/catalog"
	"github.com/anshgandhiii/InvestmentHub/webapi/common"
	"github.com/anshgandhiii/InvestmentHub/webapi/market"
	"github.com/anshgandhiii/InvestmentHub/webapi/trade"
	"github.com/anshgandhiii/InvestmentHub/webapi/user"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// SetupApp builds all services and returns the configured Fiber app.
func SetupApp(deps config.Deps) (*fiber.App, error) {
	ledgerSvc := ledgersvc.NewService(deps)
	userSvc := usersvc.NewService(deps)
	marketSvc := marketsvc.NewService(deps)
	catalogSvc, err := catalogsvc.NewService(deps)
	if err != nil {
		return nil, err
	}
	agentSvc := agentsvc.NewService(deps, ledgerSvc, marketSvc, userSvc)

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			status := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				status = e.Code
			}
			return common.ErrorJSON(c, status, err.Error())
		},
	})

	app.Use(recover.New())
	app.Use(limiter.New(limiter.Config{
		Max:        deps.Config.RateLimit.MaxRequests,
		Expiration: deps.Config.RateLimit.Window,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return common.ErrorJSON(c, fiber.StatusTooManyRequests, "rate limit exceeded")
		},
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	protected := middleware.JwtProtected(deps.Config.Jwt)
	trade.Routes(app, ledgerSvc)
	user.Routes(app, userSvc, protected)
	catalog.Routes(app, catalogSvc)
	market.Routes(app, marketSvc)
	agent.Routes(app, agentSvc, protected)

	return app, nil
}
