package catalog

import (
	_ "embed"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/anshgandhiii/InvestmentHub/pkg/domain"
	"github.com/shopspring/decimal"
)

//go:embed plans.csv
var plansCSV string

// InsurancePlan is one entry of the static insurance catalog.
type InsurancePlan struct {
	ID        string               `json:"id"`
	Name      string               `json:"name"`
	Premium   decimal.Decimal      `json:"premium"`
	Coverage  decimal.Decimal      `json:"coverage"`
	RiskLevel domain.RiskTolerance `json:"risk_level"`
}

// LoadInsurancePlans loads the plan list from a CSV file, or from the
// embedded fixture when path is empty.
func LoadInsurancePlans(path string) ([]InsurancePlan, error) {
	var r io.Reader
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open file: %w", err)
		}
		defer f.Close() //nolint:errcheck
		r = f
	} else {
		r = strings.NewReader(plansCSV)
	}
	return parseInsurancePlans(r)
}

func parseInsurancePlans(r io.Reader) ([]InsurancePlan, error) {
	records, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, err
	}

	var plans []InsurancePlan
	for i, rec := range records {
		if i == 0 {
			if len(rec) < 5 {
				return nil, fmt.Errorf("invalid CSV format: expected at least 5 columns, got %d", len(rec))
			}
			continue // skip header
		}
		if len(rec) < 5 {
			continue
		}
		premium, err := decimal.NewFromString(rec[2])
		if err != nil {
			return nil, fmt.Errorf("row %d: invalid premium %q", i, rec[2])
		}
		coverage, err := decimal.NewFromString(rec[3])
		if err != nil {
			return nil, fmt.Errorf("row %d: invalid coverage %q", i, rec[3])
		}
		plans = append(plans, InsurancePlan{
			ID:        rec[0],
			Name:      rec[1],
			Premium:   premium,
			Coverage:  coverage,
			RiskLevel: domain.RiskTolerance(strings.ToLower(rec[4])),
		})
	}
	return plans, nil
}
