package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/estimmo/estimmo/internal/estimate"
)

func numberProp(desc string, def float64) map[string]interface{} {
	return map[string]interface{}{"type": "number", "description": desc, "default": def}
}

func integerProp(desc string, def int) map[string]interface{} {
	return map[string]interface{}{"type": "integer", "description": desc, "default": def}
}

// EstimateTool proxies an investment estimation to the estimateur-immo API.
// Every failure mode is reported in-band: the tool always hands a JSON
// object back to the runtime, never an execution error, so a broken upstream
// cannot abort an agent run.
func EstimateTool(client *estimate.Client) Tool {
	return Tool{
		Name: "estimate_real_estate_investment",
		Description: "Estimate real estate investment profitability using the estimateur-immo API. " +
			"If no data is specified for some fields, the default value is used.",
		InputSchema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				// Acquisition
				"purchase_price": numberProp("Property purchase price in euros", 50000.0),
				"notary_rate":    numberProp("Notary fees rate (0.08 = 8%)", 0.08),
				"renovation":     numberProp("Renovation costs in euros", 10000.0),
				"furniture":      numberProp("Furniture costs in euros", 0.0),
				"agency_fees":    numberProp("Real estate agency fees in euros", 0.0),

				// Exploitation
				"rent":           numberProp("Monthly rent in euros", 500.0),
				"vacancy_months": numberProp("Average vacancy months per year", 0.5),
				"management_pct": numberProp("Property management fee percentage (0.0-1.0)", 0.0),
				"copro_charges":  numberProp("Monthly co-ownership charges in euros", 10.0),
				"ll_insurance":   numberProp("Monthly landlord insurance in euros", 10.0),
				"property_tax":   numberProp("Annual property tax in euros", 500.0),
				"other_annual":   numberProp("Other annual expenses in euros", 0.0),

				// Depreciation & tax
				"building_years":  integerProp("Building depreciation period in years", 30),
				"furniture_years": integerProp("Furniture depreciation period in years", 7),
				"land_share":      numberProp("Land share of total price (non-depreciable)", 0.15),

				// Financing
				"loan_years":          integerProp("Loan duration in years", 20),
				"loan_rate":           numberProp("Annual loan interest rate (0.035 = 3.5%)", 0.035),
				"loan_insurance_rate": numberProp("Annual loan insurance rate", 0.002),
				"down_payment":        numberProp("Down payment amount in euros", 5000.0),

				// Objectives
				"target_monthly_cf": numberProp("Target monthly cash flow in euros", 0.0),

				// Resale / IRR
				"resale_years": map[string]interface{}{
					"type":        "integer",
					"description": "Years before resale (default: loan duration)",
				},
				"resale_price": map[string]interface{}{
					"type":        "number",
					"description": "Resale price (default: purchase price plus renovation)",
				},

				"api_base_url": map[string]interface{}{
					"type":        "string",
					"description": "Base URL of the estimateur-immo API",
				},
			},
		},
		Execute: func(ctx context.Context, input map[string]interface{}) (string, error) {
			result := client.Estimate(ctx, estimate.RequestFromArgs(input))
			b, err := json.Marshal(result.Object())
			if err != nil {
				return fmt.Sprintf(`{"error": %q}`, "An error occurred: "+err.Error()), nil
			}
			return string(b), nil
		},
	}
}
