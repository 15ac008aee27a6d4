// Package estimate shapes, authenticates, and issues estimation requests to
// the remote estimateur-immo API. The API itself does all the financial math;
// this package only builds the wire payload and normalizes failures.
package estimate

// Request holds the parameters of one estimation call. All monetary values
// are in euros, rates are fractions (0.08 = 8%). ResaleYears and ResalePrice
// are optional: when nil they are left out of the outbound payload entirely.
type Request struct {
	// Acquisition
	PurchasePrice float64
	NotaryRate    float64
	Renovation    float64
	Furniture     float64
	AgencyFees    float64

	// Exploitation
	Rent          float64
	VacancyMonths float64
	ManagementPct float64
	CoproCharges  float64
	LLInsurance   float64
	PropertyTax   float64
	OtherAnnual   float64

	// Depreciation & tax
	BuildingYears  int
	FurnitureYears int
	LandShare      float64

	// Financing
	LoanYears         int
	LoanRate          float64
	LoanInsuranceRate float64
	DownPayment       float64

	// Objectives
	TargetMonthlyCf float64

	// Resale / IRR (optional)
	ResaleYears *int
	ResalePrice *float64

	// APIBaseURL overrides the configured upstream for this call.
	APIBaseURL string
}

// DefaultRequest returns a Request with the documented default for every
// field. Callers overlay their own values on top of it.
func DefaultRequest() Request {
	return Request{
		PurchasePrice:     50000.0,
		NotaryRate:        0.08,
		Renovation:        10000.0,
		Furniture:         0.0,
		AgencyFees:        0.0,
		Rent:              500.0,
		VacancyMonths:     0.5,
		ManagementPct:     0.0,
		CoproCharges:      10.0,
		LLInsurance:       10.0,
		PropertyTax:       500.0,
		OtherAnnual:       0.0,
		BuildingYears:     30,
		FurnitureYears:    7,
		LandShare:         0.15,
		LoanYears:         20,
		LoanRate:          0.035,
		LoanInsuranceRate: 0.002,
		DownPayment:       5000.0,
		TargetMonthlyCf:   0.0,
	}
}

// RequestFromArgs overlays caller-provided arguments (snake_case keys, as
// decoded from a JSON object) on the defaults. JSON numbers decode as
// float64; integer fields are truncated from that. Unknown keys are ignored
// so a caller sending extra arguments does not fail the call.
func RequestFromArgs(args map[string]interface{}) Request {
	r := DefaultRequest()

	if v, ok := argFloat(args, "purchase_price"); ok {
		r.PurchasePrice = v
	}
	if v, ok := argFloat(args, "notary_rate"); ok {
		r.NotaryRate = v
	}
	if v, ok := argFloat(args, "renovation"); ok {
		r.Renovation = v
	}
	if v, ok := argFloat(args, "furniture"); ok {
		r.Furniture = v
	}
	if v, ok := argFloat(args, "agency_fees"); ok {
		r.AgencyFees = v
	}
	if v, ok := argFloat(args, "rent"); ok {
		r.Rent = v
	}
	if v, ok := argFloat(args, "vacancy_months"); ok {
		r.VacancyMonths = v
	}
	if v, ok := argFloat(args, "management_pct"); ok {
		r.ManagementPct = v
	}
	if v, ok := argFloat(args, "copro_charges"); ok {
		r.CoproCharges = v
	}
	if v, ok := argFloat(args, "ll_insurance"); ok {
		r.LLInsurance = v
	}
	if v, ok := argFloat(args, "property_tax"); ok {
		r.PropertyTax = v
	}
	if v, ok := argFloat(args, "other_annual"); ok {
		r.OtherAnnual = v
	}
	if v, ok := argInt(args, "building_years"); ok {
		r.BuildingYears = v
	}
	if v, ok := argInt(args, "furniture_years"); ok {
		r.FurnitureYears = v
	}
	if v, ok := argFloat(args, "land_share"); ok {
		r.LandShare = v
	}
	if v, ok := argInt(args, "loan_years"); ok {
		r.LoanYears = v
	}
	if v, ok := argFloat(args, "loan_rate"); ok {
		r.LoanRate = v
	}
	if v, ok := argFloat(args, "loan_insurance_rate"); ok {
		r.LoanInsuranceRate = v
	}
	if v, ok := argFloat(args, "down_payment"); ok {
		r.DownPayment = v
	}
	if v, ok := argFloat(args, "target_monthly_cf"); ok {
		r.TargetMonthlyCf = v
	}
	if v, ok := argInt(args, "resale_years"); ok {
		r.ResaleYears = &v
	}
	if v, ok := argFloat(args, "resale_price"); ok {
		r.ResalePrice = &v
	}
	if v, ok := args["api_base_url"].(string); ok && v != "" {
		r.APIBaseURL = v
	}

	return r
}

func argFloat(args map[string]interface{}, key string) (float64, bool) {
	switch v := args[key].(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	}
	return 0, false
}

func argInt(args map[string]interface{}, key string) (int, bool) {
	switch v := args[key].(type) {
	case float64:
		return int(v), true
	case int:
		return v, true
	}
	return 0, false
}
