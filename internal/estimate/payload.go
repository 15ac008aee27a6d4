package estimate

// payload is the wire projection of a Request in the upstream API's naming
// convention. The pointer fields carry omitempty so an unset resale section
// produces no key at all in the marshaled body, not a null.
type payload struct {
	PurchasePrice     float64  `json:"purchasePrice"`
	NotaryRate        float64  `json:"notaryRate"`
	Renovation        float64  `json:"renovation"`
	Furniture         float64  `json:"furniture"`
	AgencyFees        float64  `json:"agencyFees"`
	Rent              float64  `json:"rent"`
	VacancyMonths     float64  `json:"vacancyMonths"`
	ManagementPct     float64  `json:"managementPct"`
	CoproCharges      float64  `json:"coproCharges"`
	LLInsurance       float64  `json:"llInsurance"`
	PropertyTax       float64  `json:"propertyTax"`
	OtherAnnual       float64  `json:"otherAnnual"`
	BuildingYears     int      `json:"buildingYears"`
	FurnitureYears    int      `json:"furnitureYears"`
	LandShare         float64  `json:"landShare"`
	LoanYears         int      `json:"loanYears"`
	LoanRate          float64  `json:"loanRate"`
	LoanInsuranceRate float64  `json:"loanInsuranceRate"`
	DownPayment       float64  `json:"downPayment"`
	TargetMonthlyCf   float64  `json:"targetMonthlyCf"`
	ResaleYears       *int     `json:"resaleYears,omitempty"`
	ResalePrice       *float64 `json:"resalePrice,omitempty"`
}

func (r Request) payload() payload {
	return payload{
		PurchasePrice:     r.PurchasePrice,
		NotaryRate:        r.NotaryRate,
		Renovation:        r.Renovation,
		Furniture:         r.Furniture,
		AgencyFees:        r.AgencyFees,
		Rent:              r.Rent,
		VacancyMonths:     r.VacancyMonths,
		ManagementPct:     r.ManagementPct,
		CoproCharges:      r.CoproCharges,
		LLInsurance:       r.LLInsurance,
		PropertyTax:       r.PropertyTax,
		OtherAnnual:       r.OtherAnnual,
		BuildingYears:     r.BuildingYears,
		FurnitureYears:    r.FurnitureYears,
		LandShare:         r.LandShare,
		LoanYears:         r.LoanYears,
		LoanRate:          r.LoanRate,
		LoanInsuranceRate: r.LoanInsuranceRate,
		DownPayment:       r.DownPayment,
		TargetMonthlyCf:   r.TargetMonthlyCf,
		ResaleYears:       r.ResaleYears,
		ResalePrice:       r.ResalePrice,
	}
}
