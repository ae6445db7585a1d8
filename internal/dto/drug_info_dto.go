package dto

type DrugQueryRequest struct {
	MedicineName string `json:"medicine_name"`
}

type PriceListing struct {
	Store string `json:"store"`
	Price string `json:"price"`
	URL   string `json:"url"`
}

type PriceComparisonResponse struct {
	MedicineName string         `json:"medicine_name"`
	Prices       []PriceListing `json:"prices"`
}

type DrugSummary struct {
	Uses        []string `json:"uses"`
	SideEffects []string `json:"side_effects"`
	Warnings    []string `json:"warnings"`
}

type DrugAlternative struct {
	BrandName    string `json:"brand_name"`
	Manufacturer string `json:"manufacturer"`
}

// DrugReportResponse is the synthesized report for one medicine. ImageURL is
// empty when no product image was found.
type DrugReportResponse struct {
	IdentifiedMedicine   string            `json:"identified_medicine"`
	Composition          string            `json:"composition"`
	GenericName          string            `json:"generic_name"`
	ImageURL             string            `json:"image_url"`
	GenericInfoParagraph string            `json:"generic_info_paragraph"`
	Summary              DrugSummary       `json:"summary"`
	Alternatives         []DrugAlternative `json:"alternatives"`
}
