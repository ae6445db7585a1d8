package client

// Session identifies the signed-in user. The zero value means nobody is signed in.
type Session struct {
	Username string `json:"user"`
}

func (s Session) Active() bool {
	return s.Username != ""
}

type Medicine struct {
	ID      uint    `json:"id"`
	Name    string  `json:"name"`
	Generic string  `json:"generic"`
	Company string  `json:"company"`
	Price   float64 `json:"price"`
}

type Brand struct {
	ID      uint    `json:"id"`
	Name    string  `json:"name"`
	Company string  `json:"company"`
	Price   float64 `json:"price"`
}

// GenericResult is either a generic name with its brands, or an error text
// reported by the server. When both are absent there is no result.
type GenericResult struct {
	Generic    string  `json:"generic"`
	Brands     []Brand `json:"brands"`
	Error      string  `json:"error"`
	Suggestion string  `json:"suggestion"`
}

func (r GenericResult) Found() bool {
	return r.Error == "" && r.Generic != ""
}

func (r GenericResult) Failed() bool {
	return r.Error != ""
}

func (r GenericResult) Empty() bool {
	return !r.Found() && !r.Failed()
}

type Kendra struct {
	ID         uint    `json:"id"`
	Name       string  `json:"name"`
	Lat        float64 `json:"lat"`
	Lng        float64 `json:"lng"`
	DistanceKm float64 `json:"distance_km"`
}

type Location struct {
	Lat float64
	Lng float64
}

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

type ChatMessage struct {
	Role    string
	Content string
}

type PriceListing struct {
	Store string `json:"store"`
	Price string `json:"price"`
	URL   string `json:"url"`
}

type PriceComparison struct {
	MedicineName string         `json:"medicine_name"`
	Prices       []PriceListing `json:"prices"`
}

type DrugAlternative struct {
	BrandName    string `json:"brand_name"`
	Manufacturer string `json:"manufacturer"`
}

type DrugReport struct {
	IdentifiedMedicine   string `json:"identified_medicine"`
	Composition          string `json:"composition"`
	GenericName          string `json:"generic_name"`
	ImageURL             string `json:"image_url"`
	GenericInfoParagraph string `json:"generic_info_paragraph"`
	Summary              struct {
		Uses        []string `json:"uses"`
		SideEffects []string `json:"side_effects"`
		Warnings    []string `json:"warnings"`
	} `json:"summary"`
	Alternatives []DrugAlternative `json:"alternatives"`
}

type BlogPost struct {
	ID      uint   `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

type LoginResult struct {
	Message     string `json:"message"`
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}
