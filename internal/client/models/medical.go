package models

// Pharmacy is a registered pharmacy record.
type Pharmacy struct {
	ID          string  `json:"_id"`
	Area        string  `json:"area"`
	Code        string  `json:"code"`
	Section     string  `json:"section"`
	Name        string  `json:"name"`
	Address     string  `json:"address"`
	Lng         float64 `json:"lng"`
	Lat         float64 `json:"lat"`
	Phone       string  `json:"phone"`
	Img         string  `json:"img,omitempty"`
	Owner       string  `json:"owner"`
	IsGuard     bool    `json:"isGuard"`
	GuardPeriod string  `json:"guardPeriod"`
	CreatedAt   string  `json:"createdAt"`
	UpdatedAt   string  `json:"updatedAt"`
}

type PharmacyPayload struct {
	Area    string  `json:"area"`
	Section string  `json:"section"`
	Name    string  `json:"name"`
	Address string  `json:"address"`
	Lng     float64 `json:"lng"`
	Lat     float64 `json:"lat"`
	Phone   string  `json:"phone"`
	Owner   string  `json:"owner"`
}

// PharmacyExport is the flat row shape served by /pharmacy-export.
type PharmacyExport struct {
	Code    string  `json:"code"`
	Name    string  `json:"name"`
	Section string  `json:"section"`
	Area    string  `json:"area"`
	Address string  `json:"address"`
	Lng     float64 `json:"lng"`
	Lat     float64 `json:"lat"`
	Phone   string  `json:"phone"`
	Owner   string  `json:"owner"`
	IsGuard bool    `json:"isGuard"`
}

// Area groups pharmacies inside a section.
type Area struct {
	ID      string `json:"_id"`
	Name    string `json:"name"`
	Section string `json:"section"`
}

type Section struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
}

// Medecine is a registered medicine record.
type Medecine struct {
	ID        string  `json:"_id"`
	Code      string  `json:"code"`
	Name      string  `json:"name"`
	Group     string  `json:"group"`
	DCI       string  `json:"dci"`
	Category  string  `json:"category"`
	Regime    string  `json:"regime"`
	Img       string  `json:"img,omitempty"`
	Price     float64 `json:"price"`
	CreatedAt string  `json:"createdAt"`
	UpdatedAt string  `json:"updatedAt"`
}

type MedecinePayload struct {
	Code     string  `json:"code"`
	Category string  `json:"category"`
	DCI      string  `json:"dci"`
	Group    string  `json:"group"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Regime   string  `json:"regime"`
}

// MedecineAttributes are the distinct attribute values used to build
// medicine filter lists and bulk-import validation.
type MedecineAttributes struct {
	DCIs       []string `json:"dcis"`
	Categories []string `json:"categories"`
	Groups     []string `json:"groups"`
	Regimes    []string `json:"regimes"`
}
