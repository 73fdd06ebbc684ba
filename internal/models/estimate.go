package models

// EstimateRequest is one price calculation call. SpecName/TypeName are only
// needed for variant-priced products, Width/Height (millimeters) only for
// dimension-priced ones. CompanyID is carried for future scoping and is not
// used by the calculation itself.
type EstimateRequest struct {
	CompanyID int64   `json:"companyId"`
	ProductID int64   `json:"productId"`
	SpecName  string  `json:"specName,omitempty"`
	TypeName  string  `json:"typeName,omitempty"`
	Width     *int    `json:"width,omitempty"`
	Height    *int    `json:"height,omitempty"`
	OptionIDs []int64 `json:"optionIds,omitempty"`
	Quantity  int     `json:"quantity"`
}

// EstimateResponse is the priced result. TotalPrice is always
// (UnitPrice + OptionPrice) * Quantity.
type EstimateResponse struct {
	ProductName string `json:"productName"`
	UnitPrice   int    `json:"unitPrice"`
	OptionPrice int    `json:"optionPrice"`
	Quantity    int    `json:"quantity"`
	TotalPrice  int    `json:"totalPrice"`
}

// EstimatePdfItem is one quoted line of a printable estimate document.
type EstimatePdfItem struct {
	ProductName     string   `json:"productName"`
	CategoryName    string   `json:"categoryName,omitempty"`
	SubCategoryName string   `json:"subCategoryName,omitempty"`
	SpecName        string   `json:"specName,omitempty"`
	TypeName        string   `json:"typeName,omitempty"`
	Width           string   `json:"width,omitempty"`
	Height          string   `json:"height,omitempty"`
	ColorName       string   `json:"colorName,omitempty"`
	ColorCostInfo   string   `json:"colorCostInfo,omitempty"`
	UnitPrice       int      `json:"unitPrice"`
	OptionPrice     int      `json:"optionPrice"`
	SelectedOptions []string `json:"selectedOptions,omitempty"`
	Quantity        int      `json:"quantity"`
	BaseTotal       int64    `json:"baseTotal"`
	MarginAmount    int64    `json:"marginAmount"`
	FinalTotal      int64    `json:"finalTotal"`
}

// EstimatePdfRequest carries everything needed to render a quote PDF. Margin
// figures are supplied by the caller; the document is a rendering concern and
// performs no pricing of its own.
type EstimatePdfRequest struct {
	CompanyName   string            `json:"companyName"`
	CustomerName  string            `json:"customerName,omitempty"`
	DateStr       string            `json:"dateStr"`
	Items         []EstimatePdfItem `json:"items"`
	BaseTotal     int64             `json:"baseTotal"`
	TotalMargin   int64             `json:"totalMargin"`
	MarginPercent string            `json:"marginPercent,omitempty"`
	TotalPrice    int64             `json:"totalPrice"`
}
