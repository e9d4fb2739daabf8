package moneymoney

// ExportPortfolioParams filters an exportPortfolio call. Without filters
// the entire portfolio across all accounts is exported.
type ExportPortfolioParams struct {
	FromAccount    *string `json:"fromAccount,omitempty"`
	FromAssetClass *string `json:"fromAssetClass,omitempty"`
}

// NewExportPortfolioParams exports the whole portfolio.
func NewExportPortfolioParams() ExportPortfolioParams {
	return ExportPortfolioParams{}
}

// WithFromAccount restricts the export to one account, identified by UUID,
// IBAN, account number, account name or group name.
func (p ExportPortfolioParams) WithFromAccount(account string) ExportPortfolioParams {
	p.FromAccount = &account
	return p
}

// WithFromAssetClass restricts the export to one asset class, identified by
// UUID or name.
func (p ExportPortfolioParams) WithFromAssetClass(assetClass string) ExportPortfolioParams {
	p.FromAssetClass = &assetClass
	return p
}

func (ExportPortfolioParams) Method() string { return "exportPortfolio" }

func (p ExportPortfolioParams) args() interface{} { return p }

// Security is a single portfolio holding. Identification fields and
// purchase data may be absent depending on the bank; they decode to their
// zero values.
type Security struct {
	UUID          UUID    `plist:"uuid" json:"uuid"`
	Name          string  `plist:"name" json:"name"`
	ISIN          string  `plist:"isin" json:"isin,omitempty"`
	WKN           string  `plist:"wkn" json:"wkn,omitempty"`
	Symbol        string  `plist:"symbol" json:"symbol,omitempty"`
	Quantity      float64 `plist:"quantity" json:"quantity"`
	AccountUUID   UUID    `plist:"accountUuid" json:"accountUuid"`
	AccountName   string  `plist:"accountName" json:"accountName"`
	MarketPrice   float64 `plist:"marketPrice" json:"marketPrice"`
	Currency      string  `plist:"currency" json:"currency"`
	MarketValue   float64 `plist:"marketValue" json:"marketValue"`
	PurchasePrice float64 `plist:"purchasePrice" json:"purchasePrice"`
	PurchaseValue float64 `plist:"purchaseValue" json:"purchaseValue"`
	Profit        float64 `plist:"profit" json:"profit"`
	ProfitPercent float64 `plist:"profitPercent" json:"profitPercent"`
	AssetClass    string  `plist:"assetClass" json:"assetClass,omitempty"`
}

// PortfolioResponse is the exportPortfolio payload.
type PortfolioResponse struct {
	Securities []Security `plist:"securities" json:"securities"`
}
