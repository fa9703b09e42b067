package domain

// OrderType classifies an invoice submission by its originating order.
type OrderType string

const (
	OrderTypeNew      OrderType = "NEW"
	OrderTypeReturn   OrderType = "RETURN"
	OrderTypeExchange OrderType = "EXCHANGE"
)

// ValidOrderTypes holds the accepted orderType wire values.
var ValidOrderTypes = map[OrderType]bool{
	OrderTypeNew:      true,
	OrderTypeReturn:   true,
	OrderTypeExchange: true,
}

// TradeGroup classifies the transaction for tax purposes. The wire spellings
// ("INTER STATE", "EXPORT/IMPORT") come from the upstream OMS contract.
type TradeGroup string

const (
	TradeGroupLocal        TradeGroup = "LOCAL"
	TradeGroupInterState   TradeGroup = "INTER STATE"
	TradeGroupExportImport TradeGroup = "EXPORT/IMPORT"
)

// ValidTradeGroups holds the accepted tradeGroup wire values.
var ValidTradeGroups = map[TradeGroup]bool{
	TradeGroupLocal:        true,
	TradeGroupInterState:   true,
	TradeGroupExportImport: true,
}

// TaxRegime is the per-item tax classification: G for GST-governed items,
// V for non-GST (VAT-governed) items.
type TaxRegime string

const (
	TaxRegimeGST TaxRegime = "G"
	TaxRegimeVAT TaxRegime = "V"
)

// ValidTaxRegimes holds the accepted taxRegime wire values.
var ValidTaxRegimes = map[TaxRegime]bool{
	TaxRegimeGST: true,
	TaxRegimeVAT: true,
}

// Flag is the 0/1 integer encoding used for boolean fields on the wire
// (billToShipToSame, eInvoiceAppl).
type Flag int

const (
	FlagNo  Flag = 0
	FlagYes Flag = 1
)

// IsValid reports whether the flag carries one of the accepted values.
func (f Flag) IsValid() bool {
	return f == FlagNo || f == FlagYes
}

// Bool converts the wire encoding to a Go bool.
func (f Flag) Bool() bool {
	return f == FlagYes
}
