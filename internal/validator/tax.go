package validator

import (
	"github.com/shopspring/decimal"

	"omsbridge/internal/domain"
	"omsbridge/internal/money"
)

// TaxComponentSet names which tax components apply to an item, decided by
// the regime × trade-group policy. Both the rate and the amount
// reconciliation branch on the same set, so the policy lives in one place.
type TaxComponentSet int

const (
	// ComponentsLocalGST: intra-state GST item, taxed as CGST + SGST + CESS.
	ComponentsLocalGST TaxComponentSet = iota
	// ComponentsInterstate: inter-state or export/import, taxed as IGST + CESS.
	ComponentsInterstate
	// ComponentsFlat: the aggregate taxRate stands alone. Reached only for
	// VAT-regime items on a LOCAL trade group; the rate check there compares
	// the submitted value with itself. Kept for behavioral compatibility
	// with the upstream rule set pending product-owner review.
	ComponentsFlat
)

// ComponentsFor returns the tax component set for a regime and trade group.
func ComponentsFor(regime domain.TaxRegime, tradeGroup domain.TradeGroup) TaxComponentSet {
	switch {
	case regime == domain.TaxRegimeGST && tradeGroup == domain.TradeGroupLocal:
		return ComponentsLocalGST
	case tradeGroup == domain.TradeGroupInterState || tradeGroup == domain.TradeGroupExportImport:
		return ComponentsInterstate
	default:
		return ComponentsFlat
	}
}

// expectedTaxRate derives the aggregate rate an item should carry.
func expectedTaxRate(set TaxComponentSet, tax *domain.ItemTaxDetails) decimal.Decimal {
	switch set {
	case ComponentsLocalGST:
		return money.FromFloat(tax.CGSTRate).
			Add(money.FromFloat(tax.SGSTRate)).
			Add(money.FromFloat(tax.CessRate))
	case ComponentsInterstate:
		return money.FromFloat(tax.IGSTRate).Add(money.FromFloat(tax.CessRate))
	default:
		return money.FromFloat(tax.TaxRate)
	}
}

// expectedTaxAmount derives the aggregate tax amount an item should carry.
// The flat fallback recomputes from taxable × rate with half-away-from-zero
// rounding; the component cases sum the submitted component amounts.
func expectedTaxAmount(set TaxComponentSet, tax *domain.ItemTaxDetails) decimal.Decimal {
	switch set {
	case ComponentsLocalGST:
		return money.FromFloat(tax.CGSTAmount).
			Add(money.FromFloat(tax.SGSTAmount)).
			Add(money.FromFloat(tax.CessAmount))
	case ComponentsInterstate:
		return money.FromFloat(tax.IGSTAmount).Add(money.FromFloat(tax.CessAmount))
	default:
		return money.RoundHalfAwayFromZero(
			money.Mul(tax.TaxableAmount, tax.TaxRate).Shift(-2))
	}
}

// checkItemTax runs stages 8e–8j for one item: regime membership, taxable
// backout, rate and amount reconciliation, regime/trade-group exclusivity,
// and the per-component amount checks.
func checkItemTax(prefix string, tradeGroup domain.TradeGroup, item *domain.ItemDetail) *domain.Rejection {
	tax := item.ItemTaxDetails
	if tax == nil || !domain.ValidTaxRegimes[domain.TaxRegime(tax.TaxRegime)] {
		return domain.Reject(domain.CodeInvalidTaxRegime, prefix+".itemTaxDetails.taxRegime", "Invalid taxRegime")
	}
	regime := domain.TaxRegime(tax.TaxRegime)

	expectedTaxable := money.RoundHalfAwayFromZero(
		money.FromFloat(item.NetAmount).Sub(money.FromFloat(tax.TaxAmount)))
	if !money.Equal(tax.TaxableAmount, expectedTaxable) {
		return domain.Reject(domain.CodeTaxableAmountMismatch, prefix+".itemTaxDetails.taxableAmount", "Invalid taxableAmount")
	}

	set := ComponentsFor(regime, tradeGroup)

	if !money.Equal(tax.TaxRate, expectedTaxRate(set, tax)) {
		return domain.Reject(domain.CodeTaxRateMismatch, prefix+".itemTaxDetails.taxRate", "Invalid taxRate")
	}
	if !money.Equal(tax.TaxAmount, expectedTaxAmount(set, tax)) {
		return domain.Reject(domain.CodeTaxAmountMismatch, prefix+".itemTaxDetails.taxAmount", "Invalid taxAmount")
	}

	if regime == domain.TaxRegimeVAT {
		if tax.CGSTRate != 0 || tax.SGSTRate != 0 || tax.CessRate != 0 {
			return domain.Reject(domain.CodeGSTRatesNotZero, prefix+".itemTaxDetails",
				"Applicable GST & CESS rates should be 0 when taxRegime = V")
		}
	}
	if tradeGroup != domain.TradeGroupLocal {
		if tax.CGSTRate != 0 || tax.SGSTRate != 0 {
			return domain.Reject(domain.CodeInterstateRatesNotZero, prefix+".itemTaxDetails",
				"cgstRate and sgstRate should be 0 for interstate invoices")
		}
	}
	if tradeGroup == domain.TradeGroupLocal {
		if tax.IGSTRate != 0 {
			return domain.Reject(domain.CodeIGSTNotZeroLocal, prefix+".itemTaxDetails.igstRate",
				"igstRate should be 0 for local invoices")
		}
	}

	// Component amounts round half toward zero, unlike every other derived
	// amount in the pipeline. The asymmetry is contractual.
	components := []struct {
		code   string
		field  string
		name   string
		rate   float64
		amount float64
	}{
		{domain.CodeCGSTAmountMismatch, "cgstAmount", "CGST", tax.CGSTRate, tax.CGSTAmount},
		{domain.CodeSGSTAmountMismatch, "sgstAmount", "SGST", tax.SGSTRate, tax.SGSTAmount},
		{domain.CodeIGSTAmountMismatch, "igstAmount", "IGST", tax.IGSTRate, tax.IGSTAmount},
		{domain.CodeCessAmountMismatch, "cessAmount", "CESS", tax.CessRate, tax.CessAmount},
	}
	for _, c := range components {
		expected := money.RoundHalfTowardZero(money.Mul(tax.TaxableAmount, c.rate).Shift(-2))
		if !money.Equal(c.amount, expected) {
			return domain.Reject(c.code, prefix+".itemTaxDetails."+c.field, "Invalid %s Amount", c.name)
		}
	}

	return nil
}
