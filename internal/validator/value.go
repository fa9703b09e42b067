package validator

import (
	"omsbridge/internal/domain"
	"omsbridge/internal/money"
)

const maxInvoiceValue = 999999.99

// checkValueDetails covers stage six: the invoice-level monetary figures.
// The payable-amount identity is an exact decimal comparison; a round-off
// of 0.004 against a payable that absorbed none of it is a mismatch.
func checkValueDetails(sub *domain.InvoiceSubmission) *domain.Rejection {
	vd := sub.ValueDetails

	if vd.InvoiceValue <= 0 || vd.InvoiceValue > maxInvoiceValue {
		return domain.Reject(domain.CodeInvalidInvoiceValue, "valueDetails.invoiceValue", "Invalid invoiceValue")
	}

	if vd.InvoiceRoundOff == nil {
		return domain.Reject(domain.CodeInvalidRoundOff, "valueDetails.invoiceRoundOff", "Invalid invoiceRoundOff")
	}

	expectedPayable := money.FromFloat(vd.InvoiceValue).Add(money.FromFloat(*vd.InvoiceRoundOff))
	if !money.Equal(vd.InvoicePayableAmount, expectedPayable) {
		return domain.Reject(domain.CodePayableMismatch, "valueDetails.invoicePayableAmount",
			"Mismatch in invoicePayableAmount calculation")
	}

	if vd.CODAmount < 0 || vd.CODAmount > vd.InvoicePayableAmount {
		return domain.Reject(domain.CodeInvalidCODAmount, "valueDetails.codAmount", "Invalid codAmount")
	}

	return nil
}
