package validator

import (
	"regexp"

	"omsbridge/internal/domain"
)

const maxQRCodeDataLen = 2000

var (
	irnPattern = regexp.MustCompile(`^[a-zA-Z0-9]{64}$`)
	ackPattern = regexp.MustCompile(`^\d+$`)
)

// checkEInvoice covers stage nine: the eInvoiceAppl flag must be 0 or 1,
// and when the document is flagged for mandatory e-invoice registration the
// compliance block is validated — IRN format, acknowledgement number, and
// QR payload length.
func checkEInvoice(sub *domain.InvoiceSubmission) *domain.Rejection {
	if !sub.EInvoiceAppl.IsValid() {
		return domain.Reject(domain.CodeInvalidEInvoiceFlag, "eInvoiceAppl",
			"Value for eInvoiceAppl is not from the accepted list [0, 1]")
	}
	if !sub.EInvoiceAppl.Bool() {
		return nil
	}

	details := sub.EInvoiceDetails
	if details == nil || !irnPattern.MatchString(details.IRNNumber) {
		return domain.Reject(domain.CodeInvalidIRN, "eInvoiceDetails.irnNumber", "Invalid irnNumber")
	}
	if details.AckNumber == "" || len(details.AckNumber) > 25 || !ackPattern.MatchString(details.AckNumber) {
		return domain.Reject(domain.CodeInvalidAckNumber, "eInvoiceDetails.ackNumber", "Invalid ackNumber")
	}
	if len(details.QRCodeData) > maxQRCodeDataLen {
		return domain.Reject(domain.CodeQRDataTooLong, "eInvoiceDetails.qrCodeData",
			"qrCodeData exceeds maximum length of 2000 characters")
	}
	return nil
}
