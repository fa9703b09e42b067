package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrSubmissionFailed marks a failure from the downstream ledger after
	// validation passed. Callers may retry this class; they must never retry
	// a Rejection.
	ErrSubmissionFailed = errors.New("ledger submission failed")

	ErrUnauthorized = errors.New("unauthorized")
)

// Rejection identifies the first validation rule a submission violated.
// It carries a stable machine code, the offending field path, and the
// human-readable message from the integration contract.
type Rejection struct {
	Code    string `json:"code"`
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

func (r *Rejection) Error() string {
	if r.Field == "" {
		return fmt.Sprintf("%s: %s", r.Code, r.Message)
	}
	return fmt.Sprintf("%s: %s: %s", r.Code, r.Field, r.Message)
}

// Reject builds a Rejection with a formatted message.
func Reject(code, field, format string, args ...interface{}) *Rejection {
	return &Rejection{Code: code, Field: field, Message: fmt.Sprintf(format, args...)}
}

// Rejection codes, one per validation rule. Stable across releases; the OMS
// side keys retry/alerting behavior off these.
const (
	CodeFieldRequired         = "FIELD_REQUIRED"
	CodeInvalidOrderType      = "INVALID_ORDER_TYPE"
	CodeParentOrderRequired   = "PARENT_ORDER_REQUIRED"
	CodeOrderRefConflict      = "ORDER_REF_CONFLICT"
	CodeParentInvoiceRequired = "PARENT_INVOICE_REQUIRED"

	CodeUnparseableDate        = "UNPARSEABLE_DATE"
	CodeInvoiceDateBeforeOrder = "INVOICE_DATE_BEFORE_ORDER"
	CodeChannelDateBeforeOrder = "CHANNEL_DATE_BEFORE_ORDER"

	CodeInvalidTradeGroup = "INVALID_TRADE_GROUP"

	CodeInvalidBillToShipTo     = "INVALID_BILL_TO_SHIP_TO"
	CodeShippingAddressRequired = "SHIPPING_ADDRESS_REQUIRED"
	CodeBillingAddressRequired  = "BILLING_ADDRESS_REQUIRED"
	CodeUnknownTransporter      = "UNKNOWN_TRANSPORTER"

	CodeInvalidInvoiceValue  = "INVALID_INVOICE_VALUE"
	CodeInvalidRoundOff      = "INVALID_ROUND_OFF"
	CodePayableMismatch      = "PAYABLE_AMOUNT_MISMATCH"
	CodeInvalidCODAmount     = "INVALID_COD_AMOUNT"
	CodeNoItemDetails        = "NO_ITEM_DETAILS"

	CodeInvalidItemCode     = "INVALID_ITEM_CODE"
	CodeItemRefConflict     = "ITEM_REF_CONFLICT"
	CodeBatchPairIncomplete = "BATCH_PAIR_INCOMPLETE"
	CodeInvalidHSNCode      = "INVALID_HSN_CODE"
	CodeInvalidItemDetID    = "INVALID_ITEM_DET_ID"
	CodeInvalidBatchSerial  = "INVALID_BATCH_SERIAL"
	CodeInvalidQuantity     = "INVALID_QUANTITY"
	CodeInvalidItemRate     = "INVALID_ITEM_RATE"
	CodeGrossAmountMismatch = "GROSS_AMOUNT_MISMATCH"
	CodeNetAmountMismatch   = "NET_AMOUNT_MISMATCH"

	CodeInvalidTaxRegime       = "INVALID_TAX_REGIME"
	CodeTaxableAmountMismatch  = "TAXABLE_AMOUNT_MISMATCH"
	CodeTaxRateMismatch        = "TAX_RATE_MISMATCH"
	CodeTaxAmountMismatch      = "TAX_AMOUNT_MISMATCH"
	CodeGSTRatesNotZero        = "GST_RATES_NOT_ZERO"
	CodeInterstateRatesNotZero = "INTERSTATE_RATES_NOT_ZERO"
	CodeIGSTNotZeroLocal       = "IGST_NOT_ZERO_LOCAL"
	CodeCGSTAmountMismatch     = "CGST_AMOUNT_MISMATCH"
	CodeSGSTAmountMismatch     = "SGST_AMOUNT_MISMATCH"
	CodeIGSTAmountMismatch     = "IGST_AMOUNT_MISMATCH"
	CodeCessAmountMismatch     = "CESS_AMOUNT_MISMATCH"

	CodeInvalidEInvoiceFlag = "INVALID_E_INVOICE_FLAG"
	CodeInvalidIRN          = "INVALID_IRN"
	CodeInvalidAckNumber    = "INVALID_ACK_NUMBER"
	CodeQRDataTooLong       = "QR_DATA_TOO_LONG"
)

// AsRejection unwraps err into a *Rejection if it is one.
func AsRejection(err error) (*Rejection, bool) {
	var r *Rejection
	if errors.As(err, &r) {
		return r, true
	}
	return nil, false
}
