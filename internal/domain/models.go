package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// InvoiceSubmission is the root document posted by the OMS for ERP ingestion.
// Optional fields that need a present/absent distinction are pointers; the
// zero value of a plain field counts as absent, matching the upstream
// contract where empty and missing are equivalent.
type InvoiceSubmission struct {
	TransactionSiteCode string `json:"transactionSiteCode"`
	OrderType           string `json:"orderType"`
	IntgInvoiceID       string `json:"intgInvoiceId"`
	OMSInvoiceNo        string `json:"omsInvoiceNo"`
	OMSInvoiceDate      string `json:"omsInvoiceDate"`
	ChannelInvoiceDate  string `json:"channelInvoiceDate,omitempty"`
	OrderDate           string `json:"orderDate,omitempty"`
	TradeGroup          string `json:"tradeGroup"`
	ReferenceNo         string `json:"referenceNo"`

	ErpOrderID     string `json:"erpOrderId,omitempty"`
	IntgRefOrderID string `json:"intgRefOrderId,omitempty"`

	ParentErpOrderID     string  `json:"parentErpOrderId,omitempty"`
	ParentIntgRefOrderID string  `json:"parentIntgRefOrderId,omitempty"`
	ParentIntgInvoiceID  *string `json:"parentIntgInvoiceId,omitempty"`

	EInvoiceAppl *Flag `json:"eInvoiceAppl"`

	ValueDetails    *ValueDetails    `json:"valueDetails"`
	DeliveryDetails *DeliveryDetails `json:"deliveryDetails"`
	EInvoiceDetails *EInvoiceDetails `json:"eInvoiceDetails,omitempty"`
}

// ValueDetails carries invoice-level monetary figures.
type ValueDetails struct {
	InvoiceValue         float64  `json:"invoiceValue"`
	InvoiceRoundOff      *float64 `json:"invoiceRoundOff"`
	InvoicePayableAmount float64  `json:"invoicePayableAmount"`
	CODAmount            float64  `json:"codAmount"`
}

// DeliveryDetails carries address blocks, the transporter reference, and
// the line items of the invoice.
type DeliveryDetails struct {
	BillToShipToSame *Flag         `json:"billToShipToSame"`
	ShippingDetails  *PartyDetails `json:"shippingDetails,omitempty"`
	BillingDetails   *PartyDetails `json:"billingDetails,omitempty"`
	TransporterID    string        `json:"transporterId"`
	ItemDetails      []ItemDetail  `json:"itemDetails"`
}

// PartyDetails wraps an address block for the shipping or billing side.
type PartyDetails struct {
	Name           string          `json:"name,omitempty"`
	Phone          string          `json:"phone,omitempty"`
	Email          string          `json:"email,omitempty"`
	AddressDetails *AddressDetails `json:"addressDetails,omitempty"`
}

// AddressDetails is a postal address.
type AddressDetails struct {
	AddressLine1 string `json:"addressLine1"`
	AddressLine2 string `json:"addressLine2,omitempty"`
	City         string `json:"city"`
	State        string `json:"state"`
	Pincode      string `json:"pincode"`
	Country      string `json:"country,omitempty"`
}

// ItemDetail is a single invoice line item.
type ItemDetail struct {
	ItemCode          string     `json:"itemCode"`
	ErpOrderDetID     string     `json:"erpOrderDetId,omitempty"`
	IntgRefOrderDetID string     `json:"intgRefOrderDetId,omitempty"`
	IntgBatchID       string     `json:"intgBatchId,omitempty"`
	IntgBatchDetID    string     `json:"intgBatchDetId,omitempty"`
	HSNSACCode        NumericStr `json:"hsnsacCode"`
	IntgInvoiceDetID  string     `json:"intgInvoiceDetId"`
	BatchSerialNo     string     `json:"batchSerialNo"`

	InvoiceQuantity   float64            `json:"invoiceQuantity"`
	ItemRate          float64            `json:"itemRate"`
	GrossAmount       float64            `json:"grossAmount"`
	ApplicableCharges *ApplicableCharges `json:"applicableCharges,omitempty"`
	NetAmount         float64            `json:"netAmount"`

	ItemTaxDetails *ItemTaxDetails `json:"itemTaxDetails"`
}

// ApplicableCharges are signed adjustments between gross and net amount.
// Absent charges default to zero.
type ApplicableCharges struct {
	ItemDiscount   float64 `json:"itemDiscount"`
	CODCharge      float64 `json:"codCharge"`
	GiftWrapCharge float64 `json:"giftWrapCharge"`
	ShippingCharge float64 `json:"shippingCharge"`
	OtherCharges   float64 `json:"otherCharges"`
}

// ItemTaxDetails carries the per-item tax breakup.
type ItemTaxDetails struct {
	TaxRegime     string  `json:"taxRegime"`
	TaxableAmount float64 `json:"taxableAmount"`
	TaxRate       float64 `json:"taxRate"`
	TaxAmount     float64 `json:"taxAmount"`
	CGSTRate      float64 `json:"cgstRate"`
	CGSTAmount    float64 `json:"cgstAmount"`
	SGSTRate      float64 `json:"sgstRate"`
	SGSTAmount    float64 `json:"sgstAmount"`
	IGSTRate      float64 `json:"igstRate"`
	IGSTAmount    float64 `json:"igstAmount"`
	CessRate      float64 `json:"cessRate"`
	CessAmount    float64 `json:"cessAmount"`
}

// EInvoiceDetails is the e-invoice compliance block, mandatory when
// eInvoiceAppl = 1.
type EInvoiceDetails struct {
	IRNNumber  string `json:"irnNumber"`
	AckNumber  string `json:"ackNumber"`
	AckDate    string `json:"ackDate,omitempty"`
	QRCodeData string `json:"qrCodeData"`
}

// NumericStr accepts either a JSON number or a JSON string and keeps the
// raw text. Upstream systems are inconsistent about quoting numeric codes.
type NumericStr string

func (n *NumericStr) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*n = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*n = NumericStr(s)
		return nil
	}
	var num json.Number
	if err := json.Unmarshal(data, &num); err != nil {
		return fmt.Errorf("hsnsacCode: %w", err)
	}
	*n = NumericStr(num.String())
	return nil
}

// CompletedOrder is the order document forwarded to the ERP once an order
// is completed on the commerce side.
type CompletedOrder struct {
	OrderID string      `json:"order_id"`
	Total   float64     `json:"total"`
	Items   []OrderLine `json:"items"`
}

// OrderLine is a product/quantity pair on a completed order.
type OrderLine struct {
	ProductID string  `json:"product_id"`
	Quantity  float64 `json:"quantity"`
}

// StockLevel is a single inventory record pulled from the ERP.
type StockLevel struct {
	ProductID     string  `json:"product_id"`
	StockQuantity float64 `json:"stock_quantity"`
}
