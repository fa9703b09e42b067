package validator

import (
	"fmt"
	"regexp"

	"omsbridge/internal/domain"
	"omsbridge/internal/money"
)

var numericPattern = regexp.MustCompile(`^\d+$`)

// checkItems covers stages seven and eight: the item list must be non-empty,
// and each item is validated in order. The first failing item rejects the
// whole document; later items are never inspected.
func checkItems(sub *domain.InvoiceSubmission) *domain.Rejection {
	items := sub.DeliveryDetails.ItemDetails
	if len(items) == 0 {
		return domain.Reject(domain.CodeNoItemDetails, "deliveryDetails.itemDetails",
			"At least one item detail is required")
	}

	tradeGroup := domain.TradeGroup(sub.TradeGroup)
	for i := range items {
		prefix := fmt.Sprintf("deliveryDetails.itemDetails[%d]", i)
		if rej := checkItem(prefix, tradeGroup, &items[i]); rej != nil {
			return rej
		}
	}
	return nil
}

func checkItem(prefix string, tradeGroup domain.TradeGroup, item *domain.ItemDetail) *domain.Rejection {
	if rej := checkItemIdentity(prefix, item); rej != nil {
		return rej
	}
	if rej := checkItemAmounts(prefix, item); rej != nil {
		return rej
	}
	return checkItemTax(prefix, tradeGroup, item)
}

// checkItemIdentity covers stage 8a: identity fields, reference exclusivity,
// and batch pairing.
func checkItemIdentity(prefix string, item *domain.ItemDetail) *domain.Rejection {
	if item.ItemCode == "" {
		return domain.Reject(domain.CodeInvalidItemCode, prefix+".itemCode", "Invalid or missing itemCode")
	}
	if item.ErpOrderDetID != "" && item.IntgRefOrderDetID != "" {
		return domain.Reject(domain.CodeItemRefConflict, prefix+".erpOrderDetId",
			"Both erpOrderDetId and intgRefOrderDetId cannot be present together")
	}
	if item.IntgBatchID != "" && item.IntgBatchDetID == "" {
		return domain.Reject(domain.CodeBatchPairIncomplete, prefix+".intgBatchDetId",
			"intgBatchDetId is required when intgBatchId is present")
	}
	if item.IntgBatchDetID != "" && item.IntgBatchID == "" {
		return domain.Reject(domain.CodeBatchPairIncomplete, prefix+".intgBatchId",
			"intgBatchId is required when intgBatchDetId is present")
	}
	if item.HSNSACCode == "" || !numericPattern.MatchString(string(item.HSNSACCode)) {
		return domain.Reject(domain.CodeInvalidHSNCode, prefix+".hsnsacCode", "Invalid or missing hsnsacCode")
	}
	if item.IntgInvoiceDetID == "" {
		return domain.Reject(domain.CodeInvalidItemDetID, prefix+".intgInvoiceDetId",
			"Invalid or missing intgInvoiceDetId")
	}
	if item.BatchSerialNo == "" {
		return domain.Reject(domain.CodeInvalidBatchSerial, prefix+".batchSerialNo",
			"Invalid or missing batchSerialNo")
	}
	return nil
}

// checkItemAmounts covers stages 8b–8d: quantity and rate positivity, then
// the gross and net derivations with half-away-from-zero rounding. The net
// check starts from the submitted gross amount, not the recomputed one, so
// each rule flags exactly one field.
func checkItemAmounts(prefix string, item *domain.ItemDetail) *domain.Rejection {
	if item.InvoiceQuantity <= 0 {
		return domain.Reject(domain.CodeInvalidQuantity, prefix+".invoiceQuantity",
			"Invalid or missing invoiceQuantity")
	}
	if item.ItemRate <= 0 {
		return domain.Reject(domain.CodeInvalidItemRate, prefix+".itemRate", "Invalid or missing itemRate")
	}

	expectedGross := money.RoundHalfAwayFromZero(money.Mul(item.InvoiceQuantity, item.ItemRate))
	if item.GrossAmount == 0 || !money.Equal(item.GrossAmount, expectedGross) {
		return domain.Reject(domain.CodeGrossAmountMismatch, prefix+".grossAmount",
			"Invalid or incorrect grossAmount")
	}

	charges := item.ApplicableCharges
	if charges == nil {
		charges = &domain.ApplicableCharges{}
	}
	expectedNet := money.RoundHalfAwayFromZero(
		money.FromFloat(item.GrossAmount).
			Sub(money.FromFloat(charges.ItemDiscount)).
			Add(money.FromFloat(charges.CODCharge)).
			Add(money.FromFloat(charges.GiftWrapCharge)).
			Add(money.FromFloat(charges.ShippingCharge)).
			Add(money.FromFloat(charges.OtherCharges)))
	if item.NetAmount == 0 || !money.Equal(item.NetAmount, expectedNet) {
		return domain.Reject(domain.CodeNetAmountMismatch, prefix+".netAmount",
			"Invalid or incorrect netAmount")
	}

	return nil
}
