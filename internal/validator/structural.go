package validator

import "omsbridge/internal/domain"

// checkStructural covers stage one: required top-level fields, the orderType
// enum, parent references for RETURN/EXCHANGE, and the erpOrderId /
// intgRefOrderId exclusivity rule.
func checkStructural(sub *domain.InvoiceSubmission) *domain.Rejection {
	required := []struct {
		field   string
		present bool
	}{
		{"transactionSiteCode", sub.TransactionSiteCode != ""},
		{"orderType", sub.OrderType != ""},
		{"intgInvoiceId", sub.IntgInvoiceID != ""},
		{"omsInvoiceNo", sub.OMSInvoiceNo != ""},
		{"omsInvoiceDate", sub.OMSInvoiceDate != ""},
		{"tradeGroup", sub.TradeGroup != ""},
		{"valueDetails", sub.ValueDetails != nil},
		{"deliveryDetails", sub.DeliveryDetails != nil},
		{"referenceNo", sub.ReferenceNo != ""},
		{"eInvoiceAppl", sub.EInvoiceAppl != nil},
	}
	for _, r := range required {
		if !r.present {
			return domain.Reject(domain.CodeFieldRequired, r.field, "%s is required", r.field)
		}
	}

	orderType := domain.OrderType(sub.OrderType)
	if !domain.ValidOrderTypes[orderType] {
		return domain.Reject(domain.CodeInvalidOrderType, "orderType", "Invalid orderType")
	}

	if orderType == domain.OrderTypeReturn || orderType == domain.OrderTypeExchange {
		if sub.ParentErpOrderID == "" && sub.ParentIntgRefOrderID == "" {
			return domain.Reject(domain.CodeParentOrderRequired, "parentErpOrderId",
				"parentErpOrderId or parentIntgRefOrderId is required for RETURN or EXCHANGE orders")
		}
	}

	if sub.ErpOrderID != "" && sub.IntgRefOrderID != "" {
		return domain.Reject(domain.CodeOrderRefConflict, "erpOrderId",
			"Both erpOrderId and intgRefOrderId cannot be present together")
	}

	if orderType == domain.OrderTypeReturn && sub.ParentIntgInvoiceID == nil {
		return domain.Reject(domain.CodeParentInvoiceRequired, "parentIntgInvoiceId",
			"parentIntgInvoiceId is required for RETURN order type")
	}

	return nil
}

// checkTradeGroup covers stage three: tradeGroup enum membership.
func checkTradeGroup(sub *domain.InvoiceSubmission) *domain.Rejection {
	if !domain.ValidTradeGroups[domain.TradeGroup(sub.TradeGroup)] {
		return domain.Reject(domain.CodeInvalidTradeGroup, "tradeGroup", "Invalid tradeGroup")
	}
	return nil
}
