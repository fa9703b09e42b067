package validator

import "omsbridge/internal/domain"

// checkDelivery covers stage four: the billToShipToSame flag and the
// conditional address requirements.
func checkDelivery(sub *domain.InvoiceSubmission) *domain.Rejection {
	dd := sub.DeliveryDetails

	if dd.BillToShipToSame == nil || !dd.BillToShipToSame.IsValid() {
		return domain.Reject(domain.CodeInvalidBillToShipTo, "deliveryDetails.billToShipToSame",
			"Value for billToShipToSame is not from the accepted list [0, 1]")
	}

	if !dd.BillToShipToSame.Bool() {
		if dd.ShippingDetails == nil || dd.ShippingDetails.AddressDetails == nil {
			return domain.Reject(domain.CodeShippingAddressRequired, "deliveryDetails.shippingDetails.addressDetails",
				"Shipping address is required")
		}
	}

	if dd.BillingDetails != nil && dd.BillingDetails.AddressDetails == nil {
		return domain.Reject(domain.CodeBillingAddressRequired, "deliveryDetails.billingDetails.addressDetails",
			"Billing address is required")
	}

	return nil
}
