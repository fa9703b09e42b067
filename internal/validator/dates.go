package validator

import (
	"fmt"
	"strings"
	"time"

	"omsbridge/internal/domain"
)

// parseDate tries the date formats seen across upstream OMS channels.
func parseDate(s string) (time.Time, error) {
	formats := []string{
		"2006-01-02",
		"02-01-2006",
		"02/01/2006",
		"2006/01/02",
		"02 Jan 2006",
		"2 Jan 2006",
		"2006-01-02 15:04:05",
		"02-01-2006 15:04:05",
		"2006-01-02T15:04:05Z07:00",
	}
	for _, f := range formats {
		if t, err := time.Parse(f, strings.TrimSpace(s)); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable date: %s", s)
}

// checkDates enforces temporal consistency: the OMS invoice date (and the
// channel invoice date, when present) may not precede the order date.
//
// In lenient mode an unparseable or missing date collapses to the zero time,
// an unbounded past, so a bad orderDate never blocks the document on its
// own. Strict mode rejects the first field that fails to parse.
func (e *Engine) checkDates(sub *domain.InvoiceSubmission) *domain.Rejection {
	if e.strictDates {
		for _, d := range []struct{ field, value string }{
			{"orderDate", sub.OrderDate},
			{"omsInvoiceDate", sub.OMSInvoiceDate},
			{"channelInvoiceDate", sub.ChannelInvoiceDate},
		} {
			if d.value == "" {
				// orderDate and channelInvoiceDate are optional;
				// a missing omsInvoiceDate never reaches this stage.
				continue
			}
			if _, err := parseDate(d.value); err != nil {
				return domain.Reject(domain.CodeUnparseableDate, d.field, "%s is not a parseable date", d.field)
			}
		}
	}

	orderDate := lenientDate(sub.OrderDate)
	omsDate := lenientDate(sub.OMSInvoiceDate)
	if omsDate.Before(orderDate) {
		return domain.Reject(domain.CodeInvoiceDateBeforeOrder, "omsInvoiceDate",
			"omsInvoiceDate cannot be earlier than orderDate")
	}
	if sub.ChannelInvoiceDate != "" {
		if lenientDate(sub.ChannelInvoiceDate).Before(orderDate) {
			return domain.Reject(domain.CodeChannelDateBeforeOrder, "channelInvoiceDate",
				"channelInvoiceDate cannot be earlier than orderDate")
		}
	}
	return nil
}

func lenientDate(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, err := parseDate(s)
	if err != nil {
		return time.Time{}
	}
	return t
}
