package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"omsbridge/internal/domain"
	"omsbridge/internal/validator"
)

func TestCheck_DateOrdering(t *testing.T) {
	t.Run("invoice_before_order", func(t *testing.T) {
		sub := validSubmission()
		sub.OrderDate = "2024-01-10"
		sub.OMSInvoiceDate = "2024-01-09"
		rej := requireRejection(t, check(t, sub), domain.CodeInvoiceDateBeforeOrder)
		assert.Equal(t, "omsInvoiceDate cannot be earlier than orderDate", rej.Message)
	})

	t.Run("same_day_passes", func(t *testing.T) {
		sub := validSubmission()
		sub.OrderDate = "2024-01-10"
		sub.OMSInvoiceDate = "2024-01-10"
		assert.NoError(t, check(t, sub))
	})

	t.Run("channel_before_order", func(t *testing.T) {
		sub := validSubmission()
		sub.ChannelInvoiceDate = "2023-12-31"
		requireRejection(t, check(t, sub), domain.CodeChannelDateBeforeOrder)
	})

	t.Run("channel_absent_is_skipped", func(t *testing.T) {
		sub := validSubmission()
		sub.ChannelInvoiceDate = ""
		assert.NoError(t, check(t, sub))
	})
}

func TestCheck_DateFormats(t *testing.T) {
	// The same calendar day in each accepted channel format.
	for _, date := range []string{
		"2024-01-02",
		"02-01-2024",
		"02/01/2024",
		"2024/01/02",
		"02 Jan 2024",
		"2 Jan 2024",
		"2024-01-02 10:30:00",
		"2024-01-02T10:30:00Z",
	} {
		sub := validSubmission()
		sub.OMSInvoiceDate = date
		assert.NoError(t, check(t, sub), "format %q", date)
	}
}

// In lenient mode an unparseable date collapses to an unbounded past, so
// garbage in orderDate never blocks the document, while garbage in
// omsInvoiceDate makes it earlier than any real orderDate.
func TestCheck_LenientDates(t *testing.T) {
	t.Run("garbage_order_date_passes", func(t *testing.T) {
		sub := validSubmission()
		sub.OrderDate = "not-a-date"
		assert.NoError(t, check(t, sub))
	})

	t.Run("garbage_invoice_date_fails_ordering", func(t *testing.T) {
		sub := validSubmission()
		sub.OMSInvoiceDate = "not-a-date"
		requireRejection(t, check(t, sub), domain.CodeInvoiceDateBeforeOrder)
	})

	t.Run("both_garbage_passes", func(t *testing.T) {
		sub := validSubmission()
		sub.OrderDate = "not-a-date"
		sub.OMSInvoiceDate = "also-not-a-date"
		assert.NoError(t, check(t, sub))
	})
}

func TestCheck_StrictDates(t *testing.T) {
	t.Run("garbage_order_date_rejected", func(t *testing.T) {
		sub := validSubmission()
		sub.OrderDate = "not-a-date"
		rej := requireRejection(t, check(t, sub, validator.WithStrictDates()), domain.CodeUnparseableDate)
		assert.Equal(t, "orderDate", rej.Field)
	})

	t.Run("garbage_invoice_date_rejected", func(t *testing.T) {
		sub := validSubmission()
		sub.OMSInvoiceDate = "31-31-2024"
		rej := requireRejection(t, check(t, sub, validator.WithStrictDates()), domain.CodeUnparseableDate)
		assert.Equal(t, "omsInvoiceDate", rej.Field)
	})

	t.Run("absent_channel_date_still_skipped", func(t *testing.T) {
		sub := validSubmission()
		sub.ChannelInvoiceDate = ""
		assert.NoError(t, check(t, sub, validator.WithStrictDates()))
	})

	t.Run("valid_dates_pass", func(t *testing.T) {
		assert.NoError(t, check(t, validSubmission(), validator.WithStrictDates()))
	})
}
