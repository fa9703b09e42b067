package validator_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"omsbridge/internal/domain"
	"omsbridge/internal/validator"
	"omsbridge/mocks"
)

func flagPtr(f domain.Flag) *domain.Flag { return &f }

func floatPtr(v float64) *float64 { return &v }

// validSubmission builds a submission that passes every check: a NEW local
// order with one GST line item whose figures reconcile exactly.
// qty 2 × rate 56.00 → gross 112.00, no charges → net 112.00,
// taxable 100.00 + tax 12.00 (CGST 6.00 + SGST 6.00) → net.
func validSubmission() *domain.InvoiceSubmission {
	return &domain.InvoiceSubmission{
		TransactionSiteCode: "SITE01",
		OrderType:           "NEW",
		IntgInvoiceID:       "INTG-INV-1",
		OMSInvoiceNo:        "OMS-1001",
		OMSInvoiceDate:      "2024-01-02",
		OrderDate:           "2024-01-01",
		TradeGroup:          "LOCAL",
		ReferenceNo:         "REF-1",
		IntgRefOrderID:      "ORD-1",
		EInvoiceAppl:        flagPtr(domain.FlagNo),
		ValueDetails: &domain.ValueDetails{
			InvoiceValue:         112.00,
			InvoiceRoundOff:      floatPtr(0),
			InvoicePayableAmount: 112.00,
			CODAmount:            0,
		},
		DeliveryDetails: &domain.DeliveryDetails{
			BillToShipToSame: flagPtr(domain.FlagYes),
			TransporterID:    "TRANSP1",
			ItemDetails: []domain.ItemDetail{
				{
					ItemCode:         "SKU-1",
					HSNSACCode:       "640220",
					IntgInvoiceDetID: "DET-1",
					BatchSerialNo:    "BATCH-1",
					InvoiceQuantity:  2,
					ItemRate:         56.00,
					GrossAmount:      112.00,
					NetAmount:        112.00,
					ItemTaxDetails: &domain.ItemTaxDetails{
						TaxRegime:     "G",
						TaxableAmount: 100.00,
						TaxRate:       12,
						TaxAmount:     12.00,
						CGSTRate:      6,
						CGSTAmount:    6.00,
						SGSTRate:      6,
						SGSTAmount:    6.00,
					},
				},
			},
		},
	}
}

// newEngine returns an engine whose transporter registry accepts every id.
func newEngine(t *testing.T, opts ...validator.Option) *validator.Engine {
	t.Helper()
	reg := new(mocks.MockTransporterRegistry)
	reg.On("Resolve", mock.Anything, mock.Anything).Return(true, nil).Maybe()
	return validator.NewEngine(reg, new(mocks.MockLedgerSink), opts...)
}

// check runs the validation stages without touching the ledger.
func check(t *testing.T, sub *domain.InvoiceSubmission, opts ...validator.Option) error {
	t.Helper()
	return newEngine(t, opts...).Check(context.Background(), sub)
}

// requireRejection asserts the error is a rejection with the given code.
func requireRejection(t *testing.T, err error, code string) *domain.Rejection {
	t.Helper()
	require.Error(t, err)
	rej, ok := domain.AsRejection(err)
	require.True(t, ok, "expected a rejection, got %v", err)
	assert.Equal(t, code, rej.Code)
	return rej
}

func TestValidate_AcceptsAndSubmits(t *testing.T) {
	sub := validSubmission()

	reg := new(mocks.MockTransporterRegistry)
	reg.On("Resolve", mock.Anything, "TRANSP1").Return(true, nil)
	sink := new(mocks.MockLedgerSink)
	sink.On("Submit", mock.Anything, sub).Return("GIN-2024-0001", nil)

	e := validator.NewEngine(reg, sink)
	result, err := e.Validate(context.Background(), sub)

	require.NoError(t, err)
	assert.Equal(t, "GIN-2024-0001", result.InvoiceNumber)
	reg.AssertExpectations(t)
	sink.AssertExpectations(t)
}

func TestValidate_RejectionNeverReachesLedger(t *testing.T) {
	sub := validSubmission()
	sub.TradeGroup = "" // fails the structural stage

	reg := new(mocks.MockTransporterRegistry)
	sink := new(mocks.MockLedgerSink)
	e := validator.NewEngine(reg, sink)

	_, err := e.Validate(context.Background(), sub)
	requireRejection(t, err, domain.CodeFieldRequired)

	reg.AssertNotCalled(t, "Resolve", mock.Anything, mock.Anything)
	sink.AssertNotCalled(t, "Submit", mock.Anything, mock.Anything)
}

func TestValidate_SubmitFailureIsNotARejection(t *testing.T) {
	sub := validSubmission()

	reg := new(mocks.MockTransporterRegistry)
	reg.On("Resolve", mock.Anything, "TRANSP1").Return(true, nil)
	sink := new(mocks.MockLedgerSink)
	sink.On("Submit", mock.Anything, sub).Return("", errors.New("erp unavailable"))

	e := validator.NewEngine(reg, sink)
	_, err := e.Validate(context.Background(), sub)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSubmissionFailed)
	_, isRejection := domain.AsRejection(err)
	assert.False(t, isRejection)
}

func TestCheck_ValidSubmissionPasses(t *testing.T) {
	assert.NoError(t, check(t, validSubmission()))
}

// With several invalid fields, only the first stage's violation is ever
// reported.
func TestCheck_FirstViolationWins(t *testing.T) {
	sub := validSubmission()
	sub.OrderType = "BOGUS"                                        // structural
	sub.TradeGroup = "OFFSHORE"                                    // trade group
	sub.ValueDetails.InvoiceValue = -1                             // value
	sub.DeliveryDetails.ItemDetails[0].GrossAmount = 999.99        // item
	sub.DeliveryDetails.ItemDetails[0].ItemTaxDetails.IGSTRate = 5 // tax

	requireRejection(t, check(t, sub), domain.CodeInvalidOrderType)
}

// The same input yields the same single rejection on every run.
func TestCheck_Deterministic(t *testing.T) {
	sub := validSubmission()
	sub.DeliveryDetails.ItemDetails[0].ItemTaxDetails.TaxableAmount = 99.00

	first := requireRejection(t, check(t, sub), domain.CodeTaxableAmountMismatch)
	second := requireRejection(t, check(t, sub), domain.CodeTaxableAmountMismatch)
	assert.Equal(t, first, second)
}

func TestCheck_UnknownTransporter(t *testing.T) {
	reg := new(mocks.MockTransporterRegistry)
	reg.On("Resolve", mock.Anything, "TRANSP1").Return(false, nil)
	e := validator.NewEngine(reg, new(mocks.MockLedgerSink))

	err := e.Check(context.Background(), validSubmission())
	rej := requireRejection(t, err, domain.CodeUnknownTransporter)
	assert.Equal(t, "Value does not exist in the integration master mapping or is not valid", rej.Message)
}

func TestCheck_TransporterLookupFailure(t *testing.T) {
	reg := new(mocks.MockTransporterRegistry)
	reg.On("Resolve", mock.Anything, "TRANSP1").Return(false, errors.New("db down"))
	e := validator.NewEngine(reg, new(mocks.MockLedgerSink))

	err := e.Check(context.Background(), validSubmission())
	require.Error(t, err)
	_, isRejection := domain.AsRejection(err)
	assert.False(t, isRejection, "infrastructure failures are not rejections")
}

// The transporter stage runs after delivery checks and before value checks.
func TestCheck_TransporterStageOrdering(t *testing.T) {
	t.Run("delivery_rejection_skips_lookup", func(t *testing.T) {
		reg := new(mocks.MockTransporterRegistry)
		e := validator.NewEngine(reg, new(mocks.MockLedgerSink))

		sub := validSubmission()
		sub.DeliveryDetails.BillToShipToSame = nil
		requireRejection(t, e.Check(context.Background(), sub), domain.CodeInvalidBillToShipTo)
		reg.AssertNotCalled(t, "Resolve", mock.Anything, mock.Anything)
	})

	t.Run("unknown_transporter_beats_value_rejection", func(t *testing.T) {
		reg := new(mocks.MockTransporterRegistry)
		reg.On("Resolve", mock.Anything, "TRANSP1").Return(false, nil)
		e := validator.NewEngine(reg, new(mocks.MockLedgerSink))

		sub := validSubmission()
		sub.ValueDetails.InvoiceValue = -1
		requireRejection(t, e.Check(context.Background(), sub), domain.CodeUnknownTransporter)
	})
}
