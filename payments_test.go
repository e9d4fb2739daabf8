package moneymoney

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreateBankTransferParamsEmpty(t *testing.T) {
	assert.Empty(t, jsonKeys(t, NewCreateBankTransferParams()))
}

func TestCreateBankTransferParamsWireNames(t *testing.T) {
	params := NewCreateBankTransferParams().
		WithFromAccount("Checking").
		WithTo("Jane Doe").
		WithIBAN("DE89370400440532013000").
		WithBIC("COBADEFFXXX").
		WithAmount(42.99).
		WithPurpose("Invoice 2024-17").
		WithEndToEndReference("E2E-17").
		WithPurposeCode("GDDS").
		WithInstrumentCode(InstrumentInstant).
		WithScheduledDate(NewDate(2024, 7, 1)).
		WithInto(IntoOutbox)

	m := jsonKeys(t, params)
	assert.Equal(t, map[string]interface{}{
		"fromAccount":       "Checking",
		"to":                "Jane Doe",
		"iban":              "DE89370400440532013000",
		"bic":               "COBADEFFXXX",
		"amount":            42.99,
		"purpose":           "Invoice 2024-17",
		"endtoendReference": "E2E-17",
		"purposeCode":       "GDDS",
		"instrumentCode":    "INST",
		"scheduledDate":     "2024-07-01",
		"into":              "outbox",
	}, m)
}

func TestCreateDirectDebitParamsWireNames(t *testing.T) {
	params := NewCreateDirectDebitParams().
		WithFromAccount("Business").
		WithFor("ACME GmbH").
		WithIBAN("DE02120300000000202051").
		WithAmount(199.00).
		WithSequenceCode(SequenceOneOff).
		WithInstrumentCode(InstrumentCore).
		WithMandateReference("MANDATE-9").
		WithMandateDate(NewDate(2023, 11, 5)).
		WithInto(IntoOutbox)

	m := jsonKeys(t, params)
	assert.Equal(t, "ACME GmbH", m["for"])
	assert.Equal(t, "OOFF", m["sequenceCode"])
	assert.Equal(t, "CORE", m["instrumentCode"])
	assert.Equal(t, "MANDATE-9", m["mandateReference"])
	assert.Equal(t, "2023-11-05", m["mandateDate"])
	assert.Equal(t, "outbox", m["into"])
	assert.NotContains(t, m, "scheduledDate")
	assert.NotContains(t, m, "bic")
	assert.NotContains(t, m, "purpose")
}

func TestPaymentMethodNames(t *testing.T) {
	assert.Equal(t, "createBankTransfer", NewCreateBankTransferParams().Method())
	assert.Equal(t, "createDirectDebit", NewCreateDirectDebitParams().Method())
}
