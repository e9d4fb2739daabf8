package moneymoney

// Payment destination accepted by WithInto. By default MoneyMoney opens a
// payment window for confirmation; IntoOutbox saves the payment silently.
const IntoOutbox = "outbox"

// SEPA local instrument codes for bank transfers.
const (
	InstrumentTransfer = "TRF"
	InstrumentInstant  = "INST"
)

// SEPA local instrument codes for direct debits.
const (
	InstrumentCore = "CORE"
	InstrumentB2B  = "B2B"
)

// SEPA sequence codes for direct debits.
const (
	SequenceRecurring = "RCUR"
	SequenceFinal     = "FNAL"
	SequenceOneOff    = "OOFF"
)

// CreateBankTransferParams describes a SEPA bank transfer. Every field is
// optional at the type level; MoneyMoney itself rejects incomplete
// payments. The payment API is experimental and may change.
type CreateBankTransferParams struct {
	FromAccount       *string  `json:"fromAccount,omitempty"`
	To                *string  `json:"to,omitempty"`
	IBAN              *string  `json:"iban,omitempty"`
	BIC               *string  `json:"bic,omitempty"`
	Amount            *float64 `json:"amount,omitempty"`
	Purpose           *string  `json:"purpose,omitempty"`
	EndToEndReference *string  `json:"endtoendReference,omitempty"`
	PurposeCode       *string  `json:"purposeCode,omitempty"`
	InstrumentCode    *string  `json:"instrumentCode,omitempty"`
	ScheduledDate     *Date    `json:"scheduledDate,omitempty"`
	Into              *string  `json:"into,omitempty"`
}

// NewCreateBankTransferParams returns an empty parameter set.
func NewCreateBankTransferParams() CreateBankTransferParams {
	return CreateBankTransferParams{}
}

// WithFromAccount sets the source account (UUID, IBAN, account number or
// name).
func (p CreateBankTransferParams) WithFromAccount(account string) CreateBankTransferParams {
	p.FromAccount = &account
	return p
}

// WithTo sets the recipient name.
func (p CreateBankTransferParams) WithTo(name string) CreateBankTransferParams {
	p.To = &name
	return p
}

// WithIBAN sets the recipient IBAN.
func (p CreateBankTransferParams) WithIBAN(iban string) CreateBankTransferParams {
	p.IBAN = &iban
	return p
}

// WithBIC sets the recipient BIC.
func (p CreateBankTransferParams) WithBIC(bic string) CreateBankTransferParams {
	p.BIC = &bic
	return p
}

// WithAmount sets the transfer amount in Euro.
func (p CreateBankTransferParams) WithAmount(amount float64) CreateBankTransferParams {
	p.Amount = &amount
	return p
}

// WithPurpose sets the purpose text.
func (p CreateBankTransferParams) WithPurpose(purpose string) CreateBankTransferParams {
	p.Purpose = &purpose
	return p
}

// WithEndToEndReference sets the SEPA end-to-end reference.
func (p CreateBankTransferParams) WithEndToEndReference(ref string) CreateBankTransferParams {
	p.EndToEndReference = &ref
	return p
}

// WithPurposeCode sets the SEPA purpose code.
func (p CreateBankTransferParams) WithPurposeCode(code string) CreateBankTransferParams {
	p.PurposeCode = &code
	return p
}

// WithInstrumentCode sets the SEPA local instrument code,
// InstrumentTransfer or InstrumentInstant.
func (p CreateBankTransferParams) WithInstrumentCode(code string) CreateBankTransferParams {
	p.InstrumentCode = &code
	return p
}

// WithScheduledDate schedules the transfer for a later execution date.
func (p CreateBankTransferParams) WithScheduledDate(date Date) CreateBankTransferParams {
	p.ScheduledDate = &date
	return p
}

// WithInto routes the payment to a destination such as IntoOutbox instead
// of opening the payment window.
func (p CreateBankTransferParams) WithInto(destination string) CreateBankTransferParams {
	p.Into = &destination
	return p
}

func (CreateBankTransferParams) Method() string { return "createBankTransfer" }

func (p CreateBankTransferParams) args() interface{} { return p }

// CreateDirectDebitParams describes a SEPA direct debit order. Like bank
// transfers, every field is optional at the type level and the API is
// experimental.
type CreateDirectDebitParams struct {
	FromAccount       *string  `json:"fromAccount,omitempty"`
	For               *string  `json:"for,omitempty"`
	IBAN              *string  `json:"iban,omitempty"`
	BIC               *string  `json:"bic,omitempty"`
	Amount            *float64 `json:"amount,omitempty"`
	Purpose           *string  `json:"purpose,omitempty"`
	EndToEndReference *string  `json:"endtoendReference,omitempty"`
	PurposeCode       *string  `json:"purposeCode,omitempty"`
	InstrumentCode    *string  `json:"instrumentCode,omitempty"`
	SequenceCode      *string  `json:"sequenceCode,omitempty"`
	MandateReference  *string  `json:"mandateReference,omitempty"`
	MandateDate       *Date    `json:"mandateDate,omitempty"`
	ScheduledDate     *Date    `json:"scheduledDate,omitempty"`
	Into              *string  `json:"into,omitempty"`
}

// NewCreateDirectDebitParams returns an empty parameter set.
func NewCreateDirectDebitParams() CreateDirectDebitParams {
	return CreateDirectDebitParams{}
}

// WithFromAccount sets the creditor account (UUID, IBAN, account number or
// name).
func (p CreateDirectDebitParams) WithFromAccount(account string) CreateDirectDebitParams {
	p.FromAccount = &account
	return p
}

// WithFor sets the debtor name.
func (p CreateDirectDebitParams) WithFor(debtor string) CreateDirectDebitParams {
	p.For = &debtor
	return p
}

// WithIBAN sets the debtor IBAN.
func (p CreateDirectDebitParams) WithIBAN(iban string) CreateDirectDebitParams {
	p.IBAN = &iban
	return p
}

// WithBIC sets the debtor BIC.
func (p CreateDirectDebitParams) WithBIC(bic string) CreateDirectDebitParams {
	p.BIC = &bic
	return p
}

// WithAmount sets the debit amount in Euro.
func (p CreateDirectDebitParams) WithAmount(amount float64) CreateDirectDebitParams {
	p.Amount = &amount
	return p
}

// WithPurpose sets the purpose text.
func (p CreateDirectDebitParams) WithPurpose(purpose string) CreateDirectDebitParams {
	p.Purpose = &purpose
	return p
}

// WithEndToEndReference sets the SEPA end-to-end reference.
func (p CreateDirectDebitParams) WithEndToEndReference(ref string) CreateDirectDebitParams {
	p.EndToEndReference = &ref
	return p
}

// WithPurposeCode sets the SEPA purpose code.
func (p CreateDirectDebitParams) WithPurposeCode(code string) CreateDirectDebitParams {
	p.PurposeCode = &code
	return p
}

// WithInstrumentCode sets the SEPA local instrument code, InstrumentCore or
// InstrumentB2B.
func (p CreateDirectDebitParams) WithInstrumentCode(code string) CreateDirectDebitParams {
	p.InstrumentCode = &code
	return p
}

// WithSequenceCode sets the SEPA sequence code: SequenceRecurring,
// SequenceFinal or SequenceOneOff.
func (p CreateDirectDebitParams) WithSequenceCode(code string) CreateDirectDebitParams {
	p.SequenceCode = &code
	return p
}

// WithMandateReference sets the mandate reference.
func (p CreateDirectDebitParams) WithMandateReference(ref string) CreateDirectDebitParams {
	p.MandateReference = &ref
	return p
}

// WithMandateDate sets the mandate signature date.
func (p CreateDirectDebitParams) WithMandateDate(date Date) CreateDirectDebitParams {
	p.MandateDate = &date
	return p
}

// WithScheduledDate schedules the debit for a later execution date.
func (p CreateDirectDebitParams) WithScheduledDate(date Date) CreateDirectDebitParams {
	p.ScheduledDate = &date
	return p
}

// WithInto routes the order to a destination such as IntoOutbox instead of
// opening the payment window.
func (p CreateDirectDebitParams) WithInto(destination string) CreateDirectDebitParams {
	p.Into = &destination
	return p
}

func (CreateDirectDebitParams) Method() string { return "createDirectDebit" }

func (p CreateDirectDebitParams) args() interface{} { return p }
