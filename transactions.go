package moneymoney

import (
	"time"
)

// Checkmark targets accepted by SetTransactionParams.WithCheckmark.
const (
	CheckmarkOn  = "on"
	CheckmarkOff = "off"
)

// ExportTransactionsParams filters an exportTransactions call. The start
// date is required; everything else is optional and omitted from the call
// payload when unset.
type ExportTransactionsParams struct {
	FromDate     Date    `json:"fromDate"`
	ToDate       *Date   `json:"toDate,omitempty"`
	FromAccount  *string `json:"fromAccount,omitempty"`
	FromCategory *string `json:"fromCategory,omitempty"`
}

// NewExportTransactionsParams filters transactions booked on or after
// fromDate.
func NewExportTransactionsParams(fromDate Date) ExportTransactionsParams {
	return ExportTransactionsParams{FromDate: fromDate}
}

// WithToDate bounds the export at toDate, inclusive.
func (p ExportTransactionsParams) WithToDate(toDate Date) ExportTransactionsParams {
	p.ToDate = &toDate
	return p
}

// WithFromAccount restricts the export to one account, identified by UUID,
// IBAN, account number or name.
func (p ExportTransactionsParams) WithFromAccount(account string) ExportTransactionsParams {
	p.FromAccount = &account
	return p
}

// WithFromCategory restricts the export to one category, identified by UUID
// or name.
func (p ExportTransactionsParams) WithFromCategory(category string) ExportTransactionsParams {
	p.FromCategory = &category
	return p
}

func (ExportTransactionsParams) Method() string { return "exportTransactions" }

func (p ExportTransactionsParams) args() interface{} { return p }

// Transaction is a single transaction record. Transactions are created by
// the application or via AddTransaction; the identifier is assigned
// remotely and must be looked up through an export before SetTransaction
// can reference it.
type Transaction struct {
	ID           uint64    `plist:"id" json:"id"`
	BookingDate  time.Time `plist:"bookingDate" json:"bookingDate"`
	ValueDate    time.Time `plist:"valueDate" json:"valueDate"`
	Name         string    `plist:"name" json:"name"`
	Purpose      string    `plist:"purpose" json:"purpose,omitempty"`
	Amount       float64   `plist:"amount" json:"amount"`
	Currency     string    `plist:"currency" json:"currency"`
	AccountUUID  UUID      `plist:"accountUuid" json:"accountUuid"`
	Booked       bool      `plist:"booked" json:"booked"`
	CategoryUUID UUID      `plist:"categoryUuid" json:"categoryUuid"`
	Checkmark    bool      `plist:"checkmark" json:"checkmark"`
	Comment      string    `plist:"comment" json:"comment,omitempty"`
}

// TransactionsResponse is the exportTransactions payload.
type TransactionsResponse struct {
	Creator      string        `plist:"creator" json:"creator"`
	Transactions []Transaction `plist:"transactions" json:"transactions"`
}

// AddTransactionParams describes a transaction to add to an offline
// account. Online banking accounts reject the call.
type AddTransactionParams struct {
	ToAccount string  `json:"toAccount"`
	OnDate    Date    `json:"onDate"`
	To        string  `json:"to"`
	Amount    float64 `json:"amount"`
	Purpose   *string `json:"purpose,omitempty"`
	Category  *string `json:"category,omitempty"`
}

// NewAddTransactionParams books amount against toAccount on onDate, with to
// naming the creditor for outgoing and the debtor for incoming amounts.
// Negative amounts are expenses.
func NewAddTransactionParams(toAccount string, onDate Date, to string, amount float64) AddTransactionParams {
	return AddTransactionParams{
		ToAccount: toAccount,
		OnDate:    onDate,
		To:        to,
		Amount:    amount,
	}
}

// WithPurpose sets the purpose text.
func (p AddTransactionParams) WithPurpose(purpose string) AddTransactionParams {
	p.Purpose = &purpose
	return p
}

// WithCategory assigns a category by UUID or name. Nested categories are
// separated with backslashes. Without one, MoneyMoney auto-categorizes.
func (p AddTransactionParams) WithCategory(category string) AddTransactionParams {
	p.Category = &category
	return p
}

func (AddTransactionParams) Method() string { return "addTransaction" }

func (p AddTransactionParams) args() interface{} { return p }

// SetTransactionParams updates properties of an existing transaction.
// At least one target should be set; the call is a no-op otherwise.
type SetTransactionParams struct {
	ID          uint64  `json:"id"`
	CheckmarkTo *string `json:"checkmarkTo,omitempty"`
	CategoryTo  *string `json:"categoryTo,omitempty"`
	CommentTo   *string `json:"commentTo,omitempty"`
}

// NewSetTransactionParams targets the transaction with the given remote
// identifier.
func NewSetTransactionParams(id uint64) SetTransactionParams {
	return SetTransactionParams{ID: id}
}

// WithCheckmark sets the reviewed flag to CheckmarkOn or CheckmarkOff.
func (p SetTransactionParams) WithCheckmark(value string) SetTransactionParams {
	p.CheckmarkTo = &value
	return p
}

// WithCategory reassigns the category by UUID or name. Nested categories
// are separated with backslashes.
func (p SetTransactionParams) WithCategory(category string) SetTransactionParams {
	p.CategoryTo = &category
	return p
}

// WithComment replaces the comment text.
func (p SetTransactionParams) WithComment(comment string) SetTransactionParams {
	p.CommentTo = &comment
	return p
}

func (SetTransactionParams) Method() string { return "setTransaction" }

func (p SetTransactionParams) args() interface{} { return p }
