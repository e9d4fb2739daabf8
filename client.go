// Package moneymoney is a typed client for the MoneyMoney macOS
// application's AppleScript automation interface.
//
// Every operation issues exactly one blocking round trip to the
// application: the request is packaged as a {method, args} envelope,
// executed through an OSA JavaScript runner, and the property-list response
// is decoded into typed records. The package holds no session or shared
// state; a Client is safe for concurrent use as long as its Engine is.
package moneymoney

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"howett.net/plist"

	"github.com/gronke/go-moneymoney/pkg/osascript"
)

// DefaultApplication is the automation target MoneyMoney registers under.
const DefaultApplication = "MoneyMoney"

// Engine executes a JavaScript snippet with $params bound to the JSON
// encoding of params and decodes the script's JSON-encoded return value
// into out. pkg/osascript provides the production implementation.
type Engine interface {
	Execute(ctx context.Context, src string, params, out interface{}) error
}

// Action is one of the closed set of MoneyMoney operations, pairing a
// method name with its argument payload. All implementations live in this
// package; the payload always matches the method by construction.
type Action interface {
	// Method returns the AppleScript method name the action invokes.
	Method() string

	args() interface{}
}

// scriptCall is the outbound envelope handed to the scripting engine. Args
// is dropped entirely for operations without arguments; MoneyMoney treats
// an explicit null differently from an absent argument object.
type scriptCall struct {
	Method string      `json:"method"`
	Args   interface{} `json:"args,omitempty"`
}

func newScriptCall(a Action) scriptCall {
	return scriptCall{Method: a.Method(), Args: a.args()}
}

type exportAccountsAction struct{}

func (exportAccountsAction) Method() string    { return "exportAccounts" }
func (exportAccountsAction) args() interface{} { return nil }

type exportCategoriesAction struct{}

func (exportCategoriesAction) Method() string    { return "exportCategories" }
func (exportCategoriesAction) args() interface{} { return nil }

// Client drives the MoneyMoney application. The zero value is not usable;
// construct one with New.
type Client struct {
	engine Engine
	app    string
}

// Option configures a Client.
type Option func(*Client)

// WithEngine replaces the osascript-backed engine, primarily for tests.
func WithEngine(e Engine) Option {
	return func(c *Client) { c.engine = e }
}

// WithApplication overrides the automation target name. Beta builds of
// MoneyMoney register under a different name than the release version.
func WithApplication(name string) Option {
	return func(c *Client) { c.app = name }
}

// New returns a Client talking to the MoneyMoney application through
// osascript.
func New(opts ...Option) *Client {
	c := &Client{
		engine: osascript.NewRunner(),
		app:    DefaultApplication,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Execute performs a raw call and returns the property-list payload as
// delivered by the application. The second return reports whether a payload
// was present at all; fire-and-forget operations legitimately produce none.
func (c *Client) Execute(ctx context.Context, a Action) (string, bool, error) {
	src := fmt.Sprintf(`
	if ($params.args) {
		$params.args["as"] = "plist";
	}
	return Application(%q)[$params.method]($params.args || []);`, c.app)

	var payload *string
	if err := c.engine.Execute(ctx, src, newScriptCall(a), &payload); err != nil {
		return "", false, &ScriptError{Method: a.Method(), Err: err}
	}
	if payload == nil {
		return "", false, nil
	}
	return *payload, true, nil
}

// export runs a and decodes the property-list payload into out. Absence of
// a payload is reported as ErrEmptyResponse, distinct from a payload that
// fails to parse.
func (c *Client) export(ctx context.Context, a Action, out interface{}) error {
	raw, ok, err := c.Execute(ctx, a)
	if err != nil {
		return err
	}
	if !ok || strings.TrimSpace(raw) == "" {
		return ErrEmptyResponse
	}
	if _, err := plist.Unmarshal([]byte(raw), out); err != nil {
		return &DecodeError{Method: a.Method(), Err: err}
	}
	return nil
}

// acknowledge runs an operation that returns no business data. The wrapped
// script reports a boolean outcome; anything but true is treated as a
// failed call.
func (c *Client) acknowledge(ctx context.Context, a Action) error {
	src := fmt.Sprintf(`
	Application(%q)[$params.method]($params.args || {});
	return true;`, c.app)

	var ok bool
	if err := c.engine.Execute(ctx, src, newScriptCall(a), &ok); err != nil {
		return &ScriptError{Method: a.Method(), Err: err}
	}
	if !ok {
		return &ScriptError{Method: a.Method(), Err: errors.New("call was not acknowledged")}
	}
	return nil
}

// ExportAccounts retrieves all accounts, including account groups, with
// their current balances.
func (c *Client) ExportAccounts(ctx context.Context) ([]Account, error) {
	var accounts []Account
	if err := c.export(ctx, exportAccountsAction{}, &accounts); err != nil {
		return nil, err
	}
	return accounts, nil
}

// ExportCategories retrieves all categories, including category groups,
// with their budgets.
func (c *Client) ExportCategories(ctx context.Context) ([]Category, error) {
	var categories []Category
	if err := c.export(ctx, exportCategoriesAction{}, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// ExportTransactions retrieves the transaction history matching params.
func (c *Client) ExportTransactions(ctx context.Context, params ExportTransactionsParams) (*TransactionsResponse, error) {
	var resp TransactionsResponse
	if err := c.export(ctx, params, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ExportPortfolio retrieves securities holdings matching params.
func (c *Client) ExportPortfolio(ctx context.Context, params ExportPortfolioParams) (*PortfolioResponse, error) {
	var resp PortfolioResponse
	if err := c.export(ctx, params, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// AddTransaction adds a transaction to an offline account. The transaction
// identifier is assigned by MoneyMoney and must be looked up via
// ExportTransactions before the transaction can be modified.
func (c *Client) AddTransaction(ctx context.Context, params AddTransactionParams) error {
	return c.acknowledge(ctx, params)
}

// SetTransaction updates the checkmark, category or comment of an existing
// transaction.
func (c *Client) SetTransaction(ctx context.Context, params SetTransactionParams) error {
	return c.acknowledge(ctx, params)
}

// CreateBankTransfer creates a SEPA bank transfer. The returned values are
// loosely typed; the payment API is experimental on the MoneyMoney side.
func (c *Client) CreateBankTransfer(ctx context.Context, params CreateBankTransferParams) ([]interface{}, error) {
	var out []interface{}
	if err := c.export(ctx, params, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateDirectDebit creates a SEPA direct debit order. See
// CreateBankTransfer for the result shape.
func (c *Client) CreateDirectDebit(ctx context.Context, params CreateDirectDebitParams) ([]interface{}, error) {
	var out []interface{}
	if err := c.export(ctx, params, &out); err != nil {
		return nil, err
	}
	return out, nil
}
