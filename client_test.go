package moneymoney

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubEngine records the script and params of the last call and feeds a
// canned result back through the JSON decode path the real runner uses.
type stubEngine struct {
	script string
	params interface{}
	result interface{}
	err    error
}

func (s *stubEngine) Execute(ctx context.Context, src string, params, out interface{}) error {
	s.script = src
	s.params = params
	if s.err != nil {
		return s.err
	}
	if s.result == nil {
		return nil
	}
	data, err := json.Marshal(s.result)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, out)
}

func (s *stubEngine) sentArgs(t *testing.T) map[string]interface{} {
	t.Helper()
	data, err := json.Marshal(s.params)
	require.NoError(t, err)
	var envelope struct {
		Method string                 `json:"method"`
		Args   map[string]interface{} `json:"args"`
	}
	require.NoError(t, json.Unmarshal(data, &envelope))
	return envelope.Args
}

func TestActionMethodNamesAreTotalAndDistinct(t *testing.T) {
	actions := []Action{
		exportAccountsAction{},
		exportCategoriesAction{},
		ExportTransactionsParams{},
		ExportPortfolioParams{},
		AddTransactionParams{},
		SetTransactionParams{},
		CreateBankTransferParams{},
		CreateDirectDebitParams{},
	}
	seen := map[string]bool{}
	for _, a := range actions {
		name := a.Method()
		assert.NotEmpty(t, name)
		assert.False(t, seen[name], "duplicate method name %q", name)
		seen[name] = true
	}
}

func TestEnvelopeOmitsArgsForArglessActions(t *testing.T) {
	data, err := json.Marshal(newScriptCall(exportAccountsAction{}))
	require.NoError(t, err)
	assert.JSONEq(t, `{"method":"exportAccounts"}`, string(data))

	data, err = json.Marshal(newScriptCall(exportCategoriesAction{}))
	require.NoError(t, err)
	assert.JSONEq(t, `{"method":"exportCategories"}`, string(data))
}

func TestEnvelopeCarriesArgsForParameterizedActions(t *testing.T) {
	call := newScriptCall(NewExportTransactionsParams(NewDate(2024, 1, 1)))
	data, err := json.Marshal(call)
	require.NoError(t, err)
	assert.JSONEq(t, `{"method":"exportTransactions","args":{"fromDate":"2024-01-01"}}`, string(data))
}

func TestClientScriptTargetsApplication(t *testing.T) {
	engine := &stubEngine{result: accountsFixture}
	client := New(WithEngine(engine), WithApplication("MoneyMoney Beta"))

	_, err := client.ExportAccounts(context.Background())
	require.NoError(t, err)
	assert.Contains(t, engine.script, `Application("MoneyMoney Beta")`)
	assert.Contains(t, engine.script, `$params.args["as"] = "plist"`)
}

func TestClientExportTransactions(t *testing.T) {
	engine := &stubEngine{result: transactionsFixture}
	client := New(WithEngine(engine))

	resp, err := client.ExportTransactions(context.Background(),
		NewExportTransactionsParams(NewDate(2024, 1, 1)))
	require.NoError(t, err)

	args := engine.sentArgs(t)
	assert.Equal(t, map[string]interface{}{"fromDate": "2024-01-01"}, args)

	require.Len(t, resp.Transactions, 1)
	tx := resp.Transactions[0]
	assert.Equal(t, -4.5, tx.Amount)
	assert.Equal(t, "EUR", tx.Currency)
	assert.True(t, tx.Booked)
}

func TestClientExportAccountsEmptyPayload(t *testing.T) {
	client := New(WithEngine(&stubEngine{}))

	_, err := client.ExportAccounts(context.Background())
	assert.ErrorIs(t, err, ErrEmptyResponse)

	client = New(WithEngine(&stubEngine{result: "   "}))
	_, err = client.ExportAccounts(context.Background())
	assert.ErrorIs(t, err, ErrEmptyResponse)
}

func TestClientExportCategories(t *testing.T) {
	client := New(WithEngine(&stubEngine{result: categoriesFixture}))

	categories, err := client.ExportCategories(context.Background())
	require.NoError(t, err)
	require.Len(t, categories, 2)
	require.NotNil(t, categories[0].Budget)
	assert.Nil(t, categories[1].Budget)
}

func TestClientExportPortfolio(t *testing.T) {
	engine := &stubEngine{result: portfolioFixture}
	client := New(WithEngine(engine))

	resp, err := client.ExportPortfolio(context.Background(),
		NewExportPortfolioParams().WithFromAccount("Depot"))
	require.NoError(t, err)
	require.Len(t, resp.Securities, 1)
	assert.Equal(t, "IE00BK5BQT80", resp.Securities[0].ISIN)

	args := engine.sentArgs(t)
	assert.Equal(t, map[string]interface{}{"fromAccount": "Depot"}, args)
}

func TestClientEngineErrorWrapped(t *testing.T) {
	cause := errors.New("application is not running")
	client := New(WithEngine(&stubEngine{err: cause}))

	_, err := client.ExportAccounts(context.Background())
	var scriptErr *ScriptError
	require.ErrorAs(t, err, &scriptErr)
	assert.Equal(t, "exportAccounts", scriptErr.Method)
	assert.ErrorIs(t, err, cause)
}

func TestClientDecodeErrorOnMalformedPayload(t *testing.T) {
	client := New(WithEngine(&stubEngine{result: "this is not a plist"}))

	_, err := client.ExportAccounts(context.Background())
	var decodeErr *DecodeError
	require.ErrorAs(t, err, &decodeErr)
	assert.Equal(t, "exportAccounts", decodeErr.Method)
}

func TestClientSetTransaction(t *testing.T) {
	engine := &stubEngine{result: true}
	client := New(WithEngine(engine))

	err := client.SetTransaction(context.Background(),
		NewSetTransactionParams(12345).WithCheckmark(CheckmarkOn))
	require.NoError(t, err)

	args := engine.sentArgs(t)
	assert.Equal(t, map[string]interface{}{
		"id":          float64(12345),
		"checkmarkTo": "on",
	}, args)
}

func TestClientSetTransactionNotAcknowledged(t *testing.T) {
	client := New(WithEngine(&stubEngine{result: false}))

	err := client.SetTransaction(context.Background(), NewSetTransactionParams(1))
	var scriptErr *ScriptError
	require.ErrorAs(t, err, &scriptErr)
	assert.Equal(t, "setTransaction", scriptErr.Method)
}

func TestClientAddTransaction(t *testing.T) {
	engine := &stubEngine{result: true}
	client := New(WithEngine(engine))

	err := client.AddTransaction(context.Background(),
		NewAddTransactionParams("Cash", NewDate(2024, 5, 2), "Bakery", -4.50).
			WithPurpose("breakfast"))
	require.NoError(t, err)

	args := engine.sentArgs(t)
	assert.Equal(t, "Cash", args["toAccount"])
	assert.Equal(t, "2024-05-02", args["onDate"])
	assert.Equal(t, "breakfast", args["purpose"])
	assert.NotContains(t, args, "category")
}

func TestClientExecuteRawPayload(t *testing.T) {
	client := New(WithEngine(&stubEngine{result: transactionsFixture}))

	raw, ok, err := client.Execute(context.Background(),
		NewExportTransactionsParams(NewDate(2024, 1, 1)))
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, transactionsFixture, raw)
}

func TestClientExecuteNoPayload(t *testing.T) {
	client := New(WithEngine(&stubEngine{}))

	raw, ok, err := client.Execute(context.Background(), exportAccountsAction{})
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, raw)
}

func TestNewDefaults(t *testing.T) {
	client := New()
	assert.Equal(t, DefaultApplication, client.app)
	assert.NotNil(t, client.engine)
}
