package moneymoney

import (
	"encoding/json"
	"strings"
)

// AccountTypeKind enumerates the account types MoneyMoney knows about.
type AccountTypeKind int

const (
	AccountTypeGroup AccountTypeKind = iota
	AccountTypeGiro
	AccountTypeSavings
	AccountTypeFixedTermDeposit
	AccountTypeLoan
	AccountTypeCreditCard
	AccountTypeCash
	AccountTypeOther
	AccountTypeCustom
)

// AccountType classifies an account. MoneyMoney reports the type as a
// localized string depending on the application language; decoding accepts
// both the English and German vocabulary, while encoding always emits the
// canonical English string. Strings outside either table are preserved
// verbatim as a custom type instead of failing.
type AccountType struct {
	Kind AccountTypeKind
	// Custom carries the original string for AccountTypeCustom.
	Custom string
}

// accountTypeLookup is keyed by the lowercase-normalized localized string.
var accountTypeLookup = map[string]AccountTypeKind{
	"account group":      AccountTypeGroup,
	"kontengruppe":       AccountTypeGroup,
	"giro account":       AccountTypeGiro,
	"girokonto":          AccountTypeGiro,
	"savings account":    AccountTypeSavings,
	"sparkonto":          AccountTypeSavings,
	"fixed term deposit": AccountTypeFixedTermDeposit,
	"festgeldanlage":     AccountTypeFixedTermDeposit,
	"loan account":       AccountTypeLoan,
	"darlehenskonto":     AccountTypeLoan,
	"credit card":        AccountTypeCreditCard,
	"kreditkarte":        AccountTypeCreditCard,
	"cash":               AccountTypeCash,
	"bargeld":            AccountTypeCash,
	"other":              AccountTypeOther,
	"sonstige":           AccountTypeOther,
}

// accountTypeNames holds the canonical strings used on the wire for
// outbound calls, independent of the application language.
var accountTypeNames = map[AccountTypeKind]string{
	AccountTypeGroup:            "Account group",
	AccountTypeGiro:             "Giro account",
	AccountTypeSavings:          "Savings account",
	AccountTypeFixedTermDeposit: "Fixed term deposit",
	AccountTypeLoan:             "Loan account",
	AccountTypeCreditCard:       "Credit card",
	AccountTypeCash:             "Cash",
	AccountTypeOther:            "Other",
}

// ParseAccountType maps a localized type string to its AccountType. Unknown
// strings become a custom type carrying the input verbatim; parsing never
// fails.
func ParseAccountType(s string) AccountType {
	if kind, ok := accountTypeLookup[strings.ToLower(s)]; ok {
		return AccountType{Kind: kind}
	}
	return AccountType{Kind: AccountTypeCustom, Custom: s}
}

// String returns the canonical English string, or the carried custom string.
func (t AccountType) String() string {
	if t.Kind == AccountTypeCustom {
		return t.Custom
	}
	return accountTypeNames[t.Kind]
}

func (t AccountType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *AccountType) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*t = ParseAccountType(s)
	return nil
}

func (t AccountType) MarshalPlist() (interface{}, error) {
	return t.String(), nil
}

func (t *AccountType) UnmarshalPlist(unmarshal func(interface{}) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	*t = ParseAccountType(s)
	return nil
}
