package moneymoney

import (
	"time"
)

// Account is a MoneyMoney account record. Accounts are produced only by
// decoding an export response and are immutable; all changes happen inside
// the application and are observed by exporting again.
type Account struct {
	AccountNumber    string                 `plist:"accountNumber" json:"accountNumber"`
	Attributes       map[string]interface{} `plist:"attributes" json:"attributes,omitempty"`
	Balance          Balance                `plist:"balance" json:"balance"`
	BankCode         string                 `plist:"bankCode" json:"bankCode"`
	Currency         string                 `plist:"currency" json:"currency"`
	Group            bool                   `plist:"group" json:"group"`
	Icon             []byte                 `plist:"icon" json:"icon,omitempty"`
	Indentation      uint8                  `plist:"indentation" json:"indentation"`
	Name             string                 `plist:"name" json:"name"`
	Owner            string                 `plist:"owner" json:"owner"`
	Portfolio        bool                   `plist:"portfolio" json:"portfolio"`
	RefreshTimestamp time.Time              `plist:"refreshTimestamp" json:"refreshTimestamp"`
	Type             AccountType            `plist:"type" json:"type"`
	UUID             UUID                   `plist:"uuid" json:"uuid"`
}
