package moneymoney

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"howett.net/plist"
)

const accountsFixture = `<?xml version="1.0" encoding="UTF-8"?>
<plist version="1.0">
<array>
	<dict>
		<key>accountNumber</key>
		<string></string>
		<key>attributes</key>
		<dict/>
		<key>balance</key>
		<array>
			<array>
				<real>1234.56</real>
				<string>EUR</string>
			</array>
		</array>
		<key>bankCode</key>
		<string></string>
		<key>currency</key>
		<string>EUR</string>
		<key>group</key>
		<true/>
		<key>icon</key>
		<data>aWNvbg==</data>
		<key>indentation</key>
		<integer>0</integer>
		<key>name</key>
		<string>Bank</string>
		<key>owner</key>
		<string></string>
		<key>portfolio</key>
		<false/>
		<key>refreshTimestamp</key>
		<date>2024-06-01T08:30:00Z</date>
		<key>type</key>
		<string>Kontengruppe</string>
		<key>uuid</key>
		<string>0a1b2c3d-4e5f-6071-8293-a4b5c6d7e8f9</string>
	</dict>
	<dict>
		<key>accountNumber</key>
		<string>DE89370400440532013000</string>
		<key>attributes</key>
		<dict>
			<key>note</key>
			<string>main account</string>
		</dict>
		<key>balance</key>
		<array>
			<array>
				<real>1234.56</real>
				<string>EUR</string>
			</array>
		</array>
		<key>bankCode</key>
		<string>37040044</string>
		<key>currency</key>
		<string>EUR</string>
		<key>group</key>
		<false/>
		<key>icon</key>
		<data>aWNvbg==</data>
		<key>indentation</key>
		<integer>1</integer>
		<key>name</key>
		<string>Checking</string>
		<key>owner</key>
		<string>Jane Doe</string>
		<key>portfolio</key>
		<false/>
		<key>refreshTimestamp</key>
		<date>2024-06-01T08:30:00Z</date>
		<key>type</key>
		<string>Girokonto</string>
		<key>uuid</key>
		<string>6ef8a2f4-1b2c-4d5e-8f90-123456789abc</string>
	</dict>
</array>
</plist>`

func TestAccountUnmarshalPlist(t *testing.T) {
	var accounts []Account
	_, err := plist.Unmarshal([]byte(accountsFixture), &accounts)
	require.NoError(t, err)
	require.Len(t, accounts, 2)

	group := accounts[0]
	assert.Equal(t, "Bank", group.Name)
	assert.True(t, group.Group)
	assert.Equal(t, AccountTypeGroup, group.Type.Kind)
	assert.Equal(t, uint8(0), group.Indentation)

	checking := accounts[1]
	assert.Equal(t, "Checking", checking.Name)
	assert.Equal(t, "DE89370400440532013000", checking.AccountNumber)
	assert.Equal(t, "37040044", checking.BankCode)
	assert.Equal(t, "Jane Doe", checking.Owner)
	assert.Equal(t, "EUR", checking.Currency)
	assert.Equal(t, AccountTypeGiro, checking.Type.Kind)
	assert.Equal(t, "6ef8a2f4-1b2c-4d5e-8f90-123456789abc", checking.UUID.String())
	assert.Equal(t, 1234.56, checking.Balance.Amount)
	assert.Equal(t, "EUR", checking.Balance.Currency.String())
	assert.Equal(t, "main account", checking.Attributes["note"])
	assert.Equal(t, []byte("icon"), checking.Icon)
	assert.Equal(t,
		time.Date(2024, 6, 1, 8, 30, 0, 0, time.UTC),
		checking.RefreshTimestamp.UTC())
}
