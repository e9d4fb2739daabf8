package moneymoney

import (
	"errors"
)

// Balance is a monetary amount with its ISO 4217 currency. MoneyMoney
// exports an account balance as a list of (amount, currency) pairs even
// though only a single pair is ever populated.
type Balance struct {
	Amount   float64  `json:"amount"`
	Currency Currency `json:"currency"`
}

// decodeBalance consumes the raw pair list. Only the first pair is
// consulted; the export format wraps the single value in a collection.
func decodeBalance(pairs [][]interface{}) (Balance, error) {
	if len(pairs) == 0 {
		return Balance{}, ErrEmptyResponse
	}
	pair := pairs[0]
	if len(pair) < 2 {
		return Balance{}, &DecodeError{Err: errors.New("balance entry needs amount and currency")}
	}
	amount, ok := toFloat(pair[0])
	if !ok {
		return Balance{}, &DecodeError{Err: errors.New("balance amount is not numeric")}
	}
	code, ok := pair[1].(string)
	if !ok {
		return Balance{}, &DecodeError{Err: errors.New("balance currency is not a string")}
	}
	cur, err := ParseCurrency(code)
	if err != nil {
		return Balance{}, err
	}
	return Balance{Amount: amount, Currency: cur}, nil
}

func (b *Balance) UnmarshalPlist(unmarshal func(interface{}) error) error {
	var pairs [][]interface{}
	if err := unmarshal(&pairs); err != nil {
		return err
	}
	decoded, err := decodeBalance(pairs)
	if err != nil {
		return err
	}
	*b = decoded
	return nil
}

func (b Balance) MarshalPlist() (interface{}, error) {
	return [][]interface{}{{b.Amount, b.Currency.String()}}, nil
}
