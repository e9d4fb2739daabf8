package moneymoney

// Budget is the spending budget attached to a category.
type Budget struct {
	Amount    float64 `json:"amount"`
	Available float64 `json:"available"`
	Period    string  `json:"period"`
}

// decodeBudget turns the raw budget value of a category export into an
// optional budget. MoneyMoney emits either a dict with all three fields or
// an empty dict; any other shape (partial dict, wrong value types, not a
// dict at all) degrades to "no budget" rather than failing the category.
// Callers depend on category exports never erroring on odd budget dicts.
func decodeBudget(v interface{}) *Budget {
	fields, ok := v.(map[string]interface{})
	if !ok {
		return nil
	}
	amount, ok := toFloat(fields["amount"])
	if !ok {
		return nil
	}
	available, ok := toFloat(fields["available"])
	if !ok {
		return nil
	}
	period, ok := fields["period"].(string)
	if !ok {
		return nil
	}
	return &Budget{Amount: amount, Available: available, Period: period}
}

// Category is a MoneyMoney category record, read-only like Account.
type Category struct {
	UUID        UUID     `json:"uuid"`
	Name        string   `json:"name"`
	Budget      *Budget  `json:"budget,omitempty"`
	Currency    Currency `json:"currency"`
	Default     bool     `json:"default"`
	Group       bool     `json:"group"`
	Icon        []byte   `json:"icon,omitempty"`
	Indentation uint8    `json:"indentation"`
}

func (c *Category) UnmarshalPlist(unmarshal func(interface{}) error) error {
	var raw struct {
		UUID        UUID        `plist:"uuid"`
		Name        string      `plist:"name"`
		Budget      interface{} `plist:"budget"`
		Currency    Currency    `plist:"currency"`
		Default     bool        `plist:"default"`
		Group       bool        `plist:"group"`
		Icon        []byte      `plist:"icon"`
		Indentation uint8       `plist:"indentation"`
	}
	if err := unmarshal(&raw); err != nil {
		return err
	}
	*c = Category{
		UUID:        raw.UUID,
		Name:        raw.Name,
		Budget:      decodeBudget(raw.Budget),
		Currency:    raw.Currency,
		Default:     raw.Default,
		Group:       raw.Group,
		Icon:        raw.Icon,
		Indentation: raw.Indentation,
	}
	return nil
}

func (c Category) MarshalPlist() (interface{}, error) {
	out := map[string]interface{}{
		"uuid":        c.UUID.String(),
		"name":        c.Name,
		"currency":    c.Currency.String(),
		"default":     c.Default,
		"group":       c.Group,
		"icon":        c.Icon,
		"indentation": c.Indentation,
	}
	if c.Budget != nil {
		out["budget"] = map[string]interface{}{
			"amount":    c.Budget.Amount,
			"available": c.Budget.Available,
			"period":    c.Budget.Period,
		}
	} else {
		out["budget"] = map[string]interface{}{}
	}
	return out, nil
}
