package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewToppingSelectionValidates(t *testing.T) {
	_, err := NewToppingSelection(1, "", nil)
	assert.Error(t, err, "group name required")

	_, err = NewToppingSelection(1, "Extras", []ToppingChoice{{OptionID: 1, Name: ""}})
	assert.Error(t, err, "option name required")

	_, err = NewToppingSelection(1, "Extras", []ToppingChoice{{OptionID: 1, Name: "Cheese", Price: d("-1")}})
	assert.Error(t, err, "negative surcharge rejected")

	sel, err := NewToppingSelection(1, "Extras", []ToppingChoice{
		{OptionID: 1, Name: "Cheese", Price: d("1.50")},
		{OptionID: 2, Name: "Mushrooms", Price: d("1.00")},
	})
	require.NoError(t, err)
	assert.True(t, d("2.50").Equal(sel.Surcharge()))
	assert.Equal(t, []string{"Cheese", "Mushrooms"}, sel.ChoiceNames())
}

func TestCartItemCalculateFinalPrice(t *testing.T) {
	item := CartItem{Quantity: 2, UnitPrice: d("10.00"), Discount: d("0.50")}
	assert.True(t, d("19.00").Equal(item.CalculateFinalPrice()))
}

func TestStoredNamePrefixesCategory(t *testing.T) {
	item := CartItem{Name: "Margherita", CategoryName: "Pizza"}
	assert.Equal(t, "Pizza Margherita", item.StoredName())

	item.CategoryName = ""
	assert.Equal(t, "Margherita", item.StoredName())
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "Margherita", DisplayName("Margherita", nil))

	sel, err := NewToppingSelection(1, "Extras", []ToppingChoice{
		{OptionID: 1, Name: "Mushrooms", Price: decimal.Zero},
		{OptionID: 2, Name: "Extra Cheese", Price: d("1.50")},
	})
	require.NoError(t, err)
	assert.Equal(t, "Margherita (Mushrooms, Extra Cheese)", DisplayName("Margherita", []ToppingSelection{sel}))
}
