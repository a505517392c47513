package model

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ToppingChoice is one selected option inside a topping group.
type ToppingChoice struct {
	OptionID uint            `json:"option_id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
}

// ToppingSelection records the chosen options of one topping group for a cart
// item. Selections are validated at construction so downstream code never sees
// a nameless group or a negative surcharge.
type ToppingSelection struct {
	GroupID   uint            `json:"group_id"`
	GroupName string          `json:"group_name"`
	Choices   []ToppingChoice `json:"choices"`
}

func NewToppingSelection(groupID uint, groupName string, choices []ToppingChoice) (ToppingSelection, error) {
	if strings.TrimSpace(groupName) == "" {
		return ToppingSelection{}, errors.New("topping group name is required")
	}
	for _, ch := range choices {
		if strings.TrimSpace(ch.Name) == "" {
			return ToppingSelection{}, fmt.Errorf("topping group %q: option name is required", groupName)
		}
		if ch.Price.IsNegative() {
			return ToppingSelection{}, fmt.Errorf("topping option %q: negative price", ch.Name)
		}
	}
	return ToppingSelection{GroupID: groupID, GroupName: groupName, Choices: choices}, nil
}

// Surcharge is the summed price of all chosen options.
func (s ToppingSelection) Surcharge() decimal.Decimal {
	total := decimal.Zero
	for _, ch := range s.Choices {
		total = total.Add(ch.Price)
	}
	return total
}

// ChoiceNames lists the chosen option names in selection order.
func (s ToppingSelection) ChoiceNames() []string {
	names := make([]string, 0, len(s.Choices))
	for _, ch := range s.Choices {
		names = append(names, ch.Name)
	}
	return names
}

// CartItem is one ephemeral pre-checkout line. Each add creates a distinct
// item — identical products are never merged, so per-line notes, toppings and
// discounts stay independent. OriginalPrice keeps the catalog price so a
// manual override or topping surcharge is detectable at checkout.
type CartItem struct {
	ProductID uint `json:"product_id"`
	// Name is the display name: base name plus parenthesized topping names.
	Name          string             `json:"name"`
	BaseName      string             `json:"base_name"`
	CategoryName  string             `json:"category_name"`
	Quantity      int                `json:"quantity"`
	UnitPrice     decimal.Decimal    `json:"unit_price"`
	OriginalPrice decimal.Decimal    `json:"original_price"`
	Discount      decimal.Decimal    `json:"discount"`
	FinalPrice    decimal.Decimal    `json:"final_price"`
	Notes         string             `json:"notes"`
	Toppings      []ToppingSelection `json:"toppings,omitempty"`
}

// CalculateFinalPrice recomputes (unit price − discount) × quantity.
func (i *CartItem) CalculateFinalPrice() decimal.Decimal {
	i.FinalPrice = i.UnitPrice.Sub(i.Discount).Mul(decimal.NewFromInt(int64(i.Quantity)))
	return i.FinalPrice
}

// StoredName is the category-prefixed product name persisted on order items
// for reporting.
func (i *CartItem) StoredName() string {
	if i.CategoryName == "" {
		return i.Name
	}
	return i.CategoryName + " " + i.Name
}

// DisplayName builds the cart display name from a base name and the selected
// toppings, e.g. `Pizza (Mushrooms, Extra Cheese)`.
func DisplayName(baseName string, toppings []ToppingSelection) string {
	var names []string
	for _, sel := range toppings {
		names = append(names, sel.ChoiceNames()...)
	}
	if len(names) == 0 {
		return baseName
	}
	return fmt.Sprintf("%s (%s)", baseName, strings.Join(names, ", "))
}
