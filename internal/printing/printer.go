// Package printing is the hand-off boundary to the receipt printer. The core
// passes a committed, fully-priced order and never waits on the outcome;
// byte-stream formatting for real hardware lives in the printing collaborator.
package printing

import (
	"fmt"

	"fornopos/internal/model"

	"github.com/rs/zerolog/log"
)

// Printer renders receipts for a persisted order. Implementations must treat
// the order as read-only.
type Printer interface {
	PrintCustomerReceipt(o *model.Order) error
	PrintKitchenReceipt(o *model.Order) error
}

// New returns the printer for the configured kind. Unknown kinds fall back to
// the log printer so a misconfigured terminal still records every sale.
func New(kind string) Printer {
	switch kind {
	case "none":
		return noopPrinter{}
	default:
		return logPrinter{}
	}
}

// logPrinter writes receipt summaries to the structured log. Used in
// development and as the fallback when no hardware printer is attached.
type logPrinter struct{}

func (logPrinter) PrintCustomerReceipt(o *model.Order) error {
	log.Info().
		Int("order_number", o.OrderNumber).
		Str("total", o.TotalAmount.StringFixed(2)).
		Int("items", len(o.Items)).
		Bool("delivery", o.IsDelivery).
		Msg("customer receipt")
	return nil
}

func (logPrinter) PrintKitchenReceipt(o *model.Order) error {
	for _, item := range o.Items {
		log.Info().
			Int("order_number", o.OrderNumber).
			Str("product", item.ProductName).
			Int("quantity", item.Quantity).
			Str("notes", item.Notes).
			Msg("kitchen receipt line")
	}
	return nil
}

type noopPrinter struct{}

func (noopPrinter) PrintCustomerReceipt(*model.Order) error { return nil }
func (noopPrinter) PrintKitchenReceipt(*model.Order) error  { return nil }

// Describe is a short human label for logs.
func Describe(o *model.Order) string {
	return fmt.Sprintf("order #%d (%s)", o.OrderNumber, o.TotalAmount.StringFixed(2))
}
