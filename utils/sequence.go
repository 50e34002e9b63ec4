package utils

import "fmt"

// FormatOrderNumber formats a sequence value as an order number (ORD001)
func FormatOrderNumber(n int64) string {
	return fmt.Sprintf("ORD%03d", n)
}

// FormatInvoiceNumber derives an invoice number from an order number (INV-ORD001)
func FormatInvoiceNumber(orderNumber string) string {
	return fmt.Sprintf("INV-%s", orderNumber)
}

// FormatInvoiceSequence formats a sequence value as a standalone invoice
// number (INV001) for invoices created without a known order number
func FormatInvoiceSequence(n int64) string {
	return fmt.Sprintf("INV%03d", n)
}

// FormatRoundNumber formats a sequence value as a kiln round number (RND0001)
func FormatRoundNumber(n int64) string {
	return fmt.Sprintf("RND%04d", n)
}
