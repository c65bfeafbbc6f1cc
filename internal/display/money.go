package display

import (
	"fmt"
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"multiservicios/internal/domain"
)

var printer = message.NewPrinter(language.English)

// Quetzales formats an amount as Q.1,234.56.
func Quetzales(amount float64) string {
	return "Q." + Amount(amount)
}

// Amount formats with thousands separators and two decimals.
func Amount(amount float64) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return Placeholder
	}
	return printer.Sprintf("%.2f", amount)
}

// TaxSplit separates a tax-inclusive total into subtotal and tax.
type TaxSplit struct {
	Subtotal float64
	Tax      float64
	Total    float64
}

func SplitTax(total, rate float64) TaxSplit {
	subtotal := total / (1 + rate)
	return TaxSplit{
		Subtotal: subtotal,
		Tax:      subtotal * rate,
		Total:    total,
	}
}

// SplitIVA applies the invoice tax rate.
func SplitIVA(total float64) TaxSplit {
	return SplitTax(total, domain.TasaIVA)
}

// NombreCatalogo is the option label of a catalog item.
func NombreCatalogo(item domain.ItemCatalogo) string {
	return fmt.Sprintf("%s - %s - %s", item.Nombre, item.RAM, Quetzales(item.Precio))
}
