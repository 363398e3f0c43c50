// Package render turns a flattened table into the dashboard page: a data
// table, marker popups, comparison charts and the HTML document that holds
// them.
package render

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/woozymasta/podesmap/internal/geo"
)

// Formatter prints counts with locale thousands separators.
type Formatter struct {
	printer     *message.Printer
	placeholder string
}

// NewFormatter returns a formatter for the given BCP 47 locale.
// Missing values are printed as placeholder.
func NewFormatter(locale, placeholder string) Formatter {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.English
	}

	return Formatter{
		printer:     message.NewPrinter(tag),
		placeholder: placeholder,
	}
}

// Count formats a property value for display next to a label.
func (f Formatter) Count(v geo.Value, ok bool) string {
	if !ok {
		return f.placeholder
	}

	switch v.Kind() {
	case geo.KindInt:
		n, _ := v.AsInt()
		return f.printer.Sprintf("%d", n)

	case geo.KindFloat:
		x, _ := v.AsFloat()
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return f.placeholder
		}
		if x == math.Trunc(x) && math.Abs(x) < 1e15 {
			return f.printer.Sprintf("%d", int64(x))
		}
		return f.printer.Sprint(number.Decimal(x, number.MaxFractionDigits(2)))

	default:
		return v.String()
	}
}

// Number formats an axis value, rounding to whole numbers when large.
func (f Formatter) Number(x float64) string {
	if math.Abs(x) >= 10 || x == math.Trunc(x) {
		return f.printer.Sprint(number.Decimal(x, number.MaxFractionDigits(0)))
	}
	return f.printer.Sprint(number.Decimal(x, number.MaxFractionDigits(2)))
}
