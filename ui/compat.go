package ui

import (
	"strings"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/parts-pile/fitment/fitment"
)

// ---- Compatibility Results ----

// CompatibilityTable renders the merged record set as a table. Every row
// carries every column: a cell resolves to the record's own detail value,
// then to the caller's base filter of the same name, then stays blank.
func CompatibilityTable(subject string, columns []string, base []fitment.Property, records []fitment.Record) g.Node {
	return Div(
		ID("compatibilityResults"),
		Class("overflow-x-auto"),
		H2(Class("text-2xl font-bold mb-4"), g.Text("Compatible vehicles for "+subject)),
		Table(
			Class("min-w-full border border-gray-300 bg-white shadow-sm"),
			THead(
				Tr(
					Class("bg-gray-200"),
					g.Group(g.Map(columns, func(col string) g.Node {
						return Th(Class("border border-gray-300 px-4 py-2 text-left font-semibold"), g.Text(col))
					})),
				),
			),
			TBody(
				g.Group(g.Map(records, func(rec fitment.Record) g.Node {
					return Tr(
						Class("hover:bg-gray-50"),
						g.Group(g.Map(columns, func(col string) g.Node {
							return Td(Class("border border-gray-300 px-4 py-2"), g.Text(cellValue(rec, base, col)))
						})),
					)
				})),
			),
		),
	)
}

func cellValue(rec fitment.Record, base []fitment.Property, name string) string {
	if v, ok := rec.Value(name); ok {
		return v
	}
	return fitment.BaseValue(base, name)
}

// NoCompatibilityData replaces the table when the merged record set is empty.
func NoCompatibilityData(subject string) g.Node {
	return Div(
		ID("compatibilityResults"),
		Class("flex justify-center items-center p-8"),
		P(Class("text-gray-600 text-lg"), g.Text("No compatibility data found for "+subject+".")),
	)
}

// QuerySubject derives the display label for a lookup: the Make value (plus
// Model when supplied), else the fanned-out dimension values, else a generic
// stand-in.
func QuerySubject(filters []fitment.Property, fanValues []string) string {
	if mk := fitment.BaseValue(filters, "Make"); mk != "" {
		if model := fitment.BaseValue(filters, "Model"); model != "" {
			return mk + " " + model
		}
		return mk
	}
	if len(fanValues) > 0 {
		return strings.Join(fanValues, ", ")
	}
	return "your vehicle"
}
