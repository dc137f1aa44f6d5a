package ui

import (
	"fmt"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// ---- Message Components ----

// ErrorFragment is the inline error rendering for API and htmx responses,
// where a full page shell would be swapped into the middle of a document.
func ErrorFragment(code int, message string) g.Node {
	return Div(
		Class("bg-red-100 border-red-500 text-red-700 px-4 py-3 rounded"),
		g.Text(fmt.Sprintf("Error %d: %s", code, message)),
	)
}

func ErrorPage(code int, message string) g.Node {
	return Page(
		fmt.Sprintf("Error %d", code),
		[]g.Node{
			pageHeader(fmt.Sprintf("Error %d", code)),
			P(g.Text(message)),
		},
	)
}

func resultContainer() g.Node {
	return Div(
		ID("compatibilityResults"),
		Class("mt-4"),
	)
}
