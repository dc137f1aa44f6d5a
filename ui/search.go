package ui

import (
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	. "maragu.dev/gomponents/html"
)

// ---- Search Page ----

// SearchPage is the year/make/model selector. Year drives the make options,
// year+make drive the model options, and submitting runs the compatibility
// lookup into the results container. Selecting several years fans the lookup
// out across all of them.
func SearchPage(years []string) g.Node {
	yearOptions := []g.Node{}
	for _, year := range years {
		yearOptions = append(yearOptions, Option(Value(year), g.Text(year)))
	}

	return Page(
		"Vehicle Compatibility Lookup",
		[]g.Node{
			pageHeader("Vehicle Compatibility Lookup"),
			Form(
				ID("compatibilitySearch"),
				Class("space-y-6 max-w-2xl"),
				hx.Post("/search"),
				hx.Target("#compatibilityResults"),
				hx.Swap("outerHTML"),
				FormGroup("Years", "years",
					Select(
						ID("years"),
						Name("years"),
						g.Attr("multiple"),
						g.Attr("size", "6"),
						Class("w-full p-2 border rounded"),
						hx.Trigger("change"),
						hx.Post("/search/makes"),
						hx.Target("#make"),
						hx.Include("this"),
						g.Attr("onchange", "document.getElementById('model').innerHTML = ''"),
						g.Group(yearOptions),
					),
				),
				P(Class("text-sm text-gray-600"), g.Text("Pick more than one year to search them all at once.")),
				FormGroup("Make", "make",
					Select(
						ID("make"),
						Name("make"),
						Class("w-full p-2 border rounded"),
						hx.Trigger("change"),
						hx.Post("/search/models"),
						hx.Target("#model"),
						hx.Include("[name='years'],[name='make']"),
						Option(Value(""), g.Text("Select a make")),
					),
				),
				FormGroup("Model", "model",
					Select(
						ID("model"),
						Name("model"),
						Class("w-full p-2 border rounded"),
						Option(Value(""), g.Text("Select a model")),
					),
				),
				Button(
					Type("submit"),
					Class("px-4 py-2 rounded inline-block bg-blue-500 text-white hover:bg-blue-600"),
					g.Text("Find Compatible Vehicles"),
				),
			),
			resultContainer(),
		},
	)
}

func FormGroup(labelText string, fieldID string, input g.Node) g.Node {
	return Div(
		Class("space-y-2"),
		Label(For(fieldID), Class("block font-bold"), g.Text(labelText)),
		input,
	)
}

// MakeOptions returns the option list for the make selector.
func MakeOptions(makes []string) g.Node {
	options := []g.Node{Option(Value(""), g.Text("Select a make"))}
	for _, mk := range makes {
		options = append(options, Option(Value(mk), g.Text(mk)))
	}
	return g.Group(options)
}

// ModelOptions returns the option list for the model selector.
func ModelOptions(models []string) g.Node {
	options := []g.Node{Option(Value(""), g.Text("Select a model"))}
	for _, model := range models {
		options = append(options, Option(Value(model), g.Text(model)))
	}
	return g.Group(options)
}
