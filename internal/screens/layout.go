package screens

import "github.com/atomicstack/time-travel/internal/panel"

const (
	CommutesID = "screen-commutes"
	RoutesID   = "screen-routes"
	RouteID    = "screen-route"
	TimerID    = "screen-timer"
)

// Template names used with panel.Document.Fill.
const (
	templateCommute = "commute"
	templateRoute   = "route"
	templateSample  = "sample"
)

// NewDocument builds the screen containers and row templates.
func NewDocument() *panel.Document {
	doc := panel.NewDocument()
	doc.Add(
		panel.New("section", panel.WithID(CommutesID), panel.WithChildren(
			panel.New("h1", panel.WithClass("title"), panel.WithText("Commutes")),
			panel.New("ul", panel.WithID("commutes"), panel.WithClass("list")),
			panel.New("p", panel.WithClass("empty"), panel.WithText("No commutes yet")),
			panel.New("button", panel.WithClass("commute-add"), panel.WithAttr(panel.KeyAttr, "ctrl+n"), panel.WithText("+ Add commute")),
		)),
		panel.New("section", panel.WithID(RoutesID), panel.WithChildren(
			panel.New("h1", panel.WithClass("title")),
			panel.New("ul", panel.WithID("routes"), panel.WithClass("list")),
			panel.New("p", panel.WithClass("empty"), panel.WithText("No routes yet")),
			panel.New("button", panel.WithClass("route-add"), panel.WithAttr(panel.KeyAttr, "ctrl+n"), panel.WithText("+ Add route")),
		)),
		panel.New("section", panel.WithID(RouteID), panel.WithChildren(
			panel.New("h1", panel.WithClass("title")),
			panel.New("p", panel.WithClass("median")),
			panel.New("ul", panel.WithID("samples"), panel.WithClass("list")),
			panel.New("p", panel.WithClass("empty"), panel.WithText("No samples yet")),
			panel.New("button", panel.WithClass("timer-start"), panel.WithAttr(panel.KeyAttr, "ctrl+t"), panel.WithText("Start timer")),
			panel.New("button", panel.WithClass("sample-delete"), panel.WithAttr(panel.KeyAttr, "ctrl+d"), panel.WithText("Delete last sample")),
		)),
		panel.New("section", panel.WithID(TimerID), panel.WithChildren(
			panel.New("h1", panel.WithClass("title")),
			panel.New("p", panel.WithID("elapsed"), panel.WithClass("clock")),
			panel.New("button", panel.WithClass("timer-stop"), panel.WithAttr(panel.KeyAttr, "ctrl+s"), panel.WithText("Stop")),
			panel.New("button", panel.WithClass("timer-cancel"), panel.WithAttr(panel.KeyAttr, "ctrl+x"), panel.WithText("Cancel")),
		)),
	)

	doc.DefineTemplate(templateCommute,
		panel.New("li", panel.WithClass("commute", "row"), panel.WithAttr("data-name", "")))
	doc.DefineTemplate(templateRoute,
		panel.New("li", panel.WithClass("route", "row"), panel.WithChildren(
			panel.New("span", panel.WithClass("cell"), panel.WithAttr("data-name", "")),
			panel.New("span", panel.WithClass("cell", "time"), panel.WithAttr("data-time", "")),
		)))
	doc.DefineTemplate(templateSample,
		panel.New("li", panel.WithClass("sample", "row"), panel.WithChildren(
			panel.New("span", panel.WithClass("cell", "time"), panel.WithAttr("data-time", "")),
			panel.New("span", panel.WithClass("cell", "date"), panel.WithAttr("data-date", "")),
		)))
	return doc
}
