package dogs

import (
	"html/template"
	"io"
)

// Markup de filas para htmx. El botón borra la fila con hx-swap="delete".
const rowsMarkup = `{{define "row"}}<tr class="on-hover"><td>{{.Name}}</td><td>{{.Breed}}</td><td class="buttons"><button class="show-on-hover" hx-delete="/dog/{{.ID}}" hx-confirm="Are you sure?" hx-target="closest tr" hx-swap="delete">✕</button></td></tr>{{end}}{{range .}}{{template "row" .}}{{end}}`

var rowsTmpl = template.Must(template.New("rows").Parse(rowsMarkup))

// RenderRows escribe una fila por perro, en el orden recibido.
func RenderRows(w io.Writer, items []Dog) error {
	return rowsTmpl.ExecuteTemplate(w, "rows", items)
}

// RenderRow escribe la fila de un solo perro.
func RenderRow(w io.Writer, d Dog) error {
	return rowsTmpl.ExecuteTemplate(w, "row", d)
}
