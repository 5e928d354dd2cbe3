package render

import (
	"embed"
	"html/template"
	"io"
	"time"

	"github.com/dmitrijs2005/textfix/internal/client/models"
	"github.com/dmitrijs2005/textfix/internal/client/ui"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var templates = template.Must(template.New("views").Funcs(template.FuncMap{
	"stamp": func(t time.Time) string { return t.UTC().Format(time.RFC3339) },
	"day":   func(t time.Time) string { return t.Local().Format("2006-01-02 15:04") },
}).ParseFS(templateFS, "templates/*.tmpl"))

// Document is a standalone export of a transcript.
type Document struct {
	Title       string
	GeneratedAt time.Time
	Messages    []models.Message
}

// HTML renders the panels as HTML fragments.
type HTML struct{}

func (HTML) Transcript(w io.Writer, msgs []models.Message) error {
	return templates.ExecuteTemplate(w, "transcript", msgs)
}

func (HTML) History(w io.Writer, items []models.Exchange, mode ui.Mode) error {
	return templates.ExecuteTemplate(w, "history", struct {
		Items   []models.Exchange
		Mode    string
		Compact bool
		Empty   string
	}{items, mode.String(), mode == ui.ModeCompact, ui.MsgHistoryEmpty})
}

func (HTML) Profile(w io.Writer, p models.Profile) error {
	return templates.ExecuteTemplate(w, "profile", p)
}

func (HTML) Document(w io.Writer, doc Document) error {
	if doc.Title == "" {
		doc.Title = "textfix transcript"
	}
	if doc.GeneratedAt.IsZero() {
		doc.GeneratedAt = time.Now()
	}
	return templates.ExecuteTemplate(w, "document", doc)
}
