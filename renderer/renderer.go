// Package renderer turns bids and timing reports into markdown.
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"
	"time"

	"github.com/dustin/go-humanize"
)

//go:embed templates/*.md
var templates embed.FS

// funcs are available in every template:
//   - cell escapes a string for a markdown table cell.
//   - count formats an integer with thousands separators.
//   - seconds formats a duration as a fractional number of seconds.
var funcs = template.FuncMap{
	"cell":    func(s string) string { return strings.ReplaceAll(s, "|", `\|`) },
	"count":   func(n int) string { return humanize.Comma(int64(n)) },
	"seconds": func(d time.Duration) string { return fmt.Sprintf("%.6f", d.Seconds()) },
}

// renderTemplate is a generic utility to render a main template that depends on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := fs.ReadFile(templates, "templates/"+mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Funcs(funcs).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		var content []byte
		// An empty file name is a valid case, resulting in an empty template.
		if file != "" {
			var readErr error
			content, readErr = fs.ReadFile(templates, "templates/"+file)
			if readErr != nil {
				return fmt.Sprintf("error reading partial template %q: %v", file, readErr)
			}
		}
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return fmt.Sprintf("error parsing partial template %q for %q: %v", file, name, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}
