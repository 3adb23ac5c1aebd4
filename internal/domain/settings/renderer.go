// Where: internal/domain/settings/renderer.go
// What: Render settings.xml from the embedded template.
// Why: Keep the output byte layout in a template rather than string concatenation.
package settings

import (
	"bytes"
	"embed"
	"fmt"
	"strings"
	"sync"
	"text/template"

	"github.com/Masterminds/sprig/v3"
)

const templateName = "settings.xml.tmpl"

//go:embed templates/*.tmpl
var templateFS embed.FS

var (
	templateOnce   sync.Once
	templateErr    error
	cachedTemplate *template.Template
)

// textEscaper covers the characters that cannot appear literally in element
// text. A bare carriage return is kept as a reference because parsers fold it
// into a newline.
var textEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	"\r", "&#xD;",
)

// EscapeText escapes value for use as XML element text content.
func EscapeText(value string) string {
	return textEscaper.Replace(value)
}

// Render serializes doc as a flat settings document without an XML declaration.
func Render(doc Document) ([]byte, error) {
	tmpl, err := loadTemplate()
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, doc); err != nil {
		return nil, fmt.Errorf("render %s: %w", templateName, err)
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

func loadTemplate() (*template.Template, error) {
	templateOnce.Do(func() {
		funcs := sprig.TxtFuncMap()
		funcs["xmltext"] = EscapeText
		cachedTemplate, templateErr = template.New(templateName).
			Option("missingkey=error").
			Funcs(funcs).
			ParseFS(templateFS, "templates/"+templateName)
	})
	return cachedTemplate, templateErr
}
