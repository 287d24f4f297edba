package scaffold

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"text/template"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// templateData holds all variables available to the embedded templates.
type templateData struct {
	ProjectName  string
	UtilsPackage string
	AuthPackage  string
	Auth         bool
}

// render executes templates/<name>.tmpl with data.
func render(name string, data templateData) ([]byte, error) {
	tmplPath := path.Join("templates", name+".tmpl")
	tmplBytes, err := fs.ReadFile(templateFS, tmplPath)
	if err != nil {
		return nil, fmt.Errorf("reading template %s: %w", tmplPath, err)
	}

	tmpl, err := template.New(name).Option("missingkey=error").Parse(string(tmplBytes))
	if err != nil {
		return nil, fmt.Errorf("parsing template %s: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template %s: %w", name, err)
	}
	return buf.Bytes(), nil
}
