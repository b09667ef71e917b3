package pages

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"simulation-server/feature/simulation"

	"github.com/stoewer/go-strcase"
)

// ErrTemplateNotFound is returned when a page template is missing.
var ErrTemplateNotFound = errors.New("template not found")

// Renderer renders page templates from a directory. Templates are parsed on every
// render so edits show up without a restart.
type Renderer struct {
	dir string
}

// NewRenderer creates a renderer over dir.
func NewRenderer(dir string) *Renderer {
	return &Renderer{dir: dir}
}

// Render executes the named template with data.
func (r *Renderer) Render(name string, data any) ([]byte, error) {
	file := filepath.Join(r.dir, name)
	src, err := os.ReadFile(file)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrTemplateNotFound, name)
	}
	if err != nil {
		return nil, err
	}

	tmpl, err := template.New(name).Parse(string(src))
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", name, err)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("render %s: %w", name, err)
	}
	return buf.Bytes(), nil
}

// Field is one simulator form input.
type Field struct {
	Key   string
	ID    string
	Name  string
	Label string
	Value string
	Type  string
}

// FormFields maps the parameter document to form inputs.
func FormFields(params []simulation.Param) []Field {
	fields := make([]Field, 0, len(params))
	for _, p := range params {
		inputType := "text"
		if p.Kind == "number" {
			inputType = "number"
		}
		fields = append(fields, Field{
			Key:   p.Key,
			ID:    "param-" + strcase.KebabCase(p.Key),
			Name:  p.Key,
			Label: strings.ReplaceAll(strcase.SnakeCase(p.Key), "_", " "),
			Value: p.Value,
			Type:  inputType,
		})
	}
	return fields
}
