package echoapi

import (
	"html/template"
	"io"
	"io/fs"
	"path"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const (
	templatesDir = "templates"
	layoutFile   = "layout.gohtml"
)

var templateFuncs = template.FuncMap{
	"inc": func(i int) int { return i + 1 },
}

// templateRenderer renders each page inside the shared layout.
// Pages are named by their path under templates/ without extension, e.g. "mahasiswa/edit".
type templateRenderer struct {
	templates map[string]*template.Template
}

var _ echo.Renderer = (*templateRenderer)(nil)

func newTemplateRenderer(fsys fs.FS) (*templateRenderer, error) {
	layout := path.Join(templatesDir, layoutFile)
	r := &templateRenderer{templates: make(map[string]*template.Template)}

	err := fs.WalkDir(fsys, templatesDir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || p == layout || path.Ext(p) != ".gohtml" {
			return nil
		}
		name := strings.TrimSuffix(strings.TrimPrefix(p, templatesDir+"/"), ".gohtml")
		tmpl, err := template.New(layoutFile).Funcs(templateFuncs).ParseFS(fsys, layout, p)
		if err != nil {
			return errors.Wrapf(err, "parsing template %s", name)
		}
		r.templates[name] = tmpl
		return nil
	})
	if err != nil {
		return nil, err
	}
	return r, nil
}

func mustNewTemplateRenderer(fsys fs.FS) *templateRenderer {
	r, err := newTemplateRenderer(fsys)
	if err != nil {
		panic(err)
	}
	return r
}

func (r *templateRenderer) Render(w io.Writer, name string, data interface{}, _ echo.Context) error {
	tmpl, ok := r.templates[name]
	if !ok {
		return errors.Errorf("template %q not found", name)
	}
	return tmpl.ExecuteTemplate(w, "layout", data)
}
