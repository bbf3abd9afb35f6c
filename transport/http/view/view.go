package view

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"pgsystem/shared/constant"
	"pgsystem/shared/logger"
	"pgsystem/shared/session"

	"github.com/rs/zerolog/log"
)

const (
	PageLogin     = "login"
	PageRegister  = "register"
	PageIndex     = "index"
	PageDashboard = "dashboard"
	PageProfile   = "profile"

	layoutFile = "templates/layout.html"
)

//go:embed templates/*.html
var files embed.FS

var pages = []string{PageLogin, PageRegister, PageIndex, PageDashboard, PageProfile}

// Page is the data every template receives. Data holds the page specific view model.
type Page struct {
	Title    string
	Username string
	Flashes  []session.Flash
	Data     any
}

type Renderer interface {
	Render(w http.ResponseWriter, status int, name string, page Page)
}

type renderer struct {
	templates map[string]*template.Template
}

// New parses the layout once per page. Parsing failures are programming errors and panic.
func New() Renderer {
	templates := make(map[string]*template.Template, len(pages))

	for _, name := range pages {
		tmpl := template.Must(template.New(name).Funcs(funcs()).ParseFS(files, layoutFile, "templates/"+name+".html"))
		templates[name] = tmpl
	}

	log.Debug().Int("pages", len(templates)).Msg("HTML templates parsed")

	return &renderer{templates: templates}
}

func funcs() template.FuncMap {
	return template.FuncMap{
		"add": func(a, b int) int { return a + b },
		"sub": func(a, b int) int { return a - b },
	}
}

// Render executes into a buffer first so a template error never leaves a half written page.
func (r *renderer) Render(w http.ResponseWriter, status int, name string, page Page) {
	tmpl, ok := r.templates[name]
	if !ok {
		logger.ErrorWithStack(fmt.Errorf("unknown template %q", name))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)

		return
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", page); err != nil {
		logger.ErrorWithStack(err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)

		return
	}

	w.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeHTML)
	w.WriteHeader(status)

	if _, err := buf.WriteTo(w); err != nil {
		log.Error().Err(err).Str("template", name).Msg("failed to write page")
	}
}
