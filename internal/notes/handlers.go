package notes

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"example.com/notes-web/internal/stringsx"
)

const notFoundMessage = "Nota no encontrada"

//go:embed templates/*.html
var templateFS embed.FS

var (
	indexTmpl  = template.Must(template.ParseFS(templateFS, "templates/layout.html", "templates/index.html"))
	detailTmpl = template.Must(template.ParseFS(templateFS, "templates/layout.html", "templates/detail.html"))
)

// Service is what the handlers need from the note layer.
// It allows unit-testing handlers with a stub.
type Service interface {
	Create(title, content string) (Note, error)
	List() []Note
	Get(id int64) (Note, bool)
	Delete(id int64)
}

type Handlers struct {
	svc        Service
	log        *zap.SugaredLogger
	previewLen int
}

func NewHandlers(svc Service, log *zap.SugaredLogger, previewLen int) *Handlers {
	return &Handlers{svc: svc, log: log, previewLen: previewLen}
}

// Routes builds the router. Ids outside [0-9]+ never match a route, so
// malformed ids get chi's 404 before reaching a handler.
func (h *Handlers) Routes(mw ...func(http.Handler) http.Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(mw...)

	r.Get("/health", h.health)
	r.Get("/", h.index)
	r.Post("/", h.create)
	r.Get("/note/{id:[0-9]+}", h.detail)
	r.Post("/delete/{id:[0-9]+}", h.delete)

	return r
}

func (h *Handlers) health(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

func (h *Handlers) index(w http.ResponseWriter, r *http.Request) {
	list := h.svc.List()

	page := indexPage{Notes: make([]card, 0, len(list))}
	for _, n := range list {
		page.Notes = append(page.Notes, card{
			ID:      n.ID,
			Title:   n.Title,
			Preview: stringsx.Preview(n.Content, h.previewLen),
		})
	}
	h.render(w, indexTmpl, page)
}

// create never reports invalid input; the user lands on the list either way.
func (h *Handlers) create(w http.ResponseWriter, r *http.Request) {
	n, err := h.svc.Create(r.PostFormValue("titulo"), r.PostFormValue("contenido"))
	if err != nil {
		h.log.Debugw("note rejected", "error", err)
	} else {
		h.log.Debugw("note created", "id", n.ID)
	}
	http.Redirect(w, r, "/", http.StatusFound)
}

func (h *Handlers) detail(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, notFoundMessage, http.StatusNotFound)
		return
	}

	n, ok := h.svc.Get(id)
	if !ok {
		http.Error(w, notFoundMessage, http.StatusNotFound)
		return
	}
	h.render(w, detailTmpl, detailPage{Note: n})
}

func (h *Handlers) delete(w http.ResponseWriter, r *http.Request) {
	// an id too large for int64 cannot exist in the store
	if id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64); err == nil {
		h.svc.Delete(id)
		h.log.Debugw("note deleted", "id", id)
	}
	http.Redirect(w, r, "/", http.StatusFound)
}

func (h *Handlers) render(w http.ResponseWriter, t *template.Template, data any) {
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", data); err != nil {
		h.log.Errorw("render page", "template", t.Name(), "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}
