package handler

import (
	"html/template"
	"net/http"

	"carpooling-go/web"
)

type pages struct {
	index   *template.Template
	success *template.Template
}

func newPages() (*pages, error) {
	index, err := template.ParseFS(web.Templates, "templates/index.html")
	if err != nil {
		return nil, err
	}
	success, err := template.ParseFS(web.Templates, "templates/success.html")
	if err != nil {
		return nil, err
	}
	return &pages{index: index, success: success}, nil
}

func (h *Handlers) Index(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.pages.index.Execute(w, nil); err != nil {
		h.log.InternalError("pages.index: render failed", err)
	}
}

func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
