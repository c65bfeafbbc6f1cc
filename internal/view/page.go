package view

import (
	"net/http"

	"go.uber.org/zap"

	"multiservicios/internal/infrastructure/logger"
)

// Page builds the TemplateData of the current request.
func Page(r *http.Request, title string, data any) TemplateData {
	return TemplateData{
		Title:       title,
		CurrentPath: r.URL.Path,
		TraceID:     logger.TraceID(r.Context()),
		Data:        data,
	}
}

// ConfirmData feeds the delete confirmation page.
type ConfirmData struct {
	Message string
	Action  string
	Back    string
}

// MessageData feeds the generic message page (not found, errors).
type MessageData struct {
	Message string
	Back    string
}

// Write renders a page and falls back to a plain 500 when the template
// fails.
func (e *Engine) Write(w http.ResponseWriter, r *http.Request, status int, name string, data TemplateData, fallback *zap.Logger) {
	if err := e.Render(w, status, name, data); err != nil {
		logger.FromContext(r.Context(), fallback).Error("render page", zap.String("template", name), zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

// NotFound renders the message page with 404.
func (e *Engine) NotFound(w http.ResponseWriter, r *http.Request, message string, back string, fallback *zap.Logger) {
	e.Write(w, r, http.StatusNotFound, "pages/mensaje.html", Page(r, "No encontrado", MessageData{Message: message, Back: back}), fallback)
}
