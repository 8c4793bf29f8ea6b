package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"central-joias/models"
	"central-joias/repository"
)

// HomeContentController handles the CMS document behind the home page
type HomeContentController struct {
	Repo repository.HomeContentRepository
}

// NewHomeContentController creates a new HomeContentController
func NewHomeContentController(repo repository.HomeContentRepository) *HomeContentController {
	return &HomeContentController{Repo: repo}
}

// GetHomeContent serves the current home document, or the zero-value
// document when nothing has been saved yet
func (hc *HomeContentController) GetHomeContent(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	doc, err := hc.Repo.Get(ctx)
	if errors.Is(err, repository.ErrNotFound) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(models.DefaultHomeContent())
		return
	}
	if err != nil {
		http.Error(w, "Error fetching home content", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(doc)
}

// UpdateHomeContent replaces the home document (Admin only)
func (hc *HomeContentController) UpdateHomeContent(w http.ResponseWriter, r *http.Request) {
	var data map[string]any
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil || data == nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	// One document only: whatever the admin sends is saved under the
	// canonical slug.
	data["slug"] = "home"

	// The admin form posts multi-line textareas as single strings.
	if hero, ok := data["hero"].(map[string]any); ok {
		coerceLines(hero, "texto")
	}
	if sobre, ok := data["sobre"].(map[string]any); ok {
		coerceLines(sobre, "textos")
		coerceLines(sobre, "mensagens")
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if err := hc.Repo.Replace(ctx, data); err != nil {
		http.Error(w, "Error saving home content", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]bool{"ok": true})
}

// coerceLines splits a newline-separated string field into a list,
// dropping blank lines. Fields already sent as lists pass through.
func coerceLines(section map[string]any, key string) {
	s, ok := section[key].(string)
	if !ok {
		return
	}

	lines := []string{}
	for _, line := range strings.Split(s, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	section[key] = lines
}
