package main

import (
	"html/template"
	"net/http"
	"net/url"
	"slices"
	"strings"
	"time"

	"github.com/Simplici0/costboard/internal/metrics"
	"github.com/Simplici0/costboard/internal/migrations"
	"github.com/Simplici0/costboard/internal/pricing"
	"github.com/Simplici0/costboard/internal/report"
)

// defaultQuantity pre-fills the form when the quantity field was never submitted.
const defaultQuantity = "1"

type categoryOption struct {
	Name       string
	Region     string
	Multiplier string
	Selected   bool
}

type dashboardViewData struct {
	Query           string
	Quantity        string
	Categories      []categoryOption
	ApplySetupFee   bool
	SetupFeeDisplay string
	Estimate        report.Estimate
}

type healthResponse struct {
	Status        string `json:"status"`
	Parts         int    `json:"parts"`
	SchemaVersion int64  `json:"schema_version,omitempty"`
}

func (s *server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	rawQuantity := defaultQuantity
	if query.Has("quantity") {
		rawQuantity = query.Get("quantity")
	}

	sel := parseSelection(query)
	sel.Quantity = pricing.CoerceQuantity(rawQuantity)
	est := s.estimate(sel, "dashboard")

	cat := s.estimator.Catalog()
	options := make([]categoryOption, 0)
	for _, name := range cat.Categories() {
		rule := cat.Pricing[name]
		options = append(options, categoryOption{
			Name:       name,
			Region:     rule.Region,
			Multiplier: cat.Pricing.Multiplier(name).String(),
			Selected:   slices.Contains(sel.Categories, name),
		})
	}

	s.renderTemplate(w, "dashboard.html", dashboardViewData{
		Query:           sel.SearchTerm,
		Quantity:        rawQuantity,
		Categories:      options,
		ApplySetupFee:   sel.ApplySetupFee,
		SetupFeeDisplay: pricing.FormatCurrency(cat.SetupFee),
		Estimate:        est,
	})
}

func (s *server) handleEstimate(w http.ResponseWriter, r *http.Request) {
	est := s.estimate(parseSelection(r.URL.Query()), "api")
	s.writeJSON(w, http.StatusOK, est)
}

func (s *server) handleCatalog(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, report.NewCatalog(s.estimator.Catalog()))
}

func (s *server) handleHealth(w http.ResponseWriter, r *http.Request) {
	resp := healthResponse{Status: "ok", Parts: len(s.estimator.Catalog().Parts)}
	if s.db != nil {
		version, err := migrations.Version(r.Context(), s.db)
		if err != nil {
			s.log.Error().Err(err).Msg("health check failed")
			s.writeJSON(w, http.StatusServiceUnavailable, healthResponse{Status: "unavailable", Parts: resp.Parts})
			return
		}
		resp.SchemaVersion = version
	}
	s.writeJSON(w, http.StatusOK, resp)
}

func (s *server) estimate(sel pricing.Selection, surface string) report.Estimate {
	start := time.Now()
	res := s.estimator.Estimate(sel)
	metrics.ObserveEstimate(surface, metrics.Outcome(res.Quantity, len(res.Rows)), time.Since(start))
	return report.NewEstimate(res, sel.ApplySetupFee)
}

// parseSelection reads the selection from query parameters. Invalid quantities coerce to 0.
func parseSelection(query url.Values) pricing.Selection {
	categories := make([]string, 0)
	for _, c := range query["category"] {
		if c = strings.TrimSpace(c); c != "" {
			categories = append(categories, c)
		}
	}

	return pricing.Selection{
		SearchTerm:    query.Get("q"),
		Quantity:      pricing.CoerceQuantity(query.Get("quantity")),
		Categories:    categories,
		ApplySetupFee: isChecked(query.Get("setup_fee")),
	}
}

func isChecked(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "1", "true", "on", "yes":
		return true
	}
	return false
}

func (s *server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := report.WriteJSON(w, v); err != nil {
		s.log.Error().Err(err).Msg("failed to write json response")
	}
}

func (s *server) renderTemplate(w http.ResponseWriter, page string, data any) {
	templates, err := template.ParseFiles(
		s.templateDir+"/layout.html",
		s.templateDir+"/"+page,
	)
	if err != nil {
		s.log.Error().Err(err).Str("page", page).Msg("failed to parse template")
		http.Error(w, "failed to parse template", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := templates.ExecuteTemplate(w, "layout.html", data); err != nil {
		s.log.Error().Err(err).Str("page", page).Msg("failed to render template")
		http.Error(w, "failed to render template", http.StatusInternalServerError)
		return
	}
}
