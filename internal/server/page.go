package server

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/bdtaxlab/bdtax/internal/domain"
)

//go:embed index.html
var pageFS embed.FS

var indexTemplate = template.Must(template.ParseFS(pageFS, "index.html"))

type indexViewData struct {
	Years []domain.AssessmentYear
	Zones []domain.MinTaxZone
}

// handleIndex serves the calculator form page. The page posts the form as
// JSON to the calculate endpoint and renders the response client-side.
func (s *Server) handleIndex(w http.ResponseWriter, _ *http.Request) {
	data := indexViewData{
		Years: []domain.AssessmentYear{
			domain.AssessmentYear2025,
			domain.AssessmentYear2026,
			domain.AssessmentYear2027,
		},
		Zones: []domain.MinTaxZone{
			domain.ZoneCity,
			domain.ZoneDistrict,
			domain.ZoneOther,
			domain.ZoneNew,
		},
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := indexTemplate.Execute(w, data); err != nil {
		s.logger.Error().Err(err).Msg("render index page")
	}
}
