package server

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/google/uuid"

	"github.com/jonathan/portfolio-generator/internal/download"
	"github.com/jonathan/portfolio-generator/internal/rendering"
	"github.com/jonathan/portfolio-generator/internal/template"
	"github.com/jonathan/portfolio-generator/internal/types"
)

// PortfolioResponse wraps a stored portfolio for GET /api/portfolio/{id}
type PortfolioResponse struct {
	Success   bool `json:"success"`
	Portfolio any  `json:"portfolio"`
}

// TemplatesResponse is the response for GET /api/templates
type TemplatesResponse struct {
	Templates []template.Template `json:"templates"`
}

// handleRoot reports API readiness
func (s *Server) handleRoot(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"message": "Portfolio Generator API - Ready"})
}

// handleEnhanceContent enhances draft content with the LLM
func (s *Server) handleEnhanceContent(w http.ResponseWriter, r *http.Request) {
	var req types.EnhanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	result, err := s.enhancer.Enhance(r.Context(), &req)
	if err != nil {
		log.Printf("Error enhancing content: %v", err)
		s.errorResponse(w, HTTPStatus(err), "Failed to enhance content")
		return
	}

	s.jsonResponse(w, http.StatusOK, types.EnhanceResponse{
		Success:     true,
		Enhanced:    result.Enhanced,
		Suggestions: result.Suggestions,
	})
}

// handleGeneratePortfolio validates and stores a portfolio document
func (s *Server) handleGeneratePortfolio(w http.ResponseWriter, r *http.Request) {
	var req types.GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if req.Template == "" {
		s.errorResponse(w, http.StatusBadRequest, "template is required")
		return
	}
	if _, ok := template.Lookup(req.Template); !ok {
		s.errorResponse(w, http.StatusBadRequest, fmt.Sprintf("unknown template: %s", req.Template))
		return
	}

	id, err := s.store.SavePortfolio(r.Context(), &req.Data, req.Template)
	if err != nil {
		log.Printf("Error generating portfolio: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to save portfolio")
		return
	}

	log.Printf("Portfolio created with ID: %s", id)

	s.jsonResponse(w, http.StatusOK, types.GenerateResponse{
		Success:       true,
		PortfolioID:   id.String(),
		DownloadReady: true,
		Message:       "Portfolio generated successfully",
	})
}

// handleGetPortfolio returns a stored portfolio by ID
func (s *Server) handleGetPortfolio(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid portfolio ID format")
		return
	}

	portfolio, err := s.store.GetPortfolio(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if portfolio == nil {
		s.errorResponse(w, HTTPStatus(&ErrPortfolioNotFound{ID: id}), "Portfolio not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, PortfolioResponse{Success: true, Portfolio: portfolio})
}

// handleListPortfolios returns recent portfolios
func (s *Server) handleListPortfolios(w http.ResponseWriter, r *http.Request) {
	portfolios, err := s.store.ListPortfolios(r.Context(), 0)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"success": true, "portfolios": portfolios})
}

// handleDeletePortfolio removes a stored portfolio
func (s *Server) handleDeletePortfolio(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid portfolio ID format")
		return
	}

	if err := s.store.DeletePortfolio(r.Context(), id); err != nil {
		s.errorResponse(w, http.StatusNotFound, "Portfolio not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{"success": true})
}

// handleDownloadPortfolio renders the stored portfolio and streams it as a zip
func (s *Server) handleDownloadPortfolio(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid portfolio ID format")
		return
	}

	portfolio, err := s.store.GetPortfolio(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if portfolio == nil {
		s.errorResponse(w, http.StatusNotFound, "Portfolio not found")
		return
	}

	archive, err := rendering.Archive(&portfolio.Document, portfolio.Template)
	if err != nil {
		log.Printf("Error rendering portfolio %s: %v", id, err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to render portfolio")
		return
	}

	filename := download.FileName(portfolio.Document.Name)
	w.Header().Set("Content-Type", "application/zip")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	w.Header().Set("Content-Length", fmt.Sprintf("%d", len(archive)))
	if _, err := w.Write(archive); err != nil {
		log.Printf("Error streaming portfolio %s: %v", id, err)
	}
}

// handleTemplates returns the template catalog
func (s *Server) handleTemplates(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, TemplatesResponse{Templates: template.Catalog()})
}
