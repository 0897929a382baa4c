package illnesses

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"pawcare-service/internal/middleware"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/illnesses", func(ir chi.Router) {
		ir.Get("/", listIllnessesHandler(svc))
		ir.Post("/", createIllnessHandler(svc))

		ir.Get("/{illnessID}", getIllnessHandler(svc))
		ir.Put("/{illnessID}", updateIllnessHandler(svc))
		ir.Delete("/{illnessID}", deleteIllnessHandler(svc))
	})
}

type symptomPayload struct {
	Name            string `json:"name"`
	Commonality     string `json:"commonality" enums:"rare,sometimes,common,very_common"`
	TypicalSeverity string `json:"typical_severity" enums:"mild,moderate,severe"`
}

type illnessPayload struct {
	Name             string           `json:"name"`
	Icon             string           `json:"icon,omitempty"`
	Description      string           `json:"description,omitempty"`
	Category         string           `json:"category" enums:"respiratory,digestive,skin,dental,eye,ear,other"`
	Symptoms         []symptomPayload `json:"symptoms,omitempty"`
	Aliases          []string         `json:"aliases,omitempty"`
	Contagious       bool             `json:"contagious,omitempty"`
	EmergencyWarning bool             `json:"emergency_warning,omitempty"`
	HomeCareTips     string           `json:"home_care_tips,omitempty"`
}

type symptomResponse struct {
	ID              string      `json:"id"`
	Name            string      `json:"name"`
	Commonality     Commonality `json:"commonality"`
	TypicalSeverity string      `json:"typical_severity"`
}

type illnessResponse struct {
	ID               string            `json:"id"`
	Name             string            `json:"name"`
	Icon             string            `json:"icon,omitempty"`
	Description      string            `json:"description,omitempty"`
	IsPredefined     bool              `json:"is_predefined"`
	Category         Category          `json:"category"`
	Symptoms         []symptomResponse `json:"symptoms"`
	Aliases          []string          `json:"aliases"`
	Contagious       bool              `json:"contagious"`
	EmergencyWarning bool              `json:"emergency_warning"`
	HomeCareTips     string            `json:"home_care_tips,omitempty"`
}

// listIllnessesHandler godoc
// @Summary Listar enfermedades
// @Description Catálogo predefinido más las enfermedades personalizadas del sistema.
// @Tags illnesses
// @Produce json
// @Success 200 {array} illnessResponse
// @Failure 401 {string} string "unauthorized"
// @Router /illnesses [get]
func listIllnessesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requireClaims(w, r) {
			return
		}

		items, err := svc.GetAll(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]illnessResponse, 0, len(items))
		for _, ill := range items {
			out = append(out, toIllnessResponse(ill))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func getIllnessHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requireClaims(w, r) {
			return
		}

		ill, err := svc.GetByID(r.Context(), chi.URLParam(r, "illnessID"))
		if err != nil {
			http.Error(w, "illness not found", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, toIllnessResponse(ill))
	}
}

// createIllnessHandler godoc
// @Summary Agregar enfermedad personalizada
// @Description Crea una entrada fuera del catálogo predefinido. El nombre es obligatorio.
// @Tags illnesses
// @Accept json
// @Produce json
// @Param payload body illnessPayload true "Enfermedad personalizada"
// @Success 201 {object} illnessResponse
// @Failure 400 {string} string "invalid json / validación"
// @Failure 401 {string} string "unauthorized"
// @Router /illnesses [post]
func createIllnessHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requireClaims(w, r) {
			return
		}

		var req illnessPayload
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		ill, err := svc.AddCustom(r.Context(), toCustomInput(req))
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		writeJSON(w, http.StatusCreated, toIllnessResponse(ill))
	}
}

// updateIllnessHandler godoc
// @Summary Actualizar enfermedad personalizada
// @Description Las entradas predefinidas del catálogo son inmutables: un id predefinido devuelve 404.
// @Tags illnesses
// @Accept json
// @Produce json
// @Param illnessID path string true "ID de la enfermedad personalizada"
// @Param payload body illnessPayload true "Datos completos"
// @Success 200 {object} illnessResponse
// @Failure 400 {string} string "invalid json / validación"
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "custom illness not found"
// @Router /illnesses/{illnessID} [put]
func updateIllnessHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requireClaims(w, r) {
			return
		}

		var req illnessPayload
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		ill, err := svc.UpdateCustom(r.Context(), chi.URLParam(r, "illnessID"), toCustomInput(req))
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidInput):
				http.Error(w, err.Error(), http.StatusBadRequest)
			default:
				http.Error(w, "custom illness not found", http.StatusNotFound)
			}
			return
		}
		writeJSON(w, http.StatusOK, toIllnessResponse(ill))
	}
}

// deleteIllnessHandler godoc
// @Summary Borrar enfermedad personalizada
// @Description Solo borra entradas personalizadas; un id predefinido devuelve 404.
// @Tags illnesses
// @Param illnessID path string true "ID de la enfermedad personalizada"
// @Success 204 {string} string ""
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "custom illness not found"
// @Router /illnesses/{illnessID} [delete]
func deleteIllnessHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requireClaims(w, r) {
			return
		}

		if err := svc.DeleteCustom(r.Context(), chi.URLParam(r, "illnessID")); err != nil {
			http.Error(w, "custom illness not found", http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func requireClaims(w http.ResponseWriter, r *http.Request) bool {
	claims, ok := middleware.GetClaims(r.Context())
	if !ok || strings.TrimSpace(claims.UserID) == "" {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return false
	}
	return true
}

func toCustomInput(req illnessPayload) CustomInput {
	in := CustomInput{
		Name:             req.Name,
		Icon:             req.Icon,
		Description:      req.Description,
		Category:         Category(strings.TrimSpace(req.Category)),
		Aliases:          req.Aliases,
		Contagious:       req.Contagious,
		EmergencyWarning: req.EmergencyWarning,
		HomeCareTips:     req.HomeCareTips,
	}
	for _, sym := range req.Symptoms {
		in.Symptoms = append(in.Symptoms, SymptomInput{
			Name:            sym.Name,
			Commonality:     Commonality(strings.TrimSpace(sym.Commonality)),
			TypicalSeverity: sym.TypicalSeverity,
		})
	}
	return in
}

func toIllnessResponse(ill Illness) illnessResponse {
	symptoms := make([]symptomResponse, 0, len(ill.Symptoms))
	for _, sym := range ill.Symptoms {
		symptoms = append(symptoms, symptomResponse{
			ID:              sym.ID,
			Name:            sym.Name,
			Commonality:     sym.Commonality,
			TypicalSeverity: sym.TypicalSeverity,
		})
	}
	aliases := ill.Aliases
	if aliases == nil {
		aliases = []string{}
	}
	return illnessResponse{
		ID:               ill.ID,
		Name:             ill.Name,
		Icon:             ill.Icon,
		Description:      ill.Description,
		IsPredefined:     ill.IsPredefined,
		Category:         ill.Category,
		Symptoms:         symptoms,
		Aliases:          aliases,
		Contagious:       ill.Contagious,
		EmergencyWarning: ill.EmergencyWarning,
		HomeCareTips:     ill.HomeCareTips,
	}
}

// writeJSON está duplicado intencionalmente en handlers de distintos módulos
// para evitar crear paquetes/helpers compartidos demasiado pronto.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
