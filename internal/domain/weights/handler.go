package weights

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"pawcare-service/internal/domain/pets"
	"pawcare-service/internal/middleware"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, petsSvc *pets.Service) {
	r.Route("/pets/{petID}/weights", func(wr chi.Router) {
		wr.Post("/", createWeightHandler(svc, petsSvc))
		wr.Get("/", listWeightsHandler(svc, petsSvc))

		wr.Get("/latest", latestWeightHandler(svc, petsSvc))
		wr.Get("/delta", weightDeltaHandler(svc, petsSvc))

		wr.Put("/{recordID}", updateWeightHandler(svc, petsSvc))
		wr.Delete("/{recordID}", deleteWeightHandler(svc, petsSvc))
	})
}

type weightPayload struct {
	Weight float64 `json:"weight"` // kg
	Date   string  `json:"date"`   // RFC3339
	Notes  string  `json:"notes,omitempty"`
}

type weightResponse struct {
	ID     string    `json:"id"`
	PetID  string    `json:"pet_id"`
	Weight float64   `json:"weight"`
	Date   time.Time `json:"date"`
	Notes  string    `json:"notes,omitempty"`
}

type weightDeltaResponse struct {
	Delta *float64 `json:"delta"` // null si hay menos de dos mediciones
}

// createWeightHandler godoc
// @Summary Registrar medición de peso
// @Description Agrega una medición en kg (rango válido 0.5–15.0). La colección queda ordenada por fecha descendente.
// @Tags weights
// @Accept json
// @Produce json
// @Param petID path string true "ID de la mascota"
// @Param payload body weightPayload true "Medición; date en RFC3339"
// @Success 201 {object} weightResponse
// @Failure 400 {string} string "invalid json / rango de peso"
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "pet not found"
// @Router /pets/{petID}/weights [post]
func createWeightHandler(svc *Service, petsSvc *pets.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		petID, ok := authorizePet(w, r, petsSvc)
		if !ok {
			return
		}

		in, err := decodeWeightPayload(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		rec, err := svc.Create(r.Context(), petID, in)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		writeJSON(w, http.StatusCreated, toWeightResponse(rec))
	}
}

// listWeightsHandler godoc
// @Summary Historial de peso
// @Description Mediciones de la mascota, más recientes primero.
// @Tags weights
// @Produce json
// @Param petID path string true "ID de la mascota"
// @Success 200 {array} weightResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "pet not found"
// @Router /pets/{petID}/weights [get]
func listWeightsHandler(svc *Service, petsSvc *pets.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		petID, ok := authorizePet(w, r, petsSvc)
		if !ok {
			return
		}

		items, err := svc.ListByPet(r.Context(), petID)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]weightResponse, 0, len(items))
		for _, rec := range items {
			out = append(out, toWeightResponse(rec))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// latestWeightHandler godoc
// @Summary Última medición de peso
// @Tags weights
// @Produce json
// @Param petID path string true "ID de la mascota"
// @Success 200 {object} weightResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "pet not found / no weight records"
// @Router /pets/{petID}/weights/latest [get]
func latestWeightHandler(svc *Service, petsSvc *pets.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		petID, ok := authorizePet(w, r, petsSvc)
		if !ok {
			return
		}

		rec, err := svc.Latest(r.Context(), petID)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		if rec == nil {
			http.Error(w, "no weight records", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, toWeightResponse(*rec))
	}
}

// weightDeltaHandler godoc
// @Summary Variación de peso
// @Description Diferencia (última − anterior) en kg; delta=null con menos de dos mediciones.
// @Tags weights
// @Produce json
// @Param petID path string true "ID de la mascota"
// @Success 200 {object} weightDeltaResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "pet not found"
// @Router /pets/{petID}/weights/delta [get]
func weightDeltaHandler(svc *Service, petsSvc *pets.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		petID, ok := authorizePet(w, r, petsSvc)
		if !ok {
			return
		}

		delta, err := svc.Delta(r.Context(), petID)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, weightDeltaResponse{Delta: delta})
	}
}

// updateWeightHandler godoc
// @Summary Actualizar medición de peso
// @Tags weights
// @Accept json
// @Produce json
// @Param petID path string true "ID de la mascota"
// @Param recordID path string true "ID de la medición"
// @Param payload body weightPayload true "Medición"
// @Success 200 {object} weightResponse
// @Failure 400 {string} string "invalid json / rango de peso"
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "weight record not found"
// @Router /pets/{petID}/weights/{recordID} [put]
func updateWeightHandler(svc *Service, petsSvc *pets.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		petID, ok := authorizePet(w, r, petsSvc)
		if !ok {
			return
		}

		recordID := chi.URLParam(r, "recordID")
		current, err := svc.GetByID(r.Context(), recordID)
		if err != nil || current.PetID != petID {
			http.Error(w, "weight record not found", http.StatusNotFound)
			return
		}

		in, err := decodeWeightPayload(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		updated, err := svc.Update(r.Context(), recordID, in)
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidInput):
				http.Error(w, err.Error(), http.StatusBadRequest)
			case errors.Is(err, ErrNotFound):
				http.Error(w, "weight record not found", http.StatusNotFound)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}
		writeJSON(w, http.StatusOK, toWeightResponse(updated))
	}
}

func deleteWeightHandler(svc *Service, petsSvc *pets.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		petID, ok := authorizePet(w, r, petsSvc)
		if !ok {
			return
		}

		recordID := chi.URLParam(r, "recordID")
		rec, err := svc.GetByID(r.Context(), recordID)
		if err != nil || rec.PetID != petID {
			http.Error(w, "weight record not found", http.StatusNotFound)
			return
		}

		if err := svc.Delete(r.Context(), recordID); err != nil {
			http.Error(w, "weight record not found", http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func authorizePet(w http.ResponseWriter, r *http.Request, petsSvc *pets.Service) (string, bool) {
	claims, ok := middleware.GetClaims(r.Context())
	if !ok || strings.TrimSpace(claims.UserID) == "" {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return "", false
	}

	petID := chi.URLParam(r, "petID")
	owner, err := petsSvc.OwnerOf(r.Context(), petID)
	if err != nil || owner != claims.UserID {
		http.Error(w, "pet not found", http.StatusNotFound)
		return "", false
	}
	return petID, true
}

func decodeWeightPayload(r *http.Request) (CreateInput, error) {
	var req weightPayload
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return CreateInput{}, errors.New("invalid json")
	}

	in := CreateInput{Weight: req.Weight, Notes: req.Notes}
	if v := strings.TrimSpace(req.Date); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return CreateInput{}, errors.New("date must be RFC3339")
		}
		in.Date = t
	}
	return in, nil
}

func toWeightResponse(rec WeightRecord) weightResponse {
	return weightResponse{
		ID:     rec.ID,
		PetID:  rec.PetID,
		Weight: rec.Weight,
		Date:   rec.Date,
		Notes:  rec.Notes,
	}
}

// writeJSON está duplicado intencionalmente en handlers de distintos módulos
// para evitar crear paquetes/helpers compartidos demasiado pronto.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
