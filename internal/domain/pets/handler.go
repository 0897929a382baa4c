package pets

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"pawcare-service/internal/middleware"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/pets", func(pr chi.Router) {
		pr.Post("/", createPetHandler(svc))
		pr.Get("/", listPetsHandler(svc))

		pr.Get("/{petID}", getPetHandler(svc))
		pr.Put("/{petID}", updatePetHandler(svc))
		pr.Delete("/{petID}", deletePetHandler(svc))
	})

	// Sugerencias de razas por especie (solo lectura, sin auth)
	r.Get("/breeds", listBreedsHandler())
}

type petPayload struct {
	Name              string   `json:"name"`
	Species           string   `json:"species" enums:"cat,dog,other"`
	Breed             string   `json:"breed"`
	Gender            string   `json:"gender" enums:"male,female,unknown"`
	BirthDate         string   `json:"birth_date"` // YYYY-MM-DD
	IsNeutered        bool     `json:"is_neutered"`
	Allergens         []string `json:"allergens"`
	ChronicConditions []string `json:"chronic_conditions"`
	AvatarURL         string   `json:"avatar_url"`
}

type petResponse struct {
	ID                string    `json:"id"`
	OwnerUserID       string    `json:"owner_user_id"`
	Name              string    `json:"name"`
	Species           Species   `json:"species"`
	Breed             string    `json:"breed"`
	Gender            Gender    `json:"gender"`
	BirthDate         string    `json:"birth_date"`
	Age               int       `json:"age"`
	IsNeutered        bool      `json:"is_neutered"`
	Allergens         []string  `json:"allergens"`
	ChronicConditions []string  `json:"chronic_conditions"`
	AvatarURL         string    `json:"avatar_url,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

type breedsResponse struct {
	Species Species  `json:"species"`
	Breeds  []string `json:"breeds"`
}

// createPetHandler godoc
// @Summary Registrar mascota
// @Description Crea el perfil de una mascota para el usuario autenticado. El nombre no puede ser vacío y la edad derivada de birth_date debe ser mayor a 0.
// @Tags pets
// @Accept json
// @Produce json
// @Param payload body petPayload true "Perfil de la mascota; birth_date en formato YYYY-MM-DD"
// @Success 201 {object} petResponse
// @Failure 400 {string} string "invalid json / validación"
// @Failure 401 {string} string "unauthorized"
// @Router /pets [post]
func createPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req petPayload
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		bd, err := parseBirthDate(req.BirthDate)
		if err != nil {
			http.Error(w, "birth_date must be YYYY-MM-DD", http.StatusBadRequest)
			return
		}

		p, err := svc.Create(r.Context(), claims.UserID, CreateInput{
			Name:              req.Name,
			Species:           Species(strings.TrimSpace(req.Species)),
			Breed:             req.Breed,
			Gender:            Gender(strings.TrimSpace(req.Gender)),
			BirthDate:         bd,
			IsNeutered:        req.IsNeutered,
			Allergens:         req.Allergens,
			ChronicConditions: req.ChronicConditions,
			AvatarURL:         req.AvatarURL,
		})
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		writeJSON(w, http.StatusCreated, toPetResponse(p))
	}
}

// listPetsHandler godoc
// @Summary Listar mis mascotas
// @Tags pets
// @Produce json
// @Success 200 {array} petResponse
// @Failure 401 {string} string "unauthorized"
// @Router /pets [get]
func listPetsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		items, err := svc.ListByOwner(r.Context(), claims.UserID)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]petResponse, 0, len(items))
		for _, p := range items {
			out = append(out, toPetResponse(p))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// getPetHandler godoc
// @Summary Perfil de mascota
// @Tags pets
// @Produce json
// @Param petID path string true "ID de la mascota"
// @Success 200 {object} petResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "pet not found"
// @Router /pets/{petID} [get]
func getPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		p, err := svc.GetByID(r.Context(), chi.URLParam(r, "petID"))
		if err != nil || p.OwnerUserID != claims.UserID {
			http.Error(w, "pet not found", http.StatusNotFound)
			return
		}

		writeJSON(w, http.StatusOK, toPetResponse(p))
	}
}

// updatePetHandler godoc
// @Summary Actualizar mascota
// @Description Reemplaza el perfil completo de la mascota (PUT). Se conservan ID, owner y fecha de alta.
// @Tags pets
// @Accept json
// @Produce json
// @Param petID path string true "ID de la mascota"
// @Param payload body petPayload true "Perfil completo"
// @Success 200 {object} petResponse
// @Failure 400 {string} string "invalid json / validación"
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "pet not found"
// @Router /pets/{petID} [put]
func updatePetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		petID := chi.URLParam(r, "petID")
		current, err := svc.GetByID(r.Context(), petID)
		if err != nil || current.OwnerUserID != claims.UserID {
			http.Error(w, "pet not found", http.StatusNotFound)
			return
		}

		var req petPayload
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		bd, err := parseBirthDate(req.BirthDate)
		if err != nil {
			http.Error(w, "birth_date must be YYYY-MM-DD", http.StatusBadRequest)
			return
		}

		updated, err := svc.Update(r.Context(), petID, UpdateInput{
			Name:              req.Name,
			Species:           Species(strings.TrimSpace(req.Species)),
			Breed:             req.Breed,
			Gender:            Gender(strings.TrimSpace(req.Gender)),
			BirthDate:         bd,
			IsNeutered:        req.IsNeutered,
			Allergens:         req.Allergens,
			ChronicConditions: req.ChronicConditions,
			AvatarURL:         req.AvatarURL,
		})
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidInput):
				http.Error(w, err.Error(), http.StatusBadRequest)
			case errors.Is(err, ErrNotFound):
				http.Error(w, "pet not found", http.StatusNotFound)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		writeJSON(w, http.StatusOK, toPetResponse(updated))
	}
}

// deletePetHandler godoc
// @Summary Borrar mascota
// @Description Borra la mascota y, en cascada, todos sus health records y weight records.
// @Tags pets
// @Param petID path string true "ID de la mascota"
// @Success 204 {string} string ""
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "pet not found"
// @Router /pets/{petID} [delete]
func deletePetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		petID := chi.URLParam(r, "petID")
		p, err := svc.GetByID(r.Context(), petID)
		if err != nil || p.OwnerUserID != claims.UserID {
			http.Error(w, "pet not found", http.StatusNotFound)
			return
		}

		if err := svc.Delete(r.Context(), petID); err != nil {
			if errors.Is(err, ErrNotFound) {
				http.Error(w, "pet not found", http.StatusNotFound)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// listBreedsHandler godoc
// @Summary Razas sugeridas por especie
// @Tags pets
// @Produce json
// @Param species query string true "cat | dog | other"
// @Success 200 {object} breedsResponse
// @Failure 400 {string} string "unknown species"
// @Router /breeds [get]
func listBreedsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sp := Species(strings.TrimSpace(r.URL.Query().Get("species")))
		if !ValidSpecies(sp) {
			http.Error(w, "unknown species", http.StatusBadRequest)
			return
		}
		breeds := CommonBreeds(sp)
		if breeds == nil {
			breeds = []string{}
		}
		writeJSON(w, http.StatusOK, breedsResponse{Species: sp, Breeds: breeds})
	}
}

func parseBirthDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}
	return time.Parse("2006-01-02", s)
}

func toPetResponse(p Pet) petResponse {
	allergens := p.Allergens
	if allergens == nil {
		allergens = []string{}
	}
	conditions := p.ChronicConditions
	if conditions == nil {
		conditions = []string{}
	}
	return petResponse{
		ID:                p.ID,
		OwnerUserID:       p.OwnerUserID,
		Name:              p.Name,
		Species:           p.Species,
		Breed:             p.Breed,
		Gender:            p.Gender,
		BirthDate:         p.BirthDate.Format("2006-01-02"),
		Age:               p.Age(time.Now()),
		IsNeutered:        p.IsNeutered,
		Allergens:         allergens,
		ChronicConditions: conditions,
		AvatarURL:         p.AvatarURL,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
}

// writeJSON está duplicado intencionalmente en handlers de distintos módulos
// para evitar crear paquetes/helpers compartidos demasiado pronto.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
