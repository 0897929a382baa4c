package records

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"pawcare-service/internal/domain/pets"
	"pawcare-service/internal/middleware"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, petsSvc *pets.Service) {
	r.Route("/pets/{petID}/records", func(rr chi.Router) {
		rr.Post("/", createRecordHandler(svc, petsSvc))
		rr.Get("/", listRecordsHandler(svc, petsSvc))

		rr.Get("/next-vaccination", nextVaccinationHandler(svc, petsSvc))

		rr.Get("/{recordID}", getRecordHandler(svc, petsSvc))
		rr.Put("/{recordID}", updateRecordHandler(svc, petsSvc))
		rr.Delete("/{recordID}", deleteRecordHandler(svc, petsSvc))
	})

	r.Get("/pets/{petID}/summary", summaryHandler(svc, petsSvc))
}

type attachmentPayload struct {
	FileName string `json:"file_name"`
	FileType string `json:"file_type" enums:"image,video,document,pdf"`
	FilePath string `json:"file_path"`
	Size     int64  `json:"size,omitempty"`
}

type recordPayload struct {
	IllnessID    string              `json:"illness_id,omitempty"`
	Type         string              `json:"type" enums:"vaccination,medication,vet_visit,symptom"`
	Severity     string              `json:"severity" enums:"mild,moderate,severe"`
	Title        string              `json:"title"`
	Notes        string              `json:"notes,omitempty"`
	Veterinarian string              `json:"veterinarian,omitempty"`
	OccurredAt   string              `json:"occurred_at"`             // RFC3339
	ReminderAt   string              `json:"reminder_date,omitempty"` // RFC3339; vacío = sin recordatorio
	Attachments  []attachmentPayload `json:"attachments,omitempty"`
}

type attachmentResponse struct {
	ID         string    `json:"id"`
	FileName   string    `json:"file_name"`
	FileType   FileType  `json:"file_type"`
	FilePath   string    `json:"file_path"`
	Size       int64     `json:"size,omitempty"`
	UploadedAt time.Time `json:"uploaded_at"`
}

type recordResponse struct {
	ID           string               `json:"id"`
	PetID        string               `json:"pet_id"`
	IllnessID    string               `json:"illness_id,omitempty"`
	Type         RecordType           `json:"type"`
	Severity     Severity             `json:"severity"`
	Title        string               `json:"title"`
	Notes        string               `json:"notes,omitempty"`
	Veterinarian string               `json:"veterinarian,omitempty"`
	OccurredAt   time.Time            `json:"occurred_at"`
	RecordedAt   time.Time            `json:"recorded_at"`
	ReminderAt   *time.Time           `json:"reminder_date,omitempty"`
	Attachments  []attachmentResponse `json:"attachments"`
}

type nextVaccinationResponse struct {
	Due *time.Time `json:"due"` // null = ninguna pendiente
}

type summaryResponse struct {
	PetID        string    `json:"pet_id"`
	TimeRange    TimeRange `json:"time_range"`
	TotalRecords int       `json:"total_records"`
}

// createRecordHandler godoc
// @Summary Crear health record
// @Description Registra un evento médico para la mascota. occurred_at y reminder_date en RFC3339.
// @Tags records
// @Accept json
// @Produce json
// @Param petID path string true "ID de la mascota"
// @Param payload body recordPayload true "Datos del registro"
// @Success 201 {object} recordResponse
// @Failure 400 {string} string "invalid json / validación"
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "pet not found"
// @Router /pets/{petID}/records [post]
func createRecordHandler(svc *Service, petsSvc *pets.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		petID, ok := authorizePet(w, r, petsSvc)
		if !ok {
			return
		}

		var req recordPayload
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		in, err := toCreateInput(req)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		rec, err := svc.Create(r.Context(), petID, in)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		writeJSON(w, http.StatusCreated, toRecordResponse(rec))
	}
}

// listRecordsHandler godoc
// @Summary Listar health records de una mascota
// @Description Lista en orden de inserción. Filtros: types (CSV), within_days, from/to (RFC3339), q, limit.
// @Tags records
// @Produce json
// @Param petID path string true "ID de la mascota"
// @Param types query string false "CSV de tipos (ej: vaccination,symptom)"
// @Param within_days query int false "Solo registros de los últimos N días"
// @Param from query string false "occurred_at mínimo (RFC3339)"
// @Param to query string false "occurred_at máximo (RFC3339)"
// @Param q query string false "Búsqueda libre en título/notas"
// @Param limit query int false "Máximo de registros (1-200)"
// @Success 200 {array} recordResponse
// @Failure 400 {string} string "filtros inválidos"
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "pet not found"
// @Router /pets/{petID}/records [get]
func listRecordsHandler(svc *Service, petsSvc *pets.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		petID, ok := authorizePet(w, r, petsSvc)
		if !ok {
			return
		}

		filter, err := parseFilter(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		items, err := svc.ListByPet(r.Context(), petID, filter)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]recordResponse, 0, len(items))
		for _, rec := range items {
			out = append(out, toRecordResponse(rec))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func getRecordHandler(svc *Service, petsSvc *pets.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		petID, ok := authorizePet(w, r, petsSvc)
		if !ok {
			return
		}

		rec, err := svc.GetByID(r.Context(), chi.URLParam(r, "recordID"))
		if err != nil || rec.PetID != petID {
			http.Error(w, "record not found", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, toRecordResponse(rec))
	}
}

// updateRecordHandler godoc
// @Summary Actualizar health record
// @Tags records
// @Accept json
// @Produce json
// @Param petID path string true "ID de la mascota"
// @Param recordID path string true "ID del registro"
// @Param payload body recordPayload true "Datos completos del registro"
// @Success 200 {object} recordResponse
// @Failure 400 {string} string "invalid json / validación"
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "record not found"
// @Router /pets/{petID}/records/{recordID} [put]
func updateRecordHandler(svc *Service, petsSvc *pets.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		petID, ok := authorizePet(w, r, petsSvc)
		if !ok {
			return
		}

		recordID := chi.URLParam(r, "recordID")
		current, err := svc.GetByID(r.Context(), recordID)
		if err != nil || current.PetID != petID {
			http.Error(w, "record not found", http.StatusNotFound)
			return
		}

		var req recordPayload
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		in, err := toCreateInput(req)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		updated, err := svc.Update(r.Context(), recordID, UpdateInput(in))
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidInput):
				http.Error(w, err.Error(), http.StatusBadRequest)
			case errors.Is(err, ErrNotFound):
				http.Error(w, "record not found", http.StatusNotFound)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		writeJSON(w, http.StatusOK, toRecordResponse(updated))
	}
}

func deleteRecordHandler(svc *Service, petsSvc *pets.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		petID, ok := authorizePet(w, r, petsSvc)
		if !ok {
			return
		}

		recordID := chi.URLParam(r, "recordID")
		rec, err := svc.GetByID(r.Context(), recordID)
		if err != nil || rec.PetID != petID {
			http.Error(w, "record not found", http.StatusNotFound)
			return
		}

		if err := svc.Delete(r.Context(), recordID); err != nil {
			http.Error(w, "record not found", http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// nextVaccinationHandler godoc
// @Summary Próxima vacunación pendiente
// @Description Devuelve el menor reminder_date a futuro entre las vacunaciones de la mascota; due=null si no hay ninguna.
// @Tags records
// @Produce json
// @Param petID path string true "ID de la mascota"
// @Success 200 {object} nextVaccinationResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "pet not found"
// @Router /pets/{petID}/records/next-vaccination [get]
func nextVaccinationHandler(svc *Service, petsSvc *pets.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		petID, ok := authorizePet(w, r, petsSvc)
		if !ok {
			return
		}

		due, err := svc.NextVaccinationDue(r.Context(), petID)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, nextVaccinationResponse{Due: due})
	}
}

// summaryHandler godoc
// @Summary Resumen de salud por ventana de tiempo
// @Description Cuenta los registros de la mascota dentro de la ventana (weekly=7d, monthly=30d, quarterly=90d, yearly=365d).
// @Tags records
// @Produce json
// @Param petID path string true "ID de la mascota"
// @Param range query string true "weekly | monthly | quarterly | yearly"
// @Success 200 {object} summaryResponse
// @Failure 400 {string} string "unknown range"
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "pet not found"
// @Router /pets/{petID}/summary [get]
func summaryHandler(svc *Service, petsSvc *pets.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		petID, ok := authorizePet(w, r, petsSvc)
		if !ok {
			return
		}

		tr, ok := ParseTimeRange(r.URL.Query().Get("range"))
		if !ok {
			http.Error(w, "unknown range", http.StatusBadRequest)
			return
		}

		sum, err := svc.Summary(r.Context(), petID, tr)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, summaryResponse{
			PetID:        sum.PetID,
			TimeRange:    sum.TimeRange,
			TotalRecords: sum.TotalRecords,
		})
	}
}

// authorizePet corta con 401/404 si no hay claims o la mascota no es del usuario.
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

func parseFilter(r *http.Request) (Filter, error) {
	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 200 {
			limit = n
		}
	}

	filter := Filter{Limit: limit}

	if v := strings.TrimSpace(r.URL.Query().Get("types")); v != "" {
		parts := strings.Split(v, ",")
		out := make([]RecordType, 0, len(parts))
		for _, p := range parts {
			t := RecordType(strings.TrimSpace(p))
			if t == "" {
				continue
			}
			if !ValidRecordType(t) {
				return Filter{}, errors.New("unknown record type: " + string(t))
			}
			out = append(out, t)
		}
		filter.Types = out
	}

	if v := strings.TrimSpace(r.URL.Query().Get("within_days")); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return Filter{}, errors.New("within_days must be a positive integer")
		}
		filter.WithinDays = n
	}

	if v := strings.TrimSpace(r.URL.Query().Get("from")); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return Filter{}, errors.New("from must be RFC3339")
		}
		filter.From = &t
	}
	if v := strings.TrimSpace(r.URL.Query().Get("to")); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return Filter{}, errors.New("to must be RFC3339")
		}
		filter.To = &t
	}

	if v := strings.TrimSpace(r.URL.Query().Get("q")); v != "" {
		filter.Query = v
	}

	return filter, nil
}

func toCreateInput(req recordPayload) (CreateInput, error) {
	in := CreateInput{
		IllnessID:    req.IllnessID,
		Type:         RecordType(strings.TrimSpace(req.Type)),
		Severity:     Severity(strings.TrimSpace(req.Severity)),
		Title:        req.Title,
		Notes:        req.Notes,
		Veterinarian: req.Veterinarian,
	}

	if v := strings.TrimSpace(req.OccurredAt); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return CreateInput{}, errors.New("occurred_at must be RFC3339")
		}
		in.OccurredAt = t
	}
	if v := strings.TrimSpace(req.ReminderAt); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return CreateInput{}, errors.New("reminder_date must be RFC3339")
		}
		in.ReminderAt = &t
	}

	for _, a := range req.Attachments {
		in.Attachments = append(in.Attachments, AttachmentInput{
			FileName: a.FileName,
			FileType: FileType(strings.TrimSpace(a.FileType)),
			FilePath: a.FilePath,
			Size:     a.Size,
		})
	}

	return in, nil
}

func toRecordResponse(rec HealthRecord) recordResponse {
	atts := make([]attachmentResponse, 0, len(rec.Attachments))
	for _, a := range rec.Attachments {
		atts = append(atts, attachmentResponse{
			ID:         a.ID,
			FileName:   a.FileName,
			FileType:   a.FileType,
			FilePath:   a.FilePath,
			Size:       a.Size,
			UploadedAt: a.UploadedAt,
		})
	}
	return recordResponse{
		ID:           rec.ID,
		PetID:        rec.PetID,
		IllnessID:    rec.IllnessID,
		Type:         rec.Type,
		Severity:     rec.Severity,
		Title:        rec.Title,
		Notes:        rec.Notes,
		Veterinarian: rec.Veterinarian,
		OccurredAt:   rec.OccurredAt,
		RecordedAt:   rec.RecordedAt,
		ReminderAt:   rec.ReminderAt,
		Attachments:  atts,
	}
}

// writeJSON está duplicado intencionalmente en handlers de distintos módulos
// para evitar crear paquetes/helpers compartidos demasiado pronto.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
