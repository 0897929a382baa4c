package records

import "time"

// Attachment es un archivo asociado a un health record.
type Attachment struct {
	ID       string
	FileName string
	FileType FileType
	FilePath string
	Size     int64 // bytes; 0 = desconocido

	UploadedAt time.Time
}

// HealthRecord es un evento médico o síntoma con fecha, ligado a una mascota.
// IllnessID es una referencia débil al catálogo de enfermedades: se usa para
// lookups, no implica ownership y no se valida al escribir.
type HealthRecord struct {
	ID        string
	PetID     string
	IllnessID string

	Type     RecordType
	Severity Severity

	Title        string
	Notes        string
	Veterinarian string

	OccurredAt time.Time
	RecordedAt time.Time

	// ReminderAt es el único campo de recordatorio (vacunas: "válida hasta" /
	// próxima dosis). nil = sin recordatorio, y queda fuera de NextVaccinationDue.
	ReminderAt *time.Time

	Attachments []Attachment
}

// HealthSummary es el resumen agregado de registros en una ventana de tiempo.
type HealthSummary struct {
	PetID        string
	TimeRange    TimeRange
	TotalRecords int
}
