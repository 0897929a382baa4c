package records

import "strings"

// RecordType clasifica el evento de salud registrado.
type RecordType string

const (
	TypeVaccination RecordType = "vaccination"
	TypeMedication  RecordType = "medication"
	TypeVetVisit    RecordType = "vet_visit"
	TypeSymptom     RecordType = "symptom"
)

func ValidRecordType(t RecordType) bool {
	switch t {
	case TypeVaccination, TypeMedication, TypeVetVisit, TypeSymptom:
		return true
	}
	return false
}

// Severity indica la gravedad observada.
type Severity string

const (
	SeverityMild     Severity = "mild"
	SeverityModerate Severity = "moderate"
	SeveritySevere   Severity = "severe"
)

func ValidSeverity(s Severity) bool {
	switch s {
	case SeverityMild, SeverityModerate, SeveritySevere:
		return true
	}
	return false
}

// FileType del adjunto. Sin icono ni color: eso es asunto de la UI.
type FileType string

const (
	FileImage    FileType = "image"
	FileVideo    FileType = "video"
	FileDocument FileType = "document"
	FilePDF      FileType = "pdf"
)

func ValidFileType(t FileType) bool {
	switch t {
	case FileImage, FileVideo, FileDocument, FilePDF:
		return true
	}
	return false
}

// TimeRange define las ventanas del resumen de salud.
// Ventanas de ancho fijo en días, sin límites de calendario reales.
type TimeRange string

const (
	RangeWeekly    TimeRange = "weekly"
	RangeMonthly   TimeRange = "monthly"
	RangeQuarterly TimeRange = "quarterly"
	RangeYearly    TimeRange = "yearly"
)

// Days devuelve el ancho de la ventana.
func (tr TimeRange) Days() int {
	switch tr {
	case RangeWeekly:
		return 7
	case RangeMonthly:
		return 30
	case RangeQuarterly:
		return 90
	case RangeYearly:
		return 365
	default:
		return 0
	}
}

func ParseTimeRange(s string) (TimeRange, bool) {
	tr := TimeRange(strings.ToLower(strings.TrimSpace(s)))
	return tr, tr.Days() > 0
}
