package auth

import "time"

// Language son los idiomas soportados por la app.
type Language string

const (
	LanguageEnglish            Language = "en"
	LanguageChineseSimplified  Language = "zh-Hans"
	LanguageChineseTraditional Language = "zh-Hant"
)

func ValidLanguage(l Language) bool {
	switch l {
	case LanguageEnglish, LanguageChineseSimplified, LanguageChineseTraditional:
		return true
	}
	return false
}

type User struct {
	ID          string
	Email       string
	DisplayName string
	AvatarURL   string
	Language    Language

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TokenPair es lo que devuelven login/registro.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64 // segundos
}
