package auth

import (
	"encoding/json"
	"errors"
	"net/http"

	"pawcare-service/internal/middleware"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/auth", func(ar chi.Router) {
		ar.Post("/register", registerHandler(svc))
		ar.Post("/login", loginHandler(svc))
		ar.Post("/reset-password", resetPasswordHandler(svc))

		ar.Post("/otp/send", sendOTPHandler(svc))
		ar.Post("/otp/login", loginOTPHandler(svc))
	})

	r.Get("/me", getProfileHandler(svc))
	r.Patch("/me", updateProfileHandler(svc))
}

type credentialsPayload struct {
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password,omitempty"`
}

type otpSendPayload struct {
	Email string `json:"email"`
}

type otpLoginPayload struct {
	Email string `json:"email"`
	Code  string `json:"code"`
}

type profilePayload struct {
	DisplayName string `json:"display_name,omitempty"`
	AvatarURL   string `json:"avatar_url,omitempty"`
	Language    string `json:"language,omitempty" enums:"en,zh-Hans,zh-Hant"`
}

type userResponse struct {
	ID          string   `json:"id"`
	Email       string   `json:"email"`
	DisplayName string   `json:"display_name"`
	AvatarURL   string   `json:"avatar_url,omitempty"`
	Language    Language `json:"language"`
}

type sessionResponse struct {
	User         userResponse `json:"user"`
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	ExpiresIn    int64        `json:"expires_in"`
}

// registerHandler godoc
// @Summary Registro de usuario
// @Description Registro simulado: valida credenciales, hace upsert por email y emite tokens.
// @Tags auth
// @Accept json
// @Produce json
// @Param payload body credentialsPayload true "Credenciales con confirmación"
// @Success 201 {object} sessionResponse
// @Failure 400 {string} string "invalid json / validación"
// @Router /auth/register [post]
func registerHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req credentialsPayload
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		u, pair, err := svc.Register(r.Context(), Credentials{
			Email:           req.Email,
			Password:        req.Password,
			ConfirmPassword: req.ConfirmPassword,
		})
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		writeJSON(w, http.StatusCreated, toSessionResponse(u, pair))
	}
}

// loginHandler godoc
// @Summary Login con email y password
// @Tags auth
// @Accept json
// @Produce json
// @Param payload body credentialsPayload true "Credenciales"
// @Success 200 {object} sessionResponse
// @Failure 400 {string} string "invalid json / validación"
// @Router /auth/login [post]
func loginHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req credentialsPayload
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		u, pair, err := svc.Login(r.Context(), Credentials{
			Email:    req.Email,
			Password: req.Password,
		})
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		writeJSON(w, http.StatusOK, toSessionResponse(u, pair))
	}
}

// sendOTPHandler godoc
// @Summary Enviar código OTP
// @Description Envío simulado: siempre responde 202 si el email es válido.
// @Tags auth
// @Accept json
// @Param payload body otpSendPayload true "Email destino"
// @Success 202 {string} string ""
// @Failure 400 {string} string "invalid json / validación"
// @Router /auth/otp/send [post]
func sendOTPHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req otpSendPayload
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		if err := svc.SendOTP(r.Context(), req.Email); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		w.WriteHeader(http.StatusAccepted)
	}
}

// loginOTPHandler godoc
// @Summary Login con código OTP
// @Description Acepta cualquier código de exactamente 6 dígitos.
// @Tags auth
// @Accept json
// @Produce json
// @Param payload body otpLoginPayload true "Email y código"
// @Success 200 {object} sessionResponse
// @Failure 400 {string} string "invalid json / validación"
// @Router /auth/otp/login [post]
func loginOTPHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req otpLoginPayload
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		u, pair, err := svc.LoginOTP(r.Context(), OTPRequest{Email: req.Email, Code: req.Code})
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		writeJSON(w, http.StatusOK, toSessionResponse(u, pair))
	}
}

// resetPasswordHandler godoc
// @Summary Recuperar contraseña
// @Description Flujo simulado: valida el email y responde 202.
// @Tags auth
// @Accept json
// @Param payload body otpSendPayload true "Email de la cuenta"
// @Success 202 {string} string ""
// @Failure 400 {string} string "invalid json / validación"
// @Router /auth/reset-password [post]
func resetPasswordHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req otpSendPayload
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		if err := svc.ResetPassword(r.Context(), req.Email); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		w.WriteHeader(http.StatusAccepted)
	}
}

// getProfileHandler godoc
// @Summary Perfil del usuario autenticado
// @Tags auth
// @Produce json
// @Success 200 {object} userResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "user not found"
// @Router /me [get]
func getProfileHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		u, err := svc.GetProfile(r.Context(), claims.UserID)
		if err != nil {
			http.Error(w, "user not found", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, toUserResponse(u))
	}
}

// updateProfileHandler godoc
// @Summary Actualizar perfil
// @Description Actualización parcial: solo los campos presentes cambian.
// @Tags auth
// @Accept json
// @Produce json
// @Param payload body profilePayload true "Campos a actualizar"
// @Success 200 {object} userResponse
// @Failure 400 {string} string "invalid json / validación"
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "user not found"
// @Router /me [patch]
func updateProfileHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req profilePayload
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		u, err := svc.UpdateProfile(r.Context(), claims.UserID, ProfileInput{
			DisplayName: req.DisplayName,
			AvatarURL:   req.AvatarURL,
			Language:    Language(req.Language),
		})
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidInput):
				http.Error(w, err.Error(), http.StatusBadRequest)
			default:
				http.Error(w, "user not found", http.StatusNotFound)
			}
			return
		}
		writeJSON(w, http.StatusOK, toUserResponse(u))
	}
}

func toUserResponse(u User) userResponse {
	return userResponse{
		ID:          u.ID,
		Email:       u.Email,
		DisplayName: u.DisplayName,
		AvatarURL:   u.AvatarURL,
		Language:    u.Language,
	}
}

func toSessionResponse(u User, pair TokenPair) sessionResponse {
	return sessionResponse{
		User:         toUserResponse(u),
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresIn:    pair.ExpiresIn,
	}
}

// writeJSON está duplicado intencionalmente en handlers de distintos módulos
// para evitar crear paquetes/helpers compartidos demasiado pronto.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
