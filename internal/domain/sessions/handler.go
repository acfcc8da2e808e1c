package sessions

import (
	"encoding/json"
	"errors"
	"net/http"

	"adoptme/internal/domain/users"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/sessions", func(sr chi.Router) {
		sr.Post("/register", registerHandler(svc))
		sr.Post("/login", loginHandler(svc))
		sr.Get("/current", currentHandler(svc))
	})
}

type registerRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type currentResponse struct {
	ID        string `json:"_id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
}

// registerHandler godoc
//
//	@Summary	Registrar usuario
//	@Tags		Sessions
//	@Success	200	{object}	map[string]any	"payload: id del usuario nuevo"
//	@Failure	400	{object}	map[string]any	"error: Incomplete values / User already exists"
//	@Router		/api/sessions/register [post]
func registerHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req registerRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Incomplete values")
			return
		}

		id, err := svc.Register(r.Context(), users.CreateInput{
			FirstName: req.FirstName,
			LastName:  req.LastName,
			Email:     req.Email,
			Password:  req.Password,
		})
		switch {
		case err == nil:
			writePayload(w, id)
		case errors.Is(err, users.ErrIncompleteValues):
			writeError(w, http.StatusBadRequest, "Incomplete values")
		case errors.Is(err, users.ErrDuplicateEmail):
			writeError(w, http.StatusBadRequest, "User already exists")
		default:
			writeError(w, http.StatusInternalServerError, "Internal server error")
		}
	}
}

// loginHandler godoc
//
//	@Summary	Iniciar sesión
//	@Tags		Sessions
//	@Success	200	{object}	map[string]any	"message: Logged in (setea cookie de sesión)"
//	@Failure	400	{object}	map[string]any	"error: Incomplete values"
//	@Failure	401	{object}	map[string]any	"error: Incorrect password"
//	@Failure	404	{object}	map[string]any	"error: User doesn't exist"
//	@Router		/api/sessions/login [post]
func loginHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Incomplete values")
			return
		}

		token, err := svc.Login(r.Context(), req.Email, req.Password)
		switch {
		case err == nil:
			http.SetCookie(w, &http.Cookie{
				Name:     CookieName,
				Value:    token,
				Path:     "/",
				MaxAge:   3600,
				HttpOnly: true,
			})
			writeMessage(w, "Logged in")
		case errors.Is(err, users.ErrIncompleteValues):
			writeError(w, http.StatusBadRequest, "Incomplete values")
		case errors.Is(err, users.ErrNotFound):
			writeError(w, http.StatusNotFound, "User doesn't exist")
		case errors.Is(err, ErrBadPassword):
			writeError(w, http.StatusUnauthorized, "Incorrect password")
		default:
			writeError(w, http.StatusInternalServerError, "Internal server error")
		}
	}
}

// currentHandler godoc
//
//	@Summary	Usuario de la sesión actual
//	@Tags		Sessions
//	@Success	200	{object}	map[string]any	"payload: usuario autenticado"
//	@Failure	401	{object}	map[string]any	"error: Not authenticated"
//	@Router		/api/sessions/current [get]
func currentHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(CookieName)
		if err != nil {
			writeError(w, http.StatusUnauthorized, "Not authenticated")
			return
		}

		u, err := svc.Current(r.Context(), cookie.Value)
		if err != nil {
			writeError(w, http.StatusUnauthorized, "Not authenticated")
			return
		}

		writePayload(w, currentResponse{
			ID:        u.ID,
			FirstName: u.FirstName,
			LastName:  u.LastName,
			Email:     u.Email,
			Role:      string(u.Role),
		})
	}
}

// Helpers de respuesta duplicados a propósito por módulo (ver users/handler.go).
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writePayload(w http.ResponseWriter, payload any) {
	writeJSON(w, http.StatusOK, map[string]any{"status": "success", "payload": payload})
}

func writeMessage(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusOK, map[string]any{"status": "success", "message": msg})
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]any{"status": "error", "error": msg})
}
