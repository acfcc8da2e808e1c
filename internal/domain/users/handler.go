package users

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/users", func(ur chi.Router) {
		ur.Get("/", listUsersHandler(svc))
		ur.Post("/", createUserHandler(svc))
		ur.Get("/{uid}", getUserHandler(svc))
		ur.Put("/{uid}", updateUserHandler(svc))
		ur.Delete("/{uid}", deleteUserHandler(svc))
	})
}

type userRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

type userResponse struct {
	ID        string `json:"_id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
}

// listUsersHandler godoc
//
//	@Summary	Listar usuarios
//	@Tags		Users
//	@Success	200	{object}	map[string]any	"payload: array de usuarios"
//	@Router		/api/users [get]
func listUsersHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		out := make([]userResponse, 0, len(items))
		for _, u := range items {
			out = append(out, toUserResponse(u))
		}
		writePayload(w, out)
	}
}

// createUserHandler godoc
//
//	@Summary	Crear usuario
//	@Tags		Users
//	@Success	200	{object}	map[string]any	"payload: usuario creado con _id"
//	@Failure	400	{object}	map[string]any	"error: Incomplete values"
//	@Router		/api/users [post]
func createUserHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req userRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Incomplete values")
			return
		}

		u, err := svc.Create(r.Context(), CreateInput{
			FirstName: req.FirstName,
			LastName:  req.LastName,
			Email:     req.Email,
			Password:  req.Password,
		})
		switch {
		case err == nil:
			writePayload(w, toUserResponse(u))
		case errors.Is(err, ErrIncompleteValues):
			writeError(w, http.StatusBadRequest, "Incomplete values")
		case errors.Is(err, ErrDuplicateEmail):
			writeError(w, http.StatusBadRequest, "User already exists")
		default:
			writeError(w, http.StatusInternalServerError, "Internal server error")
		}
	}
}

// getUserHandler godoc
//
//	@Summary	Obtener usuario por id
//	@Tags		Users
//	@Param		uid	path		string			true	"id del usuario"
//	@Success	200	{object}	map[string]any	"payload: usuario"
//	@Failure	404	{object}	map[string]any	"error: User not found"
//	@Router		/api/users/{uid} [get]
func getUserHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		u, err := svc.GetByID(r.Context(), chi.URLParam(r, "uid"))
		switch {
		case err == nil:
			writePayload(w, toUserResponse(u))
		case errors.Is(err, ErrNotFound):
			writeError(w, http.StatusNotFound, "User not found")
		default:
			writeError(w, http.StatusInternalServerError, "Internal server error")
		}
	}
}

// updateUserHandler godoc
//
//	@Summary	Actualizar usuario (replace completo)
//	@Tags		Users
//	@Param		uid	path		string			true	"id del usuario"
//	@Success	200	{object}	map[string]any	"message: User updated"
//	@Failure	400	{object}	map[string]any	"error: Incomplete values"
//	@Failure	404	{object}	map[string]any	"error: User not found"
//	@Router		/api/users/{uid} [put]
func updateUserHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req userRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Incomplete values")
			return
		}

		err := svc.Update(r.Context(), chi.URLParam(r, "uid"), CreateInput{
			FirstName: req.FirstName,
			LastName:  req.LastName,
			Email:     req.Email,
			Password:  req.Password,
		})
		switch {
		case err == nil:
			writeMessage(w, "User updated")
		case errors.Is(err, ErrIncompleteValues):
			writeError(w, http.StatusBadRequest, "Incomplete values")
		case errors.Is(err, ErrNotFound):
			writeError(w, http.StatusNotFound, "User not found")
		case errors.Is(err, ErrDuplicateEmail):
			writeError(w, http.StatusBadRequest, "User already exists")
		default:
			writeError(w, http.StatusInternalServerError, "Internal server error")
		}
	}
}

// deleteUserHandler godoc
//
//	@Summary	Eliminar usuario
//	@Tags		Users
//	@Param		uid	path		string			true	"id del usuario"
//	@Success	200	{object}	map[string]any	"message: User deleted"
//	@Failure	404	{object}	map[string]any	"error: User not found"
//	@Router		/api/users/{uid} [delete]
func deleteUserHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := svc.Delete(r.Context(), chi.URLParam(r, "uid"))
		switch {
		case err == nil:
			writeMessage(w, "User deleted")
		case errors.Is(err, ErrNotFound):
			writeError(w, http.StatusNotFound, "User not found")
		default:
			writeError(w, http.StatusInternalServerError, "Internal server error")
		}
	}
}

func toUserResponse(u User) userResponse {
	return userResponse{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Role:      string(u.Role),
	}
}

// Los helpers de respuesta se duplican a propósito en cada módulo de dominio
// para no crear paquetes compartidos antes de tiempo.
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
