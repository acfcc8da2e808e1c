package adoptions

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"adoptme/internal/domain/pets"
	"adoptme/internal/domain/users"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/adoptions", func(ar chi.Router) {
		ar.Get("/", listAdoptionsHandler(svc))
		ar.Get("/{aid}", getAdoptionHandler(svc))
		ar.Post("/{uid}/{pid}", adoptHandler(svc))
	})
}

type adoptionResponse struct {
	ID        string    `json:"_id"`
	Owner     string    `json:"owner"`
	Pet       string    `json:"pet"`
	CreatedAt time.Time `json:"created_at"`
}

// listAdoptionsHandler godoc
//
//	@Summary	Listar adopciones
//	@Tags		Adoptions
//	@Success	200	{object}	map[string]any	"payload: array de adopciones"
//	@Router		/api/adoptions [get]
func listAdoptionsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		out := make([]adoptionResponse, 0, len(items))
		for _, a := range items {
			out = append(out, toAdoptionResponse(a))
		}
		writePayload(w, out)
	}
}

// getAdoptionHandler godoc
//
//	@Summary	Obtener adopción por id
//	@Tags		Adoptions
//	@Param		aid	path		string			true	"id de la adopción"
//	@Success	200	{object}	map[string]any	"payload: adopción"
//	@Failure	404	{object}	map[string]any	"error: Adoption not found"
//	@Router		/api/adoptions/{aid} [get]
func getAdoptionHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		a, err := svc.GetByID(r.Context(), chi.URLParam(r, "aid"))
		switch {
		case err == nil:
			writePayload(w, toAdoptionResponse(a))
		case errors.Is(err, ErrNotFound):
			writeError(w, http.StatusNotFound, "Adoption not found")
		default:
			writeError(w, http.StatusInternalServerError, "Internal server error")
		}
	}
}

// adoptHandler godoc
//
//	@Summary	Adoptar una mascota
//	@Tags		Adoptions
//	@Param		uid	path		string			true	"id del usuario"
//	@Param		pid	path		string			true	"id de la mascota"
//	@Success	200	{object}	map[string]any	"message: Pet adopted"
//	@Failure	400	{object}	map[string]any	"error: Pet is already adopted"
//	@Failure	404	{object}	map[string]any	"error: User not found / Pet not found"
//	@Router		/api/adoptions/{uid}/{pid} [post]
func adoptHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		a, err := svc.Adopt(r.Context(), chi.URLParam(r, "uid"), chi.URLParam(r, "pid"))
		switch {
		case err == nil:
			writeJSON(w, http.StatusOK, map[string]any{
				"status":  "success",
				"message": "Pet adopted",
				"payload": a.ID,
			})
		case errors.Is(err, users.ErrNotFound):
			writeError(w, http.StatusNotFound, "User not found")
		case errors.Is(err, pets.ErrNotFound):
			writeError(w, http.StatusNotFound, "Pet not found")
		case errors.Is(err, pets.ErrAlreadyAdopted):
			writeError(w, http.StatusBadRequest, "Pet is already adopted")
		default:
			writeError(w, http.StatusInternalServerError, "Internal server error")
		}
	}
}

func toAdoptionResponse(a Adoption) adoptionResponse {
	return adoptionResponse{
		ID:        a.ID,
		Owner:     a.OwnerID,
		Pet:       a.PetID,
		CreatedAt: a.CreatedAt,
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

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]any{"status": "error", "error": msg})
}
