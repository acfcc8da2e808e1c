package pets

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/pets", func(pr chi.Router) {
		pr.Get("/", listPetsHandler(svc))
		pr.Post("/", createPetHandler(svc))
		pr.Get("/{pid}", getPetHandler(svc))
		pr.Put("/{pid}", updatePetHandler(svc))
		pr.Delete("/{pid}", deletePetHandler(svc))
	})
}

type petRequest struct {
	Name      string `json:"name"`
	Specie    string `json:"specie"`
	BirthDate string `json:"birthDate"` // YYYY-MM-DD
}

type petResponse struct {
	ID        string `json:"_id"`
	Name      string `json:"name"`
	Specie    string `json:"specie"`
	BirthDate string `json:"birthDate"`
	Adopted   bool   `json:"adopted"`
	Owner     string `json:"owner,omitempty"`
}

// birthDate inválido o ausente cuenta como campo faltante para el contrato.
func (req petRequest) toInput() (CreateInput, error) {
	in := CreateInput{Name: req.Name, Specie: req.Specie}
	if strings.TrimSpace(req.BirthDate) == "" {
		return in, nil
	}
	t, err := time.Parse("2006-01-02", req.BirthDate)
	if err != nil {
		return in, err
	}
	in.BirthDate = &t
	return in, nil
}

// listPetsHandler godoc
//
//	@Summary	Listar mascotas
//	@Tags		Pets
//	@Success	200	{object}	map[string]any	"payload: array de mascotas"
//	@Router		/api/pets [get]
func listPetsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		out := make([]petResponse, 0, len(items))
		for _, p := range items {
			out = append(out, toPetResponse(p))
		}
		writePayload(w, out)
	}
}

// createPetHandler godoc
//
//	@Summary	Crear mascota
//	@Tags		Pets
//	@Success	200	{object}	map[string]any	"payload: mascota creada con _id"
//	@Failure	400	{object}	map[string]any	"error: Incomplete values"
//	@Router		/api/pets [post]
func createPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req petRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Incomplete values")
			return
		}

		in, err := req.toInput()
		if err != nil {
			writeError(w, http.StatusBadRequest, "Incomplete values")
			return
		}

		p, err := svc.Create(r.Context(), in)
		switch {
		case err == nil:
			writePayload(w, toPetResponse(p))
		case errors.Is(err, ErrIncompleteValues):
			writeError(w, http.StatusBadRequest, "Incomplete values")
		default:
			writeError(w, http.StatusInternalServerError, "Internal server error")
		}
	}
}

// getPetHandler godoc
//
//	@Summary	Obtener mascota por id
//	@Tags		Pets
//	@Param		pid	path		string			true	"id de la mascota"
//	@Success	200	{object}	map[string]any	"payload: mascota"
//	@Failure	404	{object}	map[string]any	"error: Pet not found"
//	@Router		/api/pets/{pid} [get]
func getPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := svc.GetByID(r.Context(), chi.URLParam(r, "pid"))
		switch {
		case err == nil:
			writePayload(w, toPetResponse(p))
		case errors.Is(err, ErrNotFound):
			writeError(w, http.StatusNotFound, "Pet not found")
		default:
			writeError(w, http.StatusInternalServerError, "Internal server error")
		}
	}
}

// updatePetHandler godoc
//
//	@Summary	Actualizar mascota (replace completo)
//	@Tags		Pets
//	@Param		pid	path		string			true	"id de la mascota"
//	@Success	200	{object}	map[string]any	"message: pet updated"
//	@Failure	400	{object}	map[string]any	"error: Incomplete values"
//	@Failure	404	{object}	map[string]any	"error: Pet not found"
//	@Router		/api/pets/{pid} [put]
func updatePetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req petRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Incomplete values")
			return
		}

		in, err := req.toInput()
		if err != nil {
			writeError(w, http.StatusBadRequest, "Incomplete values")
			return
		}

		err = svc.Update(r.Context(), chi.URLParam(r, "pid"), in)
		switch {
		case err == nil:
			writeMessage(w, "pet updated")
		case errors.Is(err, ErrIncompleteValues):
			writeError(w, http.StatusBadRequest, "Incomplete values")
		case errors.Is(err, ErrNotFound):
			writeError(w, http.StatusNotFound, "Pet not found")
		default:
			writeError(w, http.StatusInternalServerError, "Internal server error")
		}
	}
}

// deletePetHandler godoc
//
//	@Summary	Eliminar mascota
//	@Tags		Pets
//	@Param		pid	path		string			true	"id de la mascota"
//	@Success	200	{object}	map[string]any	"message: pet deleted"
//	@Failure	404	{object}	map[string]any	"error: Pet not found"
//	@Router		/api/pets/{pid} [delete]
func deletePetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := svc.Delete(r.Context(), chi.URLParam(r, "pid"))
		switch {
		case err == nil:
			writeMessage(w, "pet deleted")
		case errors.Is(err, ErrNotFound):
			writeError(w, http.StatusNotFound, "Pet not found")
		default:
			writeError(w, http.StatusInternalServerError, "Internal server error")
		}
	}
}

func toPetResponse(p Pet) petResponse {
	return petResponse{
		ID:        p.ID,
		Name:      p.Name,
		Specie:    p.Specie,
		BirthDate: p.BirthDate.Format("2006-01-02"),
		Adopted:   p.Adopted,
		Owner:     p.OwnerID,
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
