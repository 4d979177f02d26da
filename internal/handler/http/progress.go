package http

import (
	"net/http"

	"github.com/MKhiriev/recipe-tracker/internal/app"
	"github.com/MKhiriev/recipe-tracker/internal/utils"
	"github.com/MKhiriev/recipe-tracker/models"
)

func (h *Handler) startProgress(w http.ResponseWriter, r *http.Request) {
	key, err := progressKeyParams(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	result, err := h.services.ProgressService.StartProgress(r.Context(), key)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.StartProgressResponse{Message: app.MsgProgressStarted, StartProgressResult: result}, http.StatusOK)
}

func (h *Handler) updateIngredient(w http.ResponseWriter, r *http.Request) {
	key, err := progressKeyParams(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req models.UpdateIngredientRequest
	if err = readJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	req.ProgressKey = key

	ingredient, err := h.services.ProgressService.UpdateIngredient(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.IngredientResponse{Message: app.MsgIngredientUpdated, Ingredient: ingredient}, http.StatusOK)
}

func (h *Handler) getProgress(w http.ResponseWriter, r *http.Request) {
	key, err := progressKeyParams(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	view, err := h.services.ProgressService.GetProgress(r.Context(), key)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, view, http.StatusOK)
}

func (h *Handler) completeProgress(w http.ResponseWriter, r *http.Request) {
	key, err := progressKeyParams(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	progress, err := h.services.ProgressService.CompleteProgress(r.Context(), key)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.ProgressResponse{Message: app.MsgRecipeCompleted, Progress: progress}, http.StatusOK)
}
