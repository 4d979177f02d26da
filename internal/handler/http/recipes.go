package http

import (
	"net/http"

	"github.com/MKhiriev/recipe-tracker/internal/utils"
)

func (h *Handler) listRecipes(w http.ResponseWriter, r *http.Request) {
	recipes, err := h.services.RecipeService.ListRecipes(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, recipes, http.StatusOK)
}

func (h *Handler) getProfile(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDParam(r, "userId")
	if err != nil {
		writeError(w, r, err)
		return
	}

	profile, err := h.services.ProgressService.GetUserProfile(r.Context(), userID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, profile, http.StatusOK)
}
