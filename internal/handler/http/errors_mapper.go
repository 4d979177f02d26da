package http

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/MKhiriev/recipe-tracker/internal/app"
	"github.com/MKhiriev/recipe-tracker/internal/logger"
	"github.com/MKhiriev/recipe-tracker/internal/service"
	"github.com/MKhiriev/recipe-tracker/internal/store"
	"github.com/MKhiriev/recipe-tracker/internal/utils"
	"github.com/MKhiriev/recipe-tracker/models"
	"github.com/go-chi/chi/v5"
)

var (
	errInvalidJSON   = errors.New("invalid JSON body")
	errInvalidUserID = errors.New("invalid user id")
	errNotFound      = errors.New("not found")
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:   http.StatusBadRequest,
	errInvalidJSON:                   http.StatusBadRequest,
	errInvalidGzip:                   http.StatusBadRequest,
	errInvalidUserID:                 http.StatusBadRequest,
	service.ErrWrongPassword:         http.StatusUnauthorized,
	service.ErrInvalidOrExpiredToken: http.StatusUnauthorized,

	store.ErrNoUserWasFound:     http.StatusNotFound,
	store.ErrNoProgress:         http.StatusNotFound,
	store.ErrRecipeNotFound:     http.StatusNotFound,
	store.ErrIngredientNotFound: http.StatusNotFound,
	errNotFound:                 http.StatusNotFound,

	store.ErrEmailAlreadyExists: http.StatusConflict,

	context.DeadlineExceeded: http.StatusGatewayTimeout,
}

// statusFromError returns the status of the first known error in err's chain
// together with that sentinel.
func statusFromError(err error) (int, error) {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status, target
		}
	}
	return http.StatusInternalServerError, nil
}

// writeError answers with {"error": message}. Known errors expose the
// sentinel's text; validation failures also expose the failed rule.
// Anything else is logged and reported as an opaque internal error.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	status, target := statusFromError(err)

	var message string
	switch {
	case target == nil:
		log.Err(err).Msg("unexpected error")
		message = app.MsgInternalServerError
	case errors.Is(target, service.ErrInvalidDataProvided):
		log.Debug().Err(err).Msg("invalid request")
		message = err.Error()
	default:
		log.Debug().Err(err).Int("status", status).Msg("request failed")
		message = target.Error()
	}

	utils.WriteJSON(w, models.ErrorResponse{Error: message}, status)
}

func notFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, errNotFound)
}

// userIDParam parses an integer path parameter. Range checks are left to
// the services.
func userIDParam(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil {
		return 0, errInvalidUserID
	}
	return id, nil
}

func progressKeyParams(r *http.Request) (models.ProgressKey, error) {
	userID, err := userIDParam(r, "userId")
	if err != nil {
		return models.ProgressKey{}, err
	}
	return models.ProgressKey{UserID: userID, RecipeID: chi.URLParam(r, "recipeId")}, nil
}

// readJSON decodes the request body and maps decoding failures to errInvalidJSON.
func readJSON(r *http.Request, dst any) error {
	if err := utils.ReadJSON(r, dst); err != nil {
		logger.FromRequest(r).Debug().Err(err).Msg("invalid JSON was passed")
		return errInvalidJSON
	}
	return nil
}
