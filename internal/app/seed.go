package app

import (
	"net/http"

	"github.com/cinetick/movie-catalog/api"
	"github.com/cinetick/movie-catalog/internal/domain"
)

// LoadSeedData bulk-upserts the fixed demo catalog. The seed rows carry
// explicit ids, so repeated loads overwrite instead of duplicating.
func (app *Application) LoadSeedData(w http.ResponseWriter, r *http.Request) {
	catalog := domain.SeedCatalog()

	err := app.movieRepo.UpsertAll(r.Context(), catalog)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	app.logger.Info("seed catalog loaded", "movies", len(catalog))

	resp := api.MessageResponse{
		Message: "Successful.",
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
