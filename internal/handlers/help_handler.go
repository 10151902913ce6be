package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	mW "github.com/ledgerfox/backend/internal/middleware"
)

type HelpAPI interface {
	Show(ctx context.Context, userID int64, route string) string
}

type HelpHandler struct {
	service HelpAPI
}

func NewHelpHandler(service HelpAPI) *HelpHandler {
	return &HelpHandler{service: service}
}

// ShowHelp returns the help HTML for a route
// @Summary Show help for a route
// @Description Help text in the user's language, falling back to en_US and then to a placeholder
// @Tags help
// @Produce json
// @Security BearerAuth
// @Param route path string true "Route identifier"
// @Success 200 {object} object{html=string}
// @Router /help/{route} [get]
func (h *HelpHandler) ShowHelp(w http.ResponseWriter, r *http.Request) {
	userID, _ := mW.UserIDFromContext(r.Context())
	html := h.service.Show(r.Context(), userID, chi.URLParam(r, "route"))
	writeJSON(w, http.StatusOK, map[string]string{"html": html})
}
