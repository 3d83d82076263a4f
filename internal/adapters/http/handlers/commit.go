package handlers

import (
	"errors"
	"net/http"

	"github.com/just-nibble/commit-tracker/internal/adapters/http/dtos"
	"github.com/just-nibble/commit-tracker/internal/core/service"
	"github.com/just-nibble/commit-tracker/pkg/response"
)

type CommitHandler struct {
	pages  PageFactory
	viewer *service.CommitViewer
}

func NewCommitHandler(pages PageFactory, viewer *service.CommitViewer) *CommitHandler {
	return &CommitHandler{pages: pages, viewer: viewer}
}

// GetCommits godoc
// @Summary List commits
// @Tags commits
// @Param owner query string true "Repository owner"
// @Param repo query string true "Repository name"
// @Success 200 {object} response.Envelope
// @Router /api/commits [get]
func (h *CommitHandler) GetCommits(w http.ResponseWriter, r *http.Request) {
	page := h.pages.New(r)
	query := r.URL.Query()

	err := h.viewer.Submit(r.Context(), page, query.Get("owner"), query.Get("repo"))
	var verr *service.ValidationError
	var rerr *service.RequestError
	switch {
	case errors.As(err, &verr):
		response.ErrorResponse(w, http.StatusBadRequest, verr.Message)
		return
	case errors.As(err, &rerr):
		response.ErrorResponse(w, http.StatusBadGateway, rerr.Message)
		return
	case err != nil:
		response.ErrorResponse(w, http.StatusInternalServerError, "Failed to retrieve commits")
		return
	}

	response.SuccessResponse(w, http.StatusOK, dtos.NewCommitsResponse(page.Commits))
}
