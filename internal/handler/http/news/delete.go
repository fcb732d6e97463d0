package news

import (
	"errors"
	"net/http"
	"strings"

	"news-cms/internal/handler/http/pathutil"
	"news-cms/internal/handler/http/respond"
	newsUC "news-cms/internal/usecase/news"
)

type DeleteHandler struct{ Svc *newsUC.Service }

// ServeHTTP handles both delete forms. DELETE /news/{id} soft-deletes an
// active article; DELETE /news/{id}/permanent removes the row outright,
// whether or not it was soft-deleted first.
func (h DeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Path
	force := false
	if p, ok := strings.CutSuffix(path, "/permanent"); ok {
		force = true
		path = p
	}

	id, err := pathutil.ExtractID(path, "/news/")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	var result *newsUC.RemoveResult
	if force {
		result, err = h.Svc.ForceRemove(r.Context(), id)
	} else {
		result, err = h.Svc.Remove(r.Context(), id)
	}
	if err != nil {
		code := http.StatusInternalServerError
		if errors.Is(err, newsUC.ErrNewsNotFound) {
			code = http.StatusNotFound
		}
		respond.SafeError(w, code, err)
		return
	}

	respond.JSON(w, http.StatusOK, map[string]any{
		"message": result.Message,
		"data":    fromEntity(result.News),
	})
}
