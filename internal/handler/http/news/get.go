package news

import (
	"errors"
	"net/http"

	"news-cms/internal/handler/http/pathutil"
	"news-cms/internal/handler/http/respond"
	newsUC "news-cms/internal/usecase/news"
)

type GetHandler struct{ Svc *newsUC.Service }

// ServeHTTP returns one active article. Soft-deleted articles get 404.
func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ExtractID(r.URL.Path, "/news/")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	item, err := h.Svc.Get(r.Context(), id)
	if err != nil {
		code := http.StatusInternalServerError
		switch {
		case errors.Is(err, newsUC.ErrInvalidNewsID):
			code = http.StatusBadRequest
		case errors.Is(err, newsUC.ErrNewsNotFound):
			code = http.StatusNotFound
		}
		respond.SafeError(w, code, err)
		return
	}

	respond.JSON(w, http.StatusOK, fromEntity(item))
}
