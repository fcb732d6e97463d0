package news

import (
	"encoding/json"
	"errors"
	"net/http"

	"news-cms/internal/domain/entity"
	"news-cms/internal/handler/http/pathutil"
	"news-cms/internal/handler/http/respond"
	newsUC "news-cms/internal/usecase/news"
)

type UpdateHandler struct{ Svc *newsUC.Service }

// ServeHTTP applies a partial update. Omitted fields keep their values;
// fields present in the body are validated and replaced.
func (h UpdateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ExtractID(r.URL.Path, "/news/")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	var req struct {
		Title       *string `json:"title"`
		Description *string `json:"description"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, errors.New("invalid request body"))
		return
	}

	updated, err := h.Svc.Update(r.Context(), newsUC.UpdateInput{
		ID:          id,
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		code := http.StatusInternalServerError
		var vErr *entity.ValidationError
		switch {
		case errors.As(err, &vErr):
			code = http.StatusBadRequest
		case errors.Is(err, newsUC.ErrNewsNotFound):
			code = http.StatusNotFound
		}
		respond.SafeError(w, code, err)
		return
	}

	respond.JSON(w, http.StatusOK, fromEntity(updated))
}
