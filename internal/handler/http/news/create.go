package news

import (
	"encoding/json"
	"errors"
	"net/http"

	"news-cms/internal/domain/entity"
	"news-cms/internal/handler/http/respond"
	newsUC "news-cms/internal/usecase/news"
)

type CreateHandler struct{ Svc *newsUC.Service }

// ServeHTTP creates a news article and returns it with a 201.
func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Title       string `json:"title"`
		Description string `json:"description"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, errors.New("invalid request body"))
		return
	}

	created, err := h.Svc.Create(r.Context(), newsUC.CreateInput{
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		code := http.StatusInternalServerError
		var vErr *entity.ValidationError
		if errors.As(err, &vErr) {
			code = http.StatusBadRequest
		}
		respond.SafeError(w, code, err)
		return
	}

	respond.JSON(w, http.StatusCreated, fromEntity(created))
}
