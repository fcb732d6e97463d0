package news

import (
	"net/http"

	"news-cms/internal/handler/http/respond"
	newsUC "news-cms/internal/usecase/news"
)

type ListHandler struct{ Svc *newsUC.Service }

// ServeHTTP lists the active articles in creation order.
func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	items, err := h.Svc.List(r.Context())
	if err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	// 空の場合も [] を返す
	out := make([]DTO, 0, len(items))
	for _, n := range items {
		out = append(out, fromEntity(n))
	}
	respond.JSON(w, http.StatusOK, out)
}
