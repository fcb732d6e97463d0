package news

import (
	"net/http"

	newsUC "news-cms/internal/usecase/news"
)

// Register wires the news endpoints onto the mux. Reads are public;
// every write requires a bearer token.
func Register(mux *http.ServeMux, svc *newsUC.Service, authz func(http.Handler) http.Handler) {
	mux.Handle("GET /news", ListHandler{svc})
	mux.Handle("GET /news/", GetHandler{svc})

	mux.Handle("POST /news", authz(CreateHandler{svc}))
	mux.Handle("PATCH /news/", authz(UpdateHandler{svc}))
	mux.Handle("DELETE /news/", authz(DeleteHandler{svc}))
}
