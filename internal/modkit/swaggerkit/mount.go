package swaggerkit

import (
	"net/http"

	"dataproc/internal/platform/config"
	phttp "dataproc/internal/platform/net/http"

	docs "dataproc/internal/services/api/docs"

	httpSwagger "github.com/swaggo/http-swagger"
)

const (
	uiRoot  = "/api/docs/"
	docPath = "/api/docs/doc.json"
)

// Mount serves the UI under /api/docs/ and the document at /api/docs/doc.json.
// DATAPROC_CONSOLE_DOCS_TITLE_SUFFIX is appended to the document title.
func Mount(r phttp.Router, enabled bool) {
	if !enabled {
		return
	}
	suffix := config.New().Prefix("DATAPROC_CONSOLE_").MayString("DOCS_TITLE_SUFFIX", "")

	r.Get("/api/docs", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, uiRoot, http.StatusPermanentRedirect)
	})
	r.Get(docPath, serveDocJSON(suffix))
	r.Handle(uiRoot+"*", httpSwagger.Handler(
		httpSwagger.InstanceName(docs.SwaggerInfo.InfoInstanceName),
		httpSwagger.URL(docPath),
	))
}
