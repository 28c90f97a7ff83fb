package httpapi

import (
	"html/template"
	"net/http"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"

	"github.com/fairyhunter13/bookshop-service/internal/config"
	httpopenapi "github.com/fairyhunter13/bookshop-service/internal/http/openapi"
	"github.com/fairyhunter13/bookshop-service/internal/model"
	"github.com/fairyhunter13/bookshop-service/internal/obs"
	"github.com/fairyhunter13/bookshop-service/internal/store"
)

// Version is reported by the root endpoint.
const Version = "1.0.0"

// Catalog is the read side of the book store used by the handlers.
type Catalog interface {
	List(f model.Filter) []model.Book
	Get(id int) (model.Book, error)
	Len() int
}

type counters struct {
	requests    atomic.Uint64
	listed      atomic.Uint64
	fetched     atomic.Uint64
	notFound    atomic.Uint64
	badRequests atomic.Uint64
}

type App struct {
	Cfg     config.Config
	Catalog Catalog
	stats   counters
	started time.Time
}

type rootResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Version string `json:"version"`
}

type healthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

type booksEnvelope struct {
	Books []model.Book `json:"books"`
}

type bookEnvelope struct {
	Book model.Book `json:"book"`
}

func NewApp(cfg config.Config, c Catalog) *App {
	return &App{Cfg: cfg, Catalog: c, started: time.Now()}
}

func (a *App) badRequest(w http.ResponseWriter, details string) {
	a.stats.badRequests.Add(1)
	WriteJSONError(w, http.StatusBadRequest, codeInvalidParameter, details)
}

func (a *App) rootHandler(w http.ResponseWriter, r *http.Request) {
	obs.Logger.Info("root_called", "request_id", RequestIDFromContext(r.Context()))
	writeJSON(w, http.StatusOK, rootResponse{Status: "ok", Service: a.Cfg.ServiceName, Version: Version})
}

func (a *App) healthHandler(w http.ResponseWriter, r *http.Request) {
	obs.Logger.Info("health_called", "request_id", RequestIDFromContext(r.Context()))
	writeJSON(w, http.StatusOK, healthResponse{Status: "healthy", Service: a.Cfg.ServiceName})
}

// Bounds on min_price. Comparing decimals rescales both sides to the
// smaller exponent, so the exponent must stay small.
const (
	maxMinPriceLen      = 32
	maxMinPriceExponent = 16
)

// parseFilter validates the listing query parameters. The author value is
// used verbatim; only an empty one disables the author filter.
func parseFilter(r *http.Request) (model.Filter, error) {
	q := r.URL.Query()
	f := model.Filter{Author: q.Get("author")}
	raw := strings.TrimSpace(q.Get("min_price"))
	if raw == "" {
		return f, nil
	}
	if len(raw) > maxMinPriceLen {
		return model.Filter{}, errors.Errorf("min_price longer than %d characters", maxMinPriceLen)
	}
	p, err := decimal.NewFromString(raw)
	if err != nil {
		return model.Filter{}, errors.Errorf("min_price must be a number, got %q", raw)
	}
	if exp := p.Exponent(); exp < -maxMinPriceExponent || exp > maxMinPriceExponent {
		return model.Filter{}, errors.Errorf("min_price %q out of range", raw)
	}
	f.MinPrice = &p
	return f, nil
}

func (a *App) listBooksHandler(w http.ResponseWriter, r *http.Request) {
	f, err := parseFilter(r)
	if err != nil {
		a.badRequest(w, err.Error())
		return
	}
	books := a.Catalog.List(f)
	a.stats.listed.Add(1)
	minPrice := ""
	if f.MinPrice != nil {
		minPrice = f.MinPrice.String()
	}
	obs.Logger.Info("books_listed",
		"request_id", RequestIDFromContext(r.Context()),
		"author", f.Author,
		"min_price", minPrice,
		"count", len(books),
	)
	writeJSON(w, http.StatusOK, booksEnvelope{Books: books})
}

func (a *App) getBookHandler(w http.ResponseWriter, r *http.Request) {
	raw := r.PathValue("id")
	id, err := strconv.Atoi(raw)
	if err != nil {
		a.badRequest(w, "id must be an integer")
		return
	}
	reqID := RequestIDFromContext(r.Context())
	b, err := a.Catalog.Get(id)
	switch {
	case errors.Is(err, store.ErrNotFound):
		a.stats.notFound.Add(1)
		obs.Logger.Info("book_not_found", "request_id", reqID, "book_id", id)
		WriteJSONError(w, http.StatusNotFound, codeNotFound, err.Error())
		return
	case err != nil:
		obs.Logger.Error("book_fetch_error", "request_id", reqID, "book_id", id, "error", err)
		WriteJSONError(w, http.StatusInternalServerError, codeInternal, "")
		return
	}
	a.stats.fetched.Add(1)
	obs.Logger.Info("book_fetched",
		"request_id", reqID,
		"book_id", b.ID,
		"title", b.Title,
		"author", b.Author,
	)
	writeJSON(w, http.StatusOK, bookEnvelope{Book: b})
}

func (a *App) metricsHandler(w http.ResponseWriter, r *http.Request) {
	m := map[string]any{
		"requests_total":  a.stats.requests.Load(),
		"books_listed":    a.stats.listed.Load(),
		"books_fetched":   a.stats.fetched.Load(),
		"books_not_found": a.stats.notFound.Load(),
		"bad_requests":    a.stats.badRequests.Load(),
		"catalog_size":    a.Catalog.Len(),
		"uptime_sec":      time.Since(a.started).Seconds(),
	}
	writeJSON(w, http.StatusOK, m)
}

func (a *App) openapiHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/yaml")
	_, _ = w.Write(httpopenapi.YAML)
}

var docsPage = template.Must(template.New("docs").Parse(`<!doctype html>
<html>
  <head>
    <meta charset="utf-8" />
    <title>{{.Service}} {{.Version}} API</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css" />
  </head>
  <body>
    <div id="swagger-ui"></div>
    <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
    <script>
      window.ui = SwaggerUIBundle({url: {{.SpecURL}}, dom_id: '#swagger-ui', deepLinking: true});
    </script>
  </body>
</html>
`))

// docsHandler serves a Swagger UI page pointed at the embedded OpenAPI document.
func (a *App) docsHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_ = docsPage.Execute(w, struct {
		Service, Version, SpecURL string
	}{a.Cfg.ServiceName, Version, "/openapi.yaml"})
}
