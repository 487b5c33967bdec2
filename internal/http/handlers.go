package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/fairyhunter13/product-card-showcase/internal/config"
	httpopenapi "github.com/fairyhunter13/product-card-showcase/internal/http/openapi"
	"github.com/fairyhunter13/product-card-showcase/internal/obs"
	"github.com/fairyhunter13/product-card-showcase/internal/store"
	"github.com/fairyhunter13/product-card-showcase/internal/view"
)

// App holds the dependencies shared by the HTTP handlers.
type App struct {
	Cfg     config.Config
	Store   *store.Store
	started time.Time
}

type cardJSON struct {
	Index      int    `json:"index"`
	ID         int    `json:"id"`
	Title      string `json:"title"`
	FullTitle  string `json:"full_title"`
	Category   string `json:"category"`
	Price      string `json:"price"`
	PriceLabel string `json:"price_label"`
	Thumbnail  string `json:"thumbnail"`
	Color      string `json:"color"`
	ColorHex   string `json:"color_hex"`
	Hovered    bool   `json:"hovered"`
}

type viewJSON struct {
	State   string     `json:"state"`
	Message string     `json:"message,omitempty"`
	Cards   []cardJSON `json:"cards"`
}

// NewApp constructs an App serving the view held in st.
func NewApp(cfg config.Config, st *store.Store) *App {
	return &App{Cfg: cfg, Store: st, started: time.Now()}
}

// pageFor builds the page for a request, applying the optional ?hover=N
// selection.
func (a *App) pageFor(r *http.Request) *view.Page {
	p := view.PageFor(a.Store.State())
	if v := r.URL.Query().Get("hover"); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			p.PointerEnter(i)
		}
	}
	return p
}

func toViewJSON(p *view.Page) viewJSON {
	st := p.State()
	out := viewJSON{State: st.Kind().String(), Message: st.Message(), Cards: []cardJSON{}}
	for _, c := range p.Cards() {
		out.Cards = append(out.Cards, cardJSON{
			Index:      c.Index,
			ID:         c.Product.ID,
			Title:      c.Title,
			FullTitle:  c.Product.Title,
			Category:   c.Product.Category,
			Price:      c.Product.Price.Decimal.String(),
			PriceLabel: c.PriceLabel,
			Thumbnail:  c.Product.Thumbnail,
			Color:      c.Color.Name,
			ColorHex:   c.Color.Hex,
			Hovered:    c.Hovered,
		})
	}
	return out
}

func (a *App) pageHandler(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		WriteJSONError(w, http.StatusNotFound, "not_found", "")
		return
	}
	if r.Method != http.MethodGet {
		WriteJSONError(w, http.StatusMethodNotAllowed, "method_not_allowed", "")
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := renderPage(w, a.pageFor(r)); err != nil {
		obs.Logger.Error("page_render_failed",
			zap.String("request_id", RequestIDFromContext(r.Context())),
			zap.Error(err),
		)
	}
}

func (a *App) viewHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, http.StatusMethodNotAllowed, "method_not_allowed", "")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(toViewJSON(a.pageFor(r)))
}

func (a *App) getProductHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, http.StatusMethodNotAllowed, "method_not_allowed", "")
		return
	}
	prefix := "/api/products/"
	if !strings.HasPrefix(r.URL.Path, prefix) {
		WriteJSONError(w, http.StatusNotFound, "not_found", "")
		return
	}
	id, err := strconv.Atoi(strings.TrimPrefix(r.URL.Path, prefix))
	if err != nil {
		WriteJSONError(w, http.StatusNotFound, "not_found", "")
		return
	}
	p, ok := a.Store.Get(id)
	if !ok {
		WriteJSONError(w, http.StatusNotFound, "not_found", "")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(p)
}

func (a *App) healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"status":     "ok",
		"view_state": a.Store.State().Kind().String(),
		"uptime_sec": time.Since(a.started).Seconds(),
	})
}

func (a *App) openapiHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/yaml")
	_, _ = w.Write(httpopenapi.YAML)
}

func (a *App) docsHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	html := `<!doctype html>
<html>
  <head>
    <meta charset="utf-8" />
    <title>API Docs</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css" />
  </head>
  <body>
    <div id="swagger-ui"></div>
    <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
    <script>
      window.ui = SwaggerUIBundle({
        url: '/openapi.yaml',
        dom_id: '#swagger-ui'
      });
    </script>
  </body>
</html>`
	_, _ = w.Write([]byte(html))
}
