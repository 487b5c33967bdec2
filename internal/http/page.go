package httpapi

import (
	"html/template"
	"io"

	"github.com/fairyhunter13/product-card-showcase/internal/view"
)

type pageData struct {
	State   string
	Message string
	Cards   []view.Card
}

var pageTmpl = template.Must(template.New("page").Parse(`<!doctype html>
<html>
  <head>
    <meta charset="utf-8" />
    <title>Products</title>
    {{- if eq .State "loading"}}
    <meta http-equiv="refresh" content="1" />
    {{- end}}
    <style>
      body { margin: 0; min-height: 100vh; display: flex; align-items: center; justify-content: center; background: #111827; font-family: sans-serif; }
      .grid { display: flex; flex-wrap: wrap; justify-content: center; padding: 4px; }
      .card { position: relative; overflow: hidden; margin: 24px; width: 300px; border-radius: 8px; color: #fff; box-shadow: 0 10px 15px rgba(0,0,0,.3); transition: transform .15s; }
      .card:hover, .card.hovered { transform: scale(1.05); }
      .media { position: relative; padding: 40px 40px 0; display: flex; justify-content: center; }
      .media img { width: 160px; transform: skewX(12deg); }
      .cart { display: none; position: absolute; top: 50%; left: 50%; transform: translate(-50%,-50%); background: #fff; color: #000; font-weight: 600; padding: 8px 16px; border: 0; border-radius: 4px; }
      .detail { visibility: hidden; padding: 0 24px 24px; margin-top: 24px; }
      .card:hover .cart, .card.hovered .cart { display: block; }
      .card:hover .detail, .card.hovered .detail { visibility: visible; }
      .category { display: block; opacity: .75; }
      .row { display: flex; justify-content: space-between; align-items: center; }
      .title { font-weight: 600; font-size: 1.25rem; }
      .price { background: #000; color: #fff; border-radius: 9999px; font-size: .75rem; font-weight: 700; padding: 8px 12px; }
      .message { color: #fff; text-align: center; }
      .pulse { width: 32px; height: 32px; border-radius: 50%; background: #3b82f6; animation: pulse 1s infinite; }
      @keyframes pulse { 50% { opacity: .3; } }
    </style>
  </head>
  <body>
    {{- if eq .State "loading"}}
    <div class="pulse" role="status" aria-label="loading"></div>
    {{- else if eq .State "error"}}
    <div class="message">{{.Message}}</div>
    {{- else}}
    <div class="grid">
      {{- range .Cards}}
      <div class="card{{if .Hovered}} hovered{{end}}" data-index="{{.Index}}" data-id="{{.Product.ID}}" style="background-color: {{.Color.Hex}}">
        <div class="media">
          <img src="{{.Product.Thumbnail}}" alt="{{.Product.Title}}" />
          <button class="cart" type="button">Add to Cart</button>
        </div>
        <div class="detail">
          <span class="category">{{.Product.Category}}</span>
          <div class="row">
            <span class="title">{{.Title}}</span>
            <span class="price">{{.PriceLabel}}</span>
          </div>
        </div>
      </div>
      {{- end}}
    </div>
    {{- end}}
  </body>
</html>
`))

func renderPage(w io.Writer, p *view.Page) error {
	st := p.State()
	return pageTmpl.Execute(w, pageData{
		State:   st.Kind().String(),
		Message: st.Message(),
		Cards:   p.Cards(),
	})
}
