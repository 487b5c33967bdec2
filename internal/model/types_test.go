package model

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func product(id int) Product {
	var p Product
	_ = json.Unmarshal([]byte(`{"id":1,"title":"Essence Mascara Lash Princess","category":"beauty","price":9.99,"thumbnail":"https://cdn.dummyjson.com/p/1/thumbnail.png"}`), &p)
	p.ID = id
	return p
}

func TestProductDecodesExactPrice(t *testing.T) {
	p := product(1)
	assert.Equal(t, "9.99", p.Price.Decimal.String())
	require.NoError(t, p.Validate())
}

func TestProductValidate(t *testing.T) {
	cases := map[string]func(*Product){
		"zero id":        func(p *Product) { p.ID = 0 },
		"blank title":    func(p *Product) { p.Title = "  " },
		"blank category": func(p *Product) { p.Category = "" },
		"negative price": func(p *Product) { p.Price = decimal.NewNullDecimal(p.Price.Decimal.Neg()) },
		"missing price":  func(p *Product) { p.Price = decimal.NullDecimal{} },
		"relative thumb": func(p *Product) { p.Thumbnail = "/img/1.png" },
		"ftp thumb":      func(p *Product) { p.Thumbnail = "ftp://cdn/1.png" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			p := product(1)
			mutate(&p)
			err := p.Validate()
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidCatalog))
		})
	}
}

func TestCatalogWindowMissingProducts(t *testing.T) {
	var c Catalog
	require.NoError(t, json.Unmarshal([]byte(`{"total":0}`), &c))
	_, err := c.Window(8)
	assert.ErrorIs(t, err, ErrInvalidCatalog)
}

func TestCatalogWindowTruncatesInOrder(t *testing.T) {
	all := make([]Product, 0, 12)
	for i := 1; i <= 12; i++ {
		all = append(all, product(i))
	}
	c := Catalog{Products: &all}
	got, err := c.Window(8)
	require.NoError(t, err)
	require.Len(t, got, 8)
	for i, p := range got {
		assert.Equal(t, i+1, p.ID)
	}
}

func TestCatalogWindowIgnoresItemsPastLimit(t *testing.T) {
	all := []Product{product(1), product(2), {ID: -1}}
	c := Catalog{Products: &all}
	got, err := c.Window(2)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestCatalogWindowRejectsDuplicateIDs(t *testing.T) {
	all := []Product{product(1), product(1)}
	c := Catalog{Products: &all}
	_, err := c.Window(8)
	assert.ErrorIs(t, err, ErrInvalidCatalog)
}

func TestCatalogWindowEmpty(t *testing.T) {
	all := []Product{}
	c := Catalog{Products: &all}
	got, err := c.Window(8)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestCatalogWindowRejectsMissingOrNullPrice(t *testing.T) {
	for name, body := range map[string]string{
		"missing": `{"products":[{"id":1,"title":"Mascara","category":"beauty","thumbnail":"https://cdn.example.test/1.png"}]}`,
		"null":    `{"products":[{"id":1,"title":"Mascara","category":"beauty","price":null,"thumbnail":"https://cdn.example.test/1.png"}]}`,
	} {
		t.Run(name, func(t *testing.T) {
			var c Catalog
			require.NoError(t, json.Unmarshal([]byte(body), &c))
			_, err := c.Window(8)
			assert.ErrorIs(t, err, ErrInvalidCatalog)
		})
	}
}

func TestCatalogWindowAcceptsZeroPrice(t *testing.T) {
	var c Catalog
	require.NoError(t, json.Unmarshal([]byte(`{"products":[{"id":1,"title":"Sample","category":"beauty","price":0,"thumbnail":"https://cdn.example.test/1.png"}]}`), &c))
	got, err := c.Window(8)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.True(t, got[0].Price.Decimal.IsZero())
}
