package entities

import (
	"github.com/nordkost/go-erp-client/apiclient"
	"github.com/nordkost/go-erp-client/pkg/di"
	"github.com/nordkost/go-erp-client/resourcecache"
)

// Produkt is a sellable product.
type Produkt struct {
	ID       int64   `json:"id"`
	Navn     string  `json:"navn"`
	Enhet    string  `json:"enhet"`
	Pris     float64 `json:"pris"`
	GruppeID int64   `json:"gruppe_id"`
	Aktiv    bool    `json:"aktiv"`
}

// NewProdukter wires the product collection.
func NewProdukter(client *apiclient.Client, c *di.Container) (*resourcecache.CachedResource[Produkt], error) {
	base := apiclient.NewResource[Produkt](client, "/v1/produkter/")
	return di.NewCachedResource(c, base, resourcecache.Definition[Produkt]{
		Name:     "produkter",
		Singular: "Produkt",
		Plural:   "Produkter",
		ID:       func(p Produkt) int64 { return p.ID },
		Label:    func(p Produkt) string { return p.Navn },
	})
}
