package entities

import (
	"github.com/nordkost/go-erp-client/apiclient"
	"github.com/nordkost/go-erp-client/pkg/di"
	"github.com/nordkost/go-erp-client/resourcecache"
)

// Oppskrift is a recipe.
type Oppskrift struct {
	ID            int64  `json:"id"`
	Navn          string `json:"navn"`
	Kategori      string `json:"kategori"`
	Porsjoner     int    `json:"porsjoner"`
	Instruksjoner string `json:"instruksjoner"`
}

// NewOppskrifter wires the recipe collection.
func NewOppskrifter(client *apiclient.Client, c *di.Container) (*resourcecache.CachedResource[Oppskrift], error) {
	base := apiclient.NewResource[Oppskrift](client, "/v1/oppskrifter/")
	return di.NewCachedResource(c, base, resourcecache.Definition[Oppskrift]{
		Name:     "oppskrifter",
		Singular: "Oppskrift",
		Plural:   "Oppskrifter",
		ID:       func(o Oppskrift) int64 { return o.ID },
		Label:    func(o Oppskrift) string { return o.Navn },
	})
}
