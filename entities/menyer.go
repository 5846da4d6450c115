package entities

import (
	"github.com/nordkost/go-erp-client/apiclient"
	"github.com/nordkost/go-erp-client/pkg/di"
	"github.com/nordkost/go-erp-client/resourcecache"
)

// Meny is a menu composed of recipes.
type Meny struct {
	ID          int64  `json:"id"`
	Navn        string `json:"navn"`
	Beskrivelse string `json:"beskrivelse"`
	Aktiv       bool   `json:"aktiv"`
}

// NewMenyer wires the menu collection.
func NewMenyer(client *apiclient.Client, c *di.Container) (*resourcecache.CachedResource[Meny], error) {
	base := apiclient.NewResource[Meny](client, "/v1/menyer/")
	return di.NewCachedResource(c, base, resourcecache.Definition[Meny]{
		Name:     "menyer",
		Singular: "Meny",
		Plural:   "Menyer",
		ID:       func(m Meny) int64 { return m.ID },
		Label:    func(m Meny) string { return m.Navn },
	})
}
