package entities

import (
	"github.com/nordkost/go-erp-client/apiclient"
	"github.com/nordkost/go-erp-client/pkg/di"
	"github.com/nordkost/go-erp-client/resourcecache"
)

// Ordre is a customer order.
type Ordre struct {
	ID            int64   `json:"id"`
	KundeID       int64   `json:"kunde_id"`
	Leveringsdato string  `json:"leveringsdato"`
	Status        string  `json:"status"`
	Kommentar     string  `json:"kommentar"`
	Total         float64 `json:"total"`
}

// NewOrdrer wires the order collection. Orders have no natural display name;
// notifications fall back to the singular.
func NewOrdrer(client *apiclient.Client, c *di.Container) (*resourcecache.CachedResource[Ordre], error) {
	base := apiclient.NewResource[Ordre](client, "/v1/ordrer/")
	return di.NewCachedResource(c, base, resourcecache.Definition[Ordre]{
		Name:     "ordrer",
		Singular: "Ordre",
		Plural:   "Ordrer",
		ID:       func(o Ordre) int64 { return o.ID },
	})
}
