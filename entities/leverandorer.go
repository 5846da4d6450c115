package entities

import (
	"github.com/nordkost/go-erp-client/apiclient"
	"github.com/nordkost/go-erp-client/pkg/di"
	"github.com/nordkost/go-erp-client/resourcecache"
)

// Leverandor is a supplier.
type Leverandor struct {
	ID        int64  `json:"id"`
	Navn      string `json:"navn"`
	Orgnummer string `json:"orgnummer"`
	Epost     string `json:"epost"`
	Telefon   string `json:"telefon"`
}

// NewLeverandorer wires the supplier collection.
func NewLeverandorer(client *apiclient.Client, c *di.Container) (*resourcecache.CachedResource[Leverandor], error) {
	base := apiclient.NewResource[Leverandor](client, "/v1/leverandorer/")
	return di.NewCachedResource(c, base, resourcecache.Definition[Leverandor]{
		Name:     "leverandorer",
		Singular: "Leverandør",
		Plural:   "Leverandører",
		ID:       func(l Leverandor) int64 { return l.ID },
		Label:    func(l Leverandor) string { return l.Navn },
	})
}
