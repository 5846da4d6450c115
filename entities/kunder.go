package entities

import (
	"github.com/nordkost/go-erp-client/apiclient"
	"github.com/nordkost/go-erp-client/pkg/di"
	"github.com/nordkost/go-erp-client/resourcecache"
)

// Kunde is a customer.
type Kunde struct {
	ID        int64  `json:"id"`
	Navn      string `json:"navn"`
	Orgnummer string `json:"orgnummer"`
	Epost     string `json:"epost"`
	Telefon   string `json:"telefon"`
	Adresse   string `json:"adresse"`
}

// NewKunder wires the customer collection.
func NewKunder(client *apiclient.Client, c *di.Container) (*resourcecache.CachedResource[Kunde], error) {
	base := apiclient.NewResource[Kunde](client, "/v1/kunder/")
	return di.NewCachedResource(c, base, resourcecache.Definition[Kunde]{
		Name:     "kunder",
		Singular: "Kunde",
		Plural:   "Kunder",
		ID:       func(k Kunde) int64 { return k.ID },
		Label:    func(k Kunde) string { return k.Navn },
	})
}
