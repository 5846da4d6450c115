package entities

import (
	"github.com/nordkost/go-erp-client/apiclient"
	"github.com/nordkost/go-erp-client/pkg/di"
	"github.com/nordkost/go-erp-client/resourcecache"
)

// Registry bundles every wired entity collection behind one client and one
// container, so an application composes the whole catalog in a single call.
type Registry struct {
	Ansatte      *resourcecache.CachedResource[Ansatt]
	Kunder       *resourcecache.CachedResource[Kunde]
	Produkter    *resourcecache.CachedResource[Produkt]
	Ordrer       *resourcecache.CachedResource[Ordre]
	Oppskrifter  *resourcecache.CachedResource[Oppskrift]
	Leverandorer *resourcecache.CachedResource[Leverandor]
	Menyer       *resourcecache.CachedResource[Meny]
}

// NewRegistry wires all entity collections.
func NewRegistry(client *apiclient.Client, c *di.Container) (*Registry, error) {
	r := &Registry{}
	var err error

	if r.Ansatte, err = NewAnsatte(client, c); err != nil {
		return nil, err
	}
	if r.Kunder, err = NewKunder(client, c); err != nil {
		return nil, err
	}
	if r.Produkter, err = NewProdukter(client, c); err != nil {
		return nil, err
	}
	if r.Ordrer, err = NewOrdrer(client, c); err != nil {
		return nil, err
	}
	if r.Oppskrifter, err = NewOppskrifter(client, c); err != nil {
		return nil, err
	}
	if r.Leverandorer, err = NewLeverandorer(client, c); err != nil {
		return nil, err
	}
	if r.Menyer, err = NewMenyer(client, c); err != nil {
		return nil, err
	}

	return r, nil
}
