package entities

import (
	"strings"

	"github.com/nordkost/go-erp-client/apiclient"
	"github.com/nordkost/go-erp-client/pkg/di"
	"github.com/nordkost/go-erp-client/resourcecache"
)

// Ansatt is an employee.
type Ansatt struct {
	ID        int64  `json:"id"`
	Fornavn   string `json:"fornavn"`
	Etternavn string `json:"etternavn"`
	Epost     string `json:"epost"`
	Telefon   string `json:"telefon"`
	Aktiv     bool   `json:"aktiv"`
}

// Navn returns the full display name.
func (a Ansatt) Navn() string {
	return strings.TrimSpace(a.Fornavn + " " + a.Etternavn)
}

// NewAnsatte wires the employee collection.
func NewAnsatte(client *apiclient.Client, c *di.Container) (*resourcecache.CachedResource[Ansatt], error) {
	base := apiclient.NewResource[Ansatt](client, "/v1/ansatte/")
	return di.NewCachedResource(c, base, resourcecache.Definition[Ansatt]{
		Name:     "ansatte",
		Singular: "Ansatt",
		Plural:   "Ansatte",
		ID:       func(a Ansatt) int64 { return a.ID },
		Label:    func(a Ansatt) string { return a.Navn() },
	})
}
