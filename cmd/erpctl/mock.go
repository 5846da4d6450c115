package main

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/nordkost/go-erp-client/pkg/erptest"
)

var (
	mockAddr  string
	mockToken string
	mockSeed  int
)

var mockCmd = &cobra.Command{
	Use:   "mock",
	Short: "Run a seeded in-memory ERP backend for local development",
	Long: `Run a seeded in-memory ERP backend for local development. The server
implements the collection conventions the client expects: trailing-slash
collections, pagination, filtering, search, sorting, schema-validated
mutations, and bearer authentication when --mock-token is set.`,
	Args: cobra.NoArgs,
	RunE: runMock,
}

func init() {
	mockCmd.Flags().StringVar(&mockAddr, "addr", ":8421", "listen address")
	mockCmd.Flags().StringVar(&mockToken, "mock-token", "", "required bearer token, empty disables auth")
	mockCmd.Flags().IntVar(&mockSeed, "seed", 20, "records to generate per collection")
}

func runMock(cmd *cobra.Command, args []string) error {
	server := erptest.NewServer(mockToken)

	collections := map[string]erptest.ResourceOptions{
		"ansatte":      {Schema: erptest.AnsattSchema},
		"kunder":       {Schema: erptest.KundeSchema},
		"produkter":    {Schema: erptest.ProduktSchema},
		"ordrer":       {},
		"oppskrifter":  {},
		"leverandorer": {},
		"menyer":       {},
	}
	for name, opts := range collections {
		if err := server.Resource(name, opts); err != nil {
			return err
		}
	}

	if mockSeed > 0 {
		erptest.SeedAnsatte(server, mockSeed)
		erptest.SeedKunder(server, mockSeed)
		erptest.SeedProdukter(server, mockSeed)
	}

	logger.Info("mock ERP backend listening", "addr", mockAddr, "seed", mockSeed)
	fmt.Printf("mock ERP backend på %s\n", mockAddr)
	return http.ListenAndServe(mockAddr, server.Handler())
}
