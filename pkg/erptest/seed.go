package erptest

import (
	"fmt"

	"github.com/brianvoe/gofakeit/v6"
)

// SeedAnsatte inserts n generated employees.
func SeedAnsatte(s *Server, n int) {
	for i := 0; i < n; i++ {
		s.Seed("ansatte", map[string]any{
			"fornavn":   gofakeit.FirstName(),
			"etternavn": gofakeit.LastName(),
			"epost":     gofakeit.Email(),
			"telefon":   gofakeit.Phone(),
			"aktiv":     true,
		})
	}
}

// SeedProdukter inserts n generated products.
func SeedProdukter(s *Server, n int) {
	for i := 0; i < n; i++ {
		s.Seed("produkter", map[string]any{
			"navn":      gofakeit.Dinner(),
			"enhet":     "stk",
			"pris":      gofakeit.Price(10, 500),
			"gruppe_id": int64(gofakeit.Number(1, 5)),
			"aktiv":     true,
		})
	}
}

// SeedKunder inserts n generated customers.
func SeedKunder(s *Server, n int) {
	for i := 0; i < n; i++ {
		s.Seed("kunder", map[string]any{
			"navn":      gofakeit.Company(),
			"orgnummer": fmt.Sprintf("%09d", gofakeit.Number(100000000, 999999999)),
			"epost":     gofakeit.Email(),
			"telefon":   gofakeit.Phone(),
			"adresse":   gofakeit.Street(),
		})
	}
}
