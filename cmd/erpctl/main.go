// Package main provides erpctl, a command-line client for the Nordkost ERP
// backend. It drives the same cached resource layer applications embed, so
// listings, mutations, and notifications behave exactly as they do in-app.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
