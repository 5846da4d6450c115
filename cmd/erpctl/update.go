package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var updateData string

var updateCmd = &cobra.Command{
	Use:   "update <resource> <id>",
	Short: "Partially update a record",
	Long: `Partially update a record. Only the fields present in the payload are
changed; absent fields stay untouched.`,
	Args: cobra.ExactArgs(2),
	RunE: runUpdate,
}

func init() {
	updateCmd.Flags().StringVar(&updateData, "data", "", "JSON payload, @file, or - for stdin")
	updateCmd.MarkFlagRequired("data")
}

func runUpdate(cmd *cobra.Command, args []string) error {
	resource, err := openResource(args[0])
	if err != nil {
		return err
	}
	id, err := strconv.ParseInt(args[1], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid id %q", args[1])
	}
	payload, err := parsePayload(updateData)
	if err != nil {
		return err
	}

	record, err := resource.Update(cmd.Context(), id, payload)
	if err != nil {
		return err
	}

	if flagJSON {
		return printJSON(record)
	}
	printRecord(record)
	return nil
}
