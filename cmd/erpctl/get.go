package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var getCmd = &cobra.Command{
	Use:   "get <resource> <id>",
	Short: "Fetch a single record",
	Args:  cobra.ExactArgs(2),
	RunE:  runGet,
}

func runGet(cmd *cobra.Command, args []string) error {
	resource, err := openResource(args[0])
	if err != nil {
		return err
	}
	id, err := strconv.ParseInt(args[1], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid id %q", args[1])
	}

	record, err := resource.Get(cmd.Context(), id)
	if err != nil {
		return err
	}

	if flagJSON {
		return printJSON(record)
	}
	printRecord(record)
	return nil
}
