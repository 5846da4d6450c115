package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var createData string

var createCmd = &cobra.Command{
	Use:   "create <resource>",
	Short: "Create a record from a JSON payload",
	Long: `Create a record from a JSON payload, e.g.
  erpctl create ansatte --data '{"fornavn": "Thor", "etternavn": "Heyerdahl"}'
Use --data @file.json to read from a file, or --data - to read from stdin.`,
	Args: cobra.ExactArgs(1),
	RunE: runCreate,
}

func init() {
	createCmd.Flags().StringVar(&createData, "data", "", "JSON payload, @file, or - for stdin")
	createCmd.MarkFlagRequired("data")
}

func runCreate(cmd *cobra.Command, args []string) error {
	resource, err := openResource(args[0])
	if err != nil {
		return err
	}
	payload, err := parsePayload(createData)
	if err != nil {
		return err
	}

	record, err := resource.Create(cmd.Context(), payload)
	if err != nil {
		return err
	}

	if flagJSON {
		return printJSON(record)
	}
	printRecord(record)
	return nil
}

// parsePayload decodes a JSON object given inline, as @file, or as - for
// stdin.
func parsePayload(data string) (map[string]any, error) {
	var raw []byte
	switch {
	case data == "-":
		stdin, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		raw = stdin
	case strings.HasPrefix(data, "@"):
		content, err := os.ReadFile(data[1:])
		if err != nil {
			return nil, fmt.Errorf("read payload file: %w", err)
		}
		raw = content
	default:
		raw = []byte(data)
	}

	var payload map[string]any
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("invalid JSON payload: %w", err)
	}
	return payload, nil
}
