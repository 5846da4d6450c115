package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nordkost/go-erp-client/apiclient"
)

var (
	listPage    int
	listSize    int
	listSearch  string
	listSort    string
	listOrder   string
	listFilters []string
)

var listCmd = &cobra.Command{
	Use:   "list <resource>",
	Short: "List records in a collection",
	Long: `List records in a collection, e.g. "erpctl list ansatte".
Filters use repeated --filter key=value flags; repeating the same key
matches any of the given values.`,
	Args: cobra.ExactArgs(1),
	RunE: runList,
}

func init() {
	listCmd.Flags().IntVar(&listPage, "page", 0, "1-based page number")
	listCmd.Flags().IntVar(&listSize, "size", 0, "page size")
	listCmd.Flags().StringVar(&listSearch, "search", "", "free-text search")
	listCmd.Flags().StringVar(&listSort, "sort", "", "field to sort by")
	listCmd.Flags().StringVar(&listOrder, "order", "", "sort order: asc or desc")
	listCmd.Flags().StringArrayVar(&listFilters, "filter", nil, "field filter as key=value, repeatable")
}

func runList(cmd *cobra.Command, args []string) error {
	resource, err := openResource(args[0])
	if err != nil {
		return err
	}

	params := &apiclient.ListParams{
		Page:      listPage,
		PageSize:  listSize,
		Search:    listSearch,
		SortBy:    listSort,
		SortOrder: apiclient.SortOrder(listOrder),
	}
	for _, raw := range listFilters {
		key, value, ok := strings.Cut(raw, "=")
		if !ok {
			return fmt.Errorf("invalid filter %q, expected key=value", raw)
		}
		params.Filter(key, value)
	}

	res, err := resource.List(cmd.Context(), params)
	if err != nil {
		return err
	}

	if flagJSON {
		return printJSON(res)
	}
	printRecords(res.Items)
	if res.TotalPages > 1 {
		fmt.Printf("side %d av %d, %d totalt\n", res.Page, res.TotalPages, res.Total)
	}
	return nil
}
