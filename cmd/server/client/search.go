package client

import (
	"fmt"
	"net/url"

	"github.com/spf13/cobra"
)

var (
	searchQuery string
	searchLimit int32
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search the catalog by name",
	Long:  `Search items and nano programs by a case-insensitive name fragment.`,
	RunE:  runSearch,
}

func init() {
	searchCmd.Flags().StringVar(&searchQuery, "query", "", "Name fragment to search for (required)")
	_ = searchCmd.MarkFlagRequired("query") // nolint:errcheck // safe to ignore in init
	searchCmd.Flags().Int32Var(&searchLimit, "limit", 0, "Maximum number of results")
}

type searchView struct {
	Results []struct {
		Kind string `json:"kind"`
		AOID int64  `json:"aoid"`
		Name string `json:"name"`
		QL   int32  `json:"ql"`
	} `json:"results"`
}

func runSearch(_ *cobra.Command, _ []string) error {
	query := url.Values{}
	query.Set("q", searchQuery)
	if searchLimit > 0 {
		query.Set("limit", fmt.Sprintf("%d", searchLimit))
	}

	var out searchView
	if err := getJSON("/api/v1/search?"+query.Encode(), &out); err != nil {
		return fmt.Errorf("failed to search catalog: %w", err)
	}

	fmt.Printf("🔍 Found %d results for %q\n\n", len(out.Results), searchQuery)
	for _, r := range out.Results {
		fmt.Printf("  [%s] %s (AOID %d, QL %d)\n", r.Kind, r.Name, r.AOID, r.QL)
	}
	return nil
}
