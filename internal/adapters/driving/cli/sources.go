package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var sourcesCmd = &cobra.Command{
	Use:   "sources",
	Short: "List stored documentation sources",
	Long:  `Lists every distinct documentation source currently indexed, as "title (url)".`,
	Args:  cobra.NoArgs,
	RunE:  runSources,
}

func init() {
	rootCmd.AddCommand(sourcesCmd)
}

func runSources(cmd *cobra.Command, _ []string) error {
	if docsService == nil {
		return errors.New("documentation service not configured")
	}

	out, err := docsService.ListSources(cmd.Context())
	if err != nil {
		return fmt.Errorf("listing sources: %w", err)
	}

	cmd.Println(out)
	return nil
}
