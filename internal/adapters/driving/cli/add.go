package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add [url]",
	Short: "Add documentation from a URL",
	Long: `Fetches the document at the URL, splits it into chunks, embeds each chunk
with the configured provider, and indexes the chunks in Qdrant.

HTML pages are rendered in a headless browser so script-driven content is
captured. PDF URLs are downloaded (up to 20MB) and indexed page by page.`,
	Args: cobra.ExactArgs(1),
	RunE: runAdd,
}

func init() {
	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	if docsService == nil {
		return errors.New("documentation service not configured")
	}

	summary, err := docsService.AddDocumentation(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("adding documentation: %w", err)
	}

	cmd.Println(summary.String())
	return nil
}
