package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lexislabs/lexis-cli/internal/core/domain"
)

var (
	docAddTitle  string
	docAddFormat string
)

var docCmd = &cobra.Command{
	Use:   "doc",
	Short: "Manage uploaded documents",
	Long:  `Upload documents and answer questions against them.`,
}

var docAddCmd = &cobra.Command{
	Use:   "add [path]",
	Short: "Ingest a document for querying",
	Long: `Reads a PDF, TXT, or DOCX file, indexes its content, and prints the
document ID to use with 'lexis doc ask'.`,
	Args: cobra.ExactArgs(1),
	RunE: runDocAdd,
}

var docAskCmd = &cobra.Command{
	Use:   "ask [doc-id] [question]",
	Short: "Answer a question from an uploaded document",
	Args:  cobra.ExactArgs(2),
	RunE:  runDocAsk,
}

var docListCmd = &cobra.Command{
	Use:   "list",
	Short: "List uploaded documents",
	RunE:  runDocList,
}

func init() {
	docAddCmd.Flags().StringVar(&docAddTitle, "title", "", "document title (defaults to the file name)")
	docAddCmd.Flags().StringVar(&docAddFormat, "format", "", "document format: pdf, txt, or docx (defaults to the file extension)")
	docCmd.AddCommand(docAddCmd)
	docCmd.AddCommand(docAskCmd)
	docCmd.AddCommand(docListCmd)
	rootCmd.AddCommand(docCmd)
}

func runDocAdd(cmd *cobra.Command, args []string) error {
	if documentService == nil {
		return errors.New("document service not configured; run 'lexis settings' to set up AI providers")
	}

	path := args[0]
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	format := domain.DocumentFormat(strings.ToLower(docAddFormat))
	if docAddFormat == "" {
		format = domain.DocumentFormat(strings.ToLower(strings.TrimPrefix(filepath.Ext(path), ".")))
	}
	if !format.IsValid() {
		return fmt.Errorf("unsupported document format %q (expected pdf, txt, or docx)", format)
	}

	title := docAddTitle
	if title == "" {
		title = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	id, err := documentService.Ingest(cmd.Context(), raw, format, title)
	if err != nil {
		return fmt.Errorf("ingest failed: %w", err)
	}

	cmd.Printf("Ingested %q\n", title)
	cmd.Printf("Document ID: %s\n", id)
	return nil
}

func runDocAsk(cmd *cobra.Command, args []string) error {
	if documentService == nil {
		return errors.New("document service not configured; run 'lexis settings' to set up AI providers")
	}

	answer, err := documentService.Ask(cmd.Context(), args[0], args[1])
	if err != nil {
		if errors.Is(err, domain.ErrDocumentNotFound) {
			return fmt.Errorf("no document with ID %q; run 'lexis doc list'", args[0])
		}
		return fmt.Errorf("answer failed: %w", err)
	}

	cmd.Println(answer)
	return nil
}

func runDocList(cmd *cobra.Command, _ []string) error {
	if documentService == nil {
		return errors.New("document service not configured; run 'lexis settings' to set up AI providers")
	}

	docs, err := documentService.List(cmd.Context())
	if err != nil {
		return fmt.Errorf("list failed: %w", err)
	}

	if len(docs) == 0 {
		cmd.Println("No documents ingested yet. Use 'lexis doc add' first.")
		return nil
	}

	cmd.Println("Documents:")
	cmd.Println()
	for i := range docs {
		cmd.Printf("  %s  [%s]  %s\n", docs[i].ID, docs[i].Format, docs[i].Title)
	}
	return nil
}
