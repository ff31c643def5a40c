package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lexislabs/lexis-cli/internal/core/domain"
)

var institutionJSON bool

var institutionCmd = &cobra.Command{
	Use:   "institution [name]",
	Short: "Look up facts about an institution",
	Long: `Looks up an educational institution by name or common abbreviation.
Facts come from the institution's reference page when it is reachable and
complete; otherwise the built-in catalog answers.`,
	Args: cobra.ExactArgs(1),
	RunE: runInstitution,
}

func init() {
	institutionCmd.Flags().BoolVar(&institutionJSON, "json", false, "output the record as JSON")
	rootCmd.AddCommand(institutionCmd)
}

func runInstitution(cmd *cobra.Command, args []string) error {
	if institutionService == nil {
		return errors.New("institution service not configured")
	}

	record, err := institutionService.Resolve(cmd.Context(), args[0])
	if err != nil {
		if errors.Is(err, domain.ErrInstitutionNotFound) {
			return fmt.Errorf("no information found for %q", args[0])
		}
		return err
	}

	if institutionJSON {
		return outputInstitutionJSON(cmd, record)
	}

	return outputInstitutionText(cmd, record)
}

func outputInstitutionJSON(cmd *cobra.Command, record domain.InstitutionRecord) error {
	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal record: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputInstitutionText(cmd *cobra.Command, record domain.InstitutionRecord) error {
	cmd.Printf("%s\n", record.Name)
	cmd.Printf("%s\n\n", strings.Repeat("=", len(record.Name)))
	cmd.Printf("Founder:   %s\n", record.Founder)
	cmd.Printf("Founded:   %s\n", record.FoundedYear)
	cmd.Printf("Employees: %s\n", record.Employees)
	if len(record.Branches) > 0 {
		cmd.Printf("Branches:  %s\n", strings.Join(record.Branches, ", "))
	}
	cmd.Println()
	cmd.Println(record.Summary)
	return nil
}
