package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/careerform/internal/derive"
	"github.com/abhisek/careerform/internal/form"
)

var draftCmd = &cobra.Command{
	Use:   "draft",
	Short: "Show the saved draft",
	RunE: func(cmd *cobra.Command, args []string) error {
		asJSON, _ := cmd.Flags().GetBool("json")

		e, err := setup(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		doc, err := e.drafts().Read(cmd.Context())
		if err != nil {
			return err
		}
		if doc == nil {
			fmt.Println("No saved draft.")
			return nil
		}
		doc = recomputeDerived(doc)

		if asJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(doc)
		}

		answered := 0
		for step := 1; step <= form.TotalSteps; step++ {
			fmt.Printf("\n%d. %s\n", step, form.StepTitle(step))
			fmt.Println(strings.Repeat("─", 60))
			for _, spec := range form.StepFields(step) {
				val := formatDraftValue(doc[string(spec.Field)])
				if val == "" {
					val = "-"
				} else {
					answered++
				}
				fmt.Printf("  %-28s  %s\n", spec.Label, val)
			}
		}
		fmt.Printf("\n%d of %d fields answered\n", answered, len(form.Specs()))
		return nil
	},
}

// recomputeDerived restores doc into a fresh registry so the derived
// fields reflect the stored answers.
func recomputeDerived(doc map[string]any) map[string]any {
	vals := form.NewValues()
	vals.Restore(doc)
	derive.Apply(vals)
	return vals.Snapshot()
}

func formatDraftValue(v any) string {
	switch v := v.(type) {
	case string:
		return v
	case []string:
		return strings.Join(v, ", ")
	case []any:
		parts := make([]string, 0, len(v))
		for _, p := range v {
			parts = append(parts, fmt.Sprint(p))
		}
		return strings.Join(parts, ", ")
	case nil:
		return ""
	}
	return fmt.Sprint(v)
}

func init() {
	draftCmd.Flags().Bool("json", false, "Print the draft document as JSON")
}
