package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/SscSPs/bizbooks_app/internal/core/billing"
	"github.com/SscSPs/bizbooks_app/internal/core/domain"
	"github.com/spf13/cobra"
)

var nextNumberCmd = &cobra.Command{
	Use:   "next-number [existing...]",
	Short: "Compute the next document number of a sequence",
	Long: `Compute the next document number from a list of numbers already in use.
Existing numbers are taken from the arguments, or from stdin (one per line)
when --stdin is set. Prefix and suffix default to the collection's defaults.`,
	Example: `  bizbooks next-number INV-001-2024 INV-002-2024
  bizbooks next-number --kind purchases --suffix Q1 PO-009-Q1
  psql -At -c "select document_number from documents" | bizbooks next-number --stdin`,
	RunE: runNextNumber,
}

func init() {
	nextNumberCmd.Flags().String("kind", string(domain.KindSale), "Collection: sales or purchases")
	nextNumberCmd.Flags().String("prefix", "", "Number prefix (defaults to INV or PO)")
	nextNumberCmd.Flags().String("suffix", "", "Number suffix (defaults to the current year)")
	nextNumberCmd.Flags().Int("pad", billing.DefaultPadWidth, "Minimum digits of the sequence")
	nextNumberCmd.Flags().Bool("stdin", false, "Read existing numbers from stdin")
}

func runNextNumber(cmd *cobra.Command, args []string) error {
	kindFlag, _ := cmd.Flags().GetString("kind")
	prefix, _ := cmd.Flags().GetString("prefix")
	suffix, _ := cmd.Flags().GetString("suffix")
	pad, _ := cmd.Flags().GetInt("pad")
	fromStdin, _ := cmd.Flags().GetBool("stdin")

	kind := domain.DocumentKind(kindFlag)
	if !kind.Valid() {
		return fmt.Errorf("unknown kind %q: use sales or purchases", kindFlag)
	}

	format := billing.DefaultNumbering(kind, time.Now())
	if prefix != "" {
		format.Prefix = prefix
	}
	if suffix != "" {
		format.Suffix = suffix
	}
	format.PadWidth = pad
	if err := format.Validate(); err != nil {
		return err
	}

	existing := args
	if fromStdin {
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			if line := strings.TrimSpace(scanner.Text()); line != "" {
				existing = append(existing, line)
			}
		}
		if err := scanner.Err(); err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
	}

	next, err := format.Next(existing)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), next)
	return nil
}
