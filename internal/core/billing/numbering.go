// Package billing implements document numbering, line-item totals and payment
// reconciliation for sales invoices and purchase orders. Everything here is pure;
// callers fetch existing state and persist the results.
package billing

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/SscSPs/bizbooks_app/internal/apperrors"
	"github.com/SscSPs/bizbooks_app/internal/core/domain"
)

// DefaultPadWidth is the minimum width of the sequence component.
const DefaultPadWidth = 3

// MaxSequence is the largest sequence number. Larger numbers are treated as
// malformed, and a sequence that reaches it is exhausted.
const MaxSequence int64 = 999_999_999_999_999_999

// NumberFormat describes how document numbers of one sequence are composed.
type NumberFormat struct {
	// Prefix starts the number, e.g. "INV".
	Prefix string
	// Suffix ends the number, typically the year.
	Suffix string
	// PadWidth is the minimum digit count of the sequence (default 3).
	PadWidth int
}

// DefaultNumbering returns the numbering used when a draft does not override it.
func DefaultNumbering(kind domain.DocumentKind, now time.Time) NumberFormat {
	prefix := "INV"
	if kind == domain.KindPurchase {
		prefix = "PO"
	}
	return NumberFormat{
		Prefix:   prefix,
		Suffix:   strconv.Itoa(now.Year()),
		PadWidth: DefaultPadWidth,
	}
}

// Validate checks that prefix and suffix can be composed into a parseable number.
func (f NumberFormat) Validate() error {
	if err := validatePart("numberPrefix", f.Prefix); err != nil {
		return err
	}
	return validatePart("numberSuffix", f.Suffix)
}

func validatePart(field, v string) error {
	if strings.TrimSpace(v) == "" {
		return apperrors.NewFieldError(apperrors.ErrValidation, field, "must not be empty")
	}
	if strings.ContainsAny(v, " \t\r\n") {
		return apperrors.NewFieldError(apperrors.ErrValidation, field, "must not contain whitespace")
	}
	return nil
}

// Next returns the next unused number of this sequence.
func (f NumberFormat) Next(existing []string) (string, error) {
	return NextDocumentNumber(existing, f.Prefix, f.Suffix, f.PadWidth)
}

// NextDocumentNumber returns the number following the highest sequence found in
// existing for the prefix/suffix pair, skipping forward past any number already
// present. Numbers of other sequences and malformed numbers are ignored. The result
// always parses back with ParseSequence; when no such number is left the error
// matches apperrors.ErrValidation.
func NextDocumentNumber(existing []string, prefix, suffix string, padWidth int) (string, error) {
	if padWidth <= 0 {
		padWidth = DefaultPadWidth
	}

	taken := make(map[string]struct{}, len(existing))
	var highest int64
	for _, n := range existing {
		taken[n] = struct{}{}
		if seq, ok := ParseSequence(n, prefix, suffix); ok && seq > highest {
			highest = seq
		}
	}

	for seq := highest + 1; seq <= MaxSequence; seq++ {
		candidate := FormatNumber(prefix, suffix, seq, padWidth)
		if _, dup := taken[candidate]; !dup {
			return candidate, nil
		}
	}
	return "", apperrors.NewFieldError(apperrors.ErrValidation, "numberPrefix",
		fmt.Sprintf("sequence %s-*-%s is exhausted, choose another prefix or suffix", prefix, suffix))
}

// FormatNumber composes "{prefix}-{zero-padded seq}-{suffix}".
func FormatNumber(prefix, suffix string, seq int64, padWidth int) string {
	return fmt.Sprintf("%s-%0*d-%s", prefix, padWidth, seq, suffix)
}

// ParseSequence extracts the sequence of number if it belongs to the prefix/suffix
// sequence.
func ParseSequence(number, prefix, suffix string) (int64, bool) {
	head, tail := prefix+"-", "-"+suffix
	if len(number) <= len(head)+len(tail) {
		return 0, false
	}
	if !strings.HasPrefix(number, head) || !strings.HasSuffix(number, tail) {
		return 0, false
	}
	digits := number[len(head) : len(number)-len(tail)]
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return 0, false
		}
	}
	seq, err := strconv.ParseInt(digits, 10, 64)
	if err != nil || seq > MaxSequence {
		return 0, false
	}
	return seq, true
}
