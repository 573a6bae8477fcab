// Package report renders waitlist positions as plain text.
package report

import (
	"fmt"
	"io"
	"os"
	"strings"

	"waitlist-engine/internal/domain"
)

const dividerWidth = 50

var divider = strings.Repeat("-", dividerWidth)

// Fprint writes one block per apartment, in the mapping's iteration order:
//
//	Apartment Variant ID: 335-601-2-1-2
//	Apartment Variant: Torvegade - Rækkehus/hus - 2v
//	Waitlist Position: 45
//	--------------------------------------------------
func Fprint(w io.Writer, apts *domain.Apartments) error {
	for _, e := range apts.Entries() {
		if _, err := fmt.Fprintf(w,
			"Apartment Variant ID: %s\nApartment Variant: %s\nWaitlist Position: %d\n%s\n",
			e.Key, e.Record.VariantString, e.Record.Position, divider,
		); err != nil {
			return err
		}
	}
	return nil
}

// Print writes to stdout.
func Print(apts *domain.Apartments) {
	_ = Fprint(os.Stdout, apts)
}
