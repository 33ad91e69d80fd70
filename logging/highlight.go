// (c) 2020, Alex Willmer, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package logging

import (
	"fmt"
	"strings"

	"golang.org/x/term"
)

// Highlight is the highlighting mode applied to displayed logs.
type Highlight int

// Highlighting modes available.
const (
	Plain Highlight = iota
	Colors
)

// ToHighlight chooses a highlighting mode for the given fd, resolving
// "auto" by checking whether fd is attached to a terminal.
func ToHighlight(h string, fd uintptr) (Highlight, error) {
	switch strings.ToUpper(h) {
	case "PLAIN":
		return Plain, nil
	case "COLORS":
		return Colors, nil
	case "AUTO":
		if !term.IsTerminal(int(fd)) {
			return Plain, nil
		}
		return Colors, nil
	default:
		return Plain, fmt.Errorf("unknown highlight mode: %s", h)
	}
}
