package ui

import (
	"fmt"
	"strings"

	"snake-term/config"
)

type binding struct {
	key    string
	action string
}

// Legend is the key table shown under the grid.
func Legend(layout config.Layout) string {
	var keys []binding
	switch layout {
	case config.LayoutWASD:
		keys = []binding{{"w", "Up"}, {"s", "Down"}, {"a", "Left"}, {"d", "Right"}, {"q", "Quit"}}
	default:
		keys = []binding{{"z", "Up"}, {"s", "Down"}, {"q", "Left"}, {"d", "Right"}, {"a", "Quit"}}
	}
	keys = append(keys, binding{"ctrl+c", "Quit"})

	var b strings.Builder
	b.WriteString("   Key  |  Action\n")
	b.WriteString("--------|--------\n")
	for _, k := range keys {
		fmt.Fprintf(&b, " %6s |   %-5s\n", k.key, k.action)
	}
	b.WriteString(" arrows |   Move\n")
	return b.String()
}
