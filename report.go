package envconf

import (
	"strings"
)

const (
	iconOK      = "✅"
	iconError   = "❌"
	iconWarning = "⚠️"
)

// Report renders one status line per declared field, sorted by key:
//
//	<icon> <KEY> <message> (<mandatory|optional>)
//
// Aliases, properties and credentials are not listed.
func (c *Config) Report() string {
	var b strings.Builder

	for _, f := range c.Fields() {
		_, present := c.lookup(f.Key)

		var icon, message string
		switch {
		case present:
			icon, message = iconOK, "is set"
		case f.Required:
			icon, message = iconError, "is not set"
		case f.Default != nil:
			icon, message = iconOK, "is not set, but has default value"
		default:
			icon, message = iconWarning, "is not set"
		}

		label := "optional"
		if f.Required {
			label = "mandatory"
		}

		b.WriteString(strings.Join([]string{icon, f.Key, message, "(" + label + ")"}, " "))
		b.WriteByte('\n')
	}

	return b.String()
}
