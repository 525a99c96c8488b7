package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"
)

// renderTable writes rows as an aligned table. Rows shorter than the header
// are padded with empty cells.
func renderTable(w io.Writer, headers []string, rows [][]string) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(headers, "\t"))
	for _, row := range rows {
		for len(row) < len(headers) {
			row = append(row, "")
		}
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	tw.Flush()
}

// parseFields turns "key=value" arguments into an update payload. Values
// that parse as booleans or numbers are submitted as such, everything else
// stays a string. Malformed arguments are rejected as a whole so a typo
// cannot silently drop half an update.
func parseFields(args []string) (map[string]any, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("aucun champ fourni, format attendu: champ=valeur")
	}
	fields := make(map[string]any, len(args))
	for _, arg := range args {
		key, raw, ok := strings.Cut(arg, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("argument invalide %q, format attendu: champ=valeur", arg)
		}
		fields[key] = coerce(raw)
	}
	return fields, nil
}

func coerce(raw string) any {
	if b, err := strconv.ParseBool(raw); err == nil {
		return b
	}
	if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		return f
	}
	return raw
}

func yesNo(b bool) string {
	if b {
		return "oui"
	}
	return "non"
}

// truncate shortens long free-text cells so tables stay readable. It cuts
// on rune boundaries so accented text is never split mid-character.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}
