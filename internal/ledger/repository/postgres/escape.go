package postgres

import "strings"

// COPY text format markers.
const (
	copyNull = `\N`
	copyNow  = "now"
)

var copyEscaper = strings.NewReplacer(
	`\`, `\\`,
	"\t", `\t`,
	"\n", `\n`,
	"\r", `\r`,
)

// copyText escapes one field for the COPY text format: backslash, tab,
// newline and carriage return become backslash sequences.
func copyText(s string) string {
	return copyEscaper.Replace(s)
}

var arrayElemEscaper = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
)

// arrayText renders values as a Postgres array literal with every
// element double-quoted: {"a","b"}. An empty slice renders as {}.
func arrayText(vals []string) string {
	if len(vals) == 0 {
		return "{}"
	}
	var b strings.Builder
	b.WriteByte('{')
	for i, v := range vals {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('"')
		b.WriteString(arrayElemEscaper.Replace(v))
		b.WriteByte('"')
	}
	b.WriteByte('}')
	return b.String()
}

// literal renders s as a single-quoted SQL string literal. Quote
// doubling is the only escape needed: the server is expected to run
// with standard_conforming_strings on (the default since 9.1), so
// backslashes, tabs and newlines pass through quoted text verbatim.
func literal(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

// arrayLiteral renders vals as a quoted array literal argument for a
// statement-log line.
func arrayLiteral(vals []string) string {
	return literal(arrayText(vals))
}
