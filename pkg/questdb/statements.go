package questdb

import "strings"

// Statements splits a SQL script into single statements. Comment-only lines
// and blank lines are dropped. The wire protocol executes one statement per
// call.
func Statements(script string) []string {
	var (
		statements []string
		current    strings.Builder
	)

	flush := func() {
		if stmt := strings.TrimSpace(current.String()); stmt != "" {
			statements = append(statements, stmt)
		}
		current.Reset()
	}

	for _, line := range strings.Split(script, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "--") {
			continue
		}

		for {
			idx := strings.IndexByte(line, ';')
			if idx < 0 {
				break
			}
			current.WriteString(line[:idx])
			flush()
			line = strings.TrimSpace(line[idx+1:])
		}

		if line != "" {
			current.WriteString(line)
			current.WriteString("\n")
		}
	}
	flush()

	return statements
}
