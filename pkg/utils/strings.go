package utils

import "strings"

// SplitList splits a comma separated value, trimming blanks and dropping
// empty entries.
func SplitList(raw string) []string {
	var result []string

	for _, s := range strings.Split(raw, ",") {
		if s = strings.TrimSpace(s); s != "" {
			result = append(result, s)
		}
	}

	return result
}
