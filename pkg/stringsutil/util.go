package stringsutil

// RemoveEmptyStrings drops zero-length entries, preserving order.
func RemoveEmptyStrings(values []string) []string {
	kept := make([]string, 0, len(values))
	for _, v := range values {
		if v == "" {
			continue
		}
		kept = append(kept, v)
	}
	return kept
}
