package names

// Merge concatenates lists in the order given. Duplicates are kept.
func Merge(lists ...[]string) []string {
	total := 0
	for _, l := range lists {
		total += len(l)
	}

	merged := make([]string, 0, total)
	for _, l := range lists {
		merged = append(merged, l...)
	}
	return merged
}
