package tabular

import "strconv"

// normalizeHeader makes every column name non-empty and unique.
//
// Empty names become "Unnamed: <i>"; the second and later copies of a name
// become "name.1", "name.2", and so on, skipping suffixes already in use.
func normalizeHeader(raw []string, width int) []string {
	cols := make([]string, width)
	used := make(map[string]bool, width)
	counts := make(map[string]int)
	for i := 0; i < width; i++ {
		name := ""
		if i < len(raw) {
			name = raw[i]
		}
		if name == "" {
			name = "Unnamed: " + strconv.Itoa(i)
		}

		candidate := name
		for used[candidate] {
			counts[name]++
			candidate = name + "." + strconv.Itoa(counts[name])
		}
		used[candidate] = true
		cols[i] = candidate
	}
	return cols
}

// positionalHeader names columns "0" .. "width-1".
func positionalHeader(width int) []string {
	cols := make([]string, width)
	for i := range cols {
		cols[i] = strconv.Itoa(i)
	}
	return cols
}
