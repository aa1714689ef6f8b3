package report

import (
	"sort"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"
)

func normalizeHeader(s string) string {
	return norm.NFC.String(strings.Join(strings.Fields(s), " "))
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// normalizedColumns rekeys the rename map by normalized header text.
func normalizedColumns(columns map[string]string) map[string]string {
	out := make(map[string]string, len(columns))
	for src, dst := range columns {
		out[normalizeHeader(src)] = dst
	}
	return out
}

func headerHits(header []string, columns map[string]string) int {
	want := normalizedColumns(columns)
	n := 0
	for _, h := range header {
		if _, ok := want[normalizeHeader(h)]; ok {
			n++
		}
	}
	return n
}

// headerNames turns the first grid row into unique column names. Blank
// headers become "Unnamed: <i>" and repeats get ".1", ".2" suffixes.
func headerNames(header []string) []string {
	names := make([]string, len(header))
	seen := map[string]int{}
	for i, h := range header {
		name := normalizeHeader(h)
		if name == "" {
			name = "Unnamed: " + strconv.Itoa(i)
		}
		if n, dup := seen[name]; dup {
			seen[name] = n + 1
			name = name + "." + strconv.Itoa(n+1)
		} else {
			seen[name] = 0
		}
		names[i] = name
	}
	return names
}

// canonicalize renames expected source columns in place and reports how many
// were renamed. A canonical name may appear once only, whether it was renamed
// into place or was already present in the source header.
func canonicalize(names []string, columns map[string]string) (renamed int, conflict string) {
	want := normalizedColumns(columns)
	canonical := map[string]bool{}
	for _, dst := range want {
		canonical[dst] = true
	}
	for i, name := range names {
		if dst, ok := want[name]; ok {
			names[i] = dst
			renamed++
		}
	}
	if renamed == 0 {
		return 0, ""
	}
	seen := map[string]bool{}
	for _, name := range names {
		if !canonical[name] {
			continue
		}
		if seen[name] {
			return renamed, name
		}
		seen[name] = true
	}
	return renamed, ""
}
