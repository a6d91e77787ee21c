package ids

import "strings"

// UniquePrefixLengths returns the shortest unique prefix length for each ID.
// Keys are lowercased.
func UniquePrefixLengths(ids []string) map[string]int {
	uniqueIDs := NormalizeUniqueIDs(ids)

	lengths := make(map[string]int, len(uniqueIDs))
	for _, id := range uniqueIDs {
		lengths[id] = uniquePrefixLength(id, uniqueIDs)
	}

	return lengths
}

// NormalizeUniqueIDs lowercases IDs and drops empty and duplicate entries.
func NormalizeUniqueIDs(ids []string) []string {
	uniqueIDs := make([]string, 0, len(ids))
	seen := make(map[string]bool)
	for _, id := range ids {
		idLower := strings.ToLower(id)
		if idLower == "" || seen[idLower] {
			continue
		}
		seen[idLower] = true
		uniqueIDs = append(uniqueIDs, idLower)
	}
	return uniqueIDs
}

// MatchPrefix finds the ID starting with prefix.
// An exact match wins over longer IDs sharing the prefix.
func MatchPrefix(ids []string, prefix string) (match string, found bool, ambiguous bool) {
	prefix = strings.ToLower(prefix)
	if prefix == "" {
		return "", false, false
	}
	for _, id := range ids {
		idLower := strings.ToLower(id)
		if idLower == prefix {
			return id, true, false
		}
		if !strings.HasPrefix(idLower, prefix) {
			continue
		}
		if found && !strings.EqualFold(match, id) {
			ambiguous = true
			continue
		}
		match = id
		found = true
	}
	return match, found, ambiguous
}

func uniquePrefixLength(id string, ids []string) int {
	for length := 1; length <= len(id); length++ {
		prefix := id[:length]
		unique := true
		for _, other := range ids {
			if other == id {
				continue
			}
			if strings.HasPrefix(other, prefix) {
				unique = false
				break
			}
		}
		if unique {
			return length
		}
	}

	return len(id)
}
