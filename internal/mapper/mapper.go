// Package mapper translates between the flat snake_case records of the
// persistence collaborator and the typed view models. Mapping never
// fails: malformed or missing fields degrade to defaults so the UI can
// always render.
package mapper

import (
	"encoding/json"
	"strconv"
	"strings"

	"jetfleet-backoffice/internal/domain"
	"jetfleet-backoffice/internal/persistence"
)

func stringField(rec persistence.Record, key string) string {
	switch v := rec[key].(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case bool:
		return strconv.FormatBool(v)
	default:
		return ""
	}
}

// trimmedField is used for strings that act as filter keys, so that
// whitespace variants do not create duplicate filter buckets.
func trimmedField(rec persistence.Record, key string) string {
	return strings.TrimSpace(stringField(rec, key))
}

func numberField(rec persistence.Record, key string) float64 {
	switch v := rec[key].(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int32:
		return float64(v)
	case int64:
		return float64(v)
	case string:
		n, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0
		}
		return n
	default:
		return 0
	}
}

func boolField(rec persistence.Record, key string) bool {
	switch v := rec[key].(type) {
	case bool:
		return v
	case string:
		return strings.EqualFold(strings.TrimSpace(v), "true")
	default:
		return false
	}
}

// boolFieldDefaultTrue treats a missing or null value as true; only an
// explicit false (or "false") turns it off. Used for administrative
// active flags that predate the column being added.
func boolFieldDefaultTrue(rec persistence.Record, key string) bool {
	v, ok := rec[key]
	if !ok || v == nil {
		return true
	}
	switch b := v.(type) {
	case bool:
		return b
	case string:
		return !strings.EqualFold(strings.TrimSpace(b), "false")
	default:
		return true
	}
}

// initialsFromName derives the two-letter initials shown on booking
// tables: first letter of the first and last words, or the first two
// letters of a single-word name.
func initialsFromName(name string) string {
	fields := strings.Fields(strings.TrimSpace(name))
	switch len(fields) {
	case 0:
		return ""
	case 1:
		word := []rune(fields[0])
		if len(word) == 1 {
			return strings.ToUpper(string(word[0]))
		}
		return strings.ToUpper(string(word[:2]))
	default:
		first := []rune(fields[0])
		last := []rune(fields[len(fields)-1])
		return strings.ToUpper(string(first[0]) + string(last[0]))
	}
}

// parseRoles splits a comma-joined role string into an exact set of
// role tags. Unknown tags are preserved as-is; membership checks are
// whole-tag comparisons, never substring containment.
func parseRoles(raw string) domain.RoleSet {
	var roles domain.RoleSet
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		roles = roles.Add(domain.Role(part))
	}
	return roles
}

func joinRoles(roles domain.RoleSet) string {
	parts := make([]string, 0, len(roles))
	for _, r := range roles {
		parts = append(parts, string(r))
	}
	return strings.Join(parts, ",")
}

// nullableDate narrows an empty date string to nil so date-typed
// columns are not handed an empty string.
func nullableDate(date string) any {
	if strings.TrimSpace(date) == "" {
		return nil
	}
	return date
}

func boolItems(rec persistence.Record, key string) map[string]bool {
	items := map[string]bool{}
	var raw map[string]any
	switch v := rec[key].(type) {
	case map[string]any:
		raw = v
	case string:
		// jsonb columns surface as strings through the SQL backend.
		if err := json.Unmarshal([]byte(v), &raw); err != nil {
			return items
		}
	default:
		return items
	}
	for k, v := range raw {
		b, _ := v.(bool)
		items[k] = b
	}
	return items
}
