package glossary

import "strings"

// exact maps a lower-cased title to its position in entries.
var exact = func() map[string]int {
	idx := make(map[string]int, len(entries))
	for i, e := range entries {
		key := strings.ToLower(e.Title)
		if _, dup := idx[key]; !dup {
			idx[key] = i
		}
	}
	return idx
}()

// All returns a copy of the glossary in display order.
func All() []Entry {
	out := make([]Entry, len(entries))
	copy(out, entries)
	return out
}

// ByCategory returns the entries of one category in display order.
func ByCategory(c Category) []Entry {
	var out []Entry
	for _, e := range entries {
		if e.Category == c {
			out = append(out, e)
		}
	}
	return out
}

// Lookup resolves a free-text name to a glossary entry. An exact
// case-insensitive title match wins; otherwise the first entry whose title
// contains the name, or is contained in it, is returned.
func Lookup(name string) (Entry, bool) {
	search := strings.ToLower(strings.TrimSpace(name))
	if search == "" {
		return Entry{}, false
	}
	if i, ok := exact[search]; ok {
		return entries[i], true
	}
	for _, e := range entries {
		title := strings.ToLower(e.Title)
		if strings.Contains(search, title) || strings.Contains(title, search) {
			return e, true
		}
	}
	return Entry{}, false
}

// DescriptionByName returns the description of the matching entry, or "".
func DescriptionByName(name string) string {
	e, ok := Lookup(name)
	if !ok {
		return ""
	}
	return e.Description
}

// IDByName returns the id of the matching entry, or "".
func IDByName(name string) string {
	e, ok := Lookup(name)
	if !ok {
		return ""
	}
	return e.ID
}

type iconRule struct {
	icon     string
	keywords []string
}

var iconRules = []iconRule{
	{"🛡️", []string{"shield", "щит"}},
	{"🔑", []string{"key", "ключ"}},
	{"⚔️", []string{"sword", "blade", "меч"}},
	{"🧪", []string{"potion", "heal", "зелье"}},
	{"💰", []string{"gold", "coin", "монет"}},
	{"⛏️", []string{"ice", "axe", "ледоруб"}},
}

// DefaultIcon is used for inventory names that match no icon rule.
const DefaultIcon = "📦"

// Icon picks a display icon for an inventory item name.
func Icon(name string) string {
	n := strings.ToLower(name)
	for _, rule := range iconRules {
		for _, kw := range rule.keywords {
			if strings.Contains(n, kw) {
				return rule.icon
			}
		}
	}
	return DefaultIcon
}
