package category

import (
	"sort"

	"golang.org/x/text/language"
)

// DescriptionSet holds the per-language descriptions of a category, keyed by
// BCP 47 language tag as stored.
type DescriptionSet map[string]string

// ForLanguage picks the best matching description for the requested tag,
// falling back to English and then to any available entry.
func (d DescriptionSet) ForLanguage(requested string) string {
	if len(d) == 0 {
		return ""
	}
	if text, ok := d[requested]; ok {
		return text
	}
	want, err := language.Parse(requested)
	if err == nil {
		for stored, text := range d {
			tag, err := language.Parse(stored)
			if err != nil {
				continue
			}
			if base, _ := tag.Base(); base.String() != "" {
				wantBase, _ := want.Base()
				if base == wantBase {
					return text
				}
			}
		}
	}
	if text, ok := d["en"]; ok {
		return text
	}
	for _, text := range d {
		return text
	}
	return ""
}

// Languages lists the stored language tags in canonical order, skipping
// unparsable ones.
func (d DescriptionSet) Languages() []language.Tag {
	tags := make([]language.Tag, 0, len(d))
	for stored := range d {
		if tag, err := language.Parse(stored); err == nil {
			tags = append(tags, tag)
		}
	}
	sort.Slice(tags, func(i, j int) bool {
		return tags[i].String() < tags[j].String()
	})
	return tags
}
