package category

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDescriptionSet_ForLanguage(t *testing.T) {
	set := DescriptionSet{
		"en": "English text",
		"de": "Deutscher Text",
		"it": "Testo italiano",
	}

	tests := []struct {
		name      string
		requested string
		want      string
	}{
		{"exact match", "de", "Deutscher Text"},
		{"regional variant falls back to base language", "de-AT", "Deutscher Text"},
		{"another regional variant", "it-CH", "Testo italiano"},
		{"unknown language falls back to English", "fr", "English text"},
		{"unparsable tag falls back to English", "!!", "English text"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, set.ForLanguage(tt.requested))
		})
	}
}

func TestDescriptionSet_ForLanguageWithoutEnglish(t *testing.T) {
	set := DescriptionSet{"de": "Deutscher Text"}

	// No exact match, no base match, no English: any stored entry serves.
	assert.Equal(t, "Deutscher Text", set.ForLanguage("fr"))
}

func TestDescriptionSet_ForLanguageEmptySet(t *testing.T) {
	assert.Equal(t, "", DescriptionSet{}.ForLanguage("en"))
	assert.Equal(t, "", DescriptionSet(nil).ForLanguage("en"))
}

func TestDescriptionSet_Languages(t *testing.T) {
	set := DescriptionSet{
		"it": "Testo italiano",
		"en": "English text",
		"de": "Deutscher Text",
		"!!": "broken entry",
	}

	tags := set.Languages()
	require.Len(t, tags, 3, "unparsable tags are skipped")

	names := make([]string, 0, len(tags))
	for _, tag := range tags {
		names = append(names, tag.String())
	}
	assert.Equal(t, []string{"de", "en", "it"}, names)
}
