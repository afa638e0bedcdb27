package arabic_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dukkanhq/dukkan-api/pkg/arabic"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"plain passes through", "قهوة عربية", "قهوه عربيه"},
		{"tashkeel removed", "قَهْوَة", "قهوه"},
		{"alef hamza unified", "أحمد", "احمد"},
		{"alef madda unified", "آمنة", "امنه"},
		{"alef hamza below unified", "إبراهيم", "ابراهيم"},
		{"alef maqsura to yeh", "مصطفى", "مصطفي"},
		{"tatweel dropped", "شـــاي", "شاي"},
		{"latin case folded", "  Nescafe Gold ", "nescafe gold"},
		{"empty stays empty", "", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, arabic.Normalize(tc.in))
		})
	}
}

func TestNormalize_QueryMatchesStoredForm(t *testing.T) {
	stored := arabic.Normalize("قَهْوَة تُرْكِيَّة")
	query := arabic.Normalize("قهوة تركية")
	assert.Equal(t, stored, query)
}
