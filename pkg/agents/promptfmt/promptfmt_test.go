package promptfmt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRender(t *testing.T) {
	cases := []struct {
		name     string
		template string
		profile  map[string]string
		want     string
	}{
		{
			name:     "known placeholder",
			template: "Welcome {preferred_name}!",
			profile:  map[string]string{"preferred_name": "Sam"},
			want:     "Welcome Sam!",
		},
		{
			name:     "unknown placeholder stripped",
			template: "Hi {nickname}, welcome.",
			profile:  map[string]string{},
			want:     "Hi , welcome.",
		},
		{
			name:     "no placeholders",
			template: "plain text",
			profile:  map[string]string{"a": "b"},
			want:     "plain text",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Render(tc.template, tc.profile))
		})
	}
}
