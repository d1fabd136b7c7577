package interview

import "testing"

func TestExtractProfile(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want bool
	}{
		{"flat object", `{"archetype":"X"}`, true},
		{"nested object", `{"axes":{"openness":"high"},"archetype":{"id":"pathfinder"}}`, true},
		{"object with whitespace", "  \n {\"a\": 1} \n ", true},
		{"empty object", `{}`, true},
		{"prose", "Can you clarify your goals?", false},
		{"prose containing json fragment", `I think {"archetype":"X"} fits you best.`, false},
		{"json with trailing prose", `{"archetype":"X"} — does that sound right?`, false},
		{"markdown fenced json", "```json\n{\"archetype\":\"X\"}\n```", false},
		{"top-level array", `[{"archetype":"X"}]`, false},
		{"null", `null`, false},
		{"bare string", `"archetype"`, false},
		{"empty input", "", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			profile, ok := ExtractProfile(tc.raw)
			if ok != tc.want {
				t.Fatalf("ExtractProfile(%q): got ok=%v, want %v", tc.raw, ok, tc.want)
			}
			if !ok && profile != nil {
				t.Fatalf("failed extraction must return nil profile, got %v", profile)
			}
			if ok && profile == nil {
				t.Fatalf("successful extraction must return a profile")
			}
		})
	}
}
