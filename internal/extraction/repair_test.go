package extraction

import "testing"

func TestStripCodeFence(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "json fence",
			raw:  "```json\n{\"events\":[]}\n```",
			want: `{"events":[]}`,
		},
		{
			name: "json fence with prose around",
			raw:  "Here you go:\n```json\n{\"events\":[{\"title\":\"A\"}]}\n```\nLet me know!",
			want: `{"events":[{"title":"A"}]}`,
		},
		{
			name: "generic fence",
			raw:  "```\n{\"events\":[]}\n```",
			want: `{"events":[]}`,
		},
		{
			name: "generic fence with other label",
			raw:  "```JSON\n{\"events\":[]}\n```",
			want: `{"events":[]}`,
		},
		{
			name: "unterminated json fence",
			raw:  "```json\n{\"events\":[]}",
			want: `{"events":[]}`,
		},
		{
			name: "no fence",
			raw:  "  \n{\"events\":[]}\n ",
			want: `{"events":[]}`,
		},
		{
			name: "json fence wins over an earlier generic fence",
			raw:  "```\nnoise\n```\n```json\n{\"events\":[]}\n```",
			want: `{"events":[]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := stripCodeFence(tt.raw); got != tt.want {
				t.Errorf("stripCodeFence() = %q, want %q", got, tt.want)
			}
		})
	}
}
