package internal

import (
	"strings"
	"testing"
)

func TestBuildSystemPrompt(t *testing.T) {
	tests := []struct {
		name   string
		fields InstructionFields
		want   string
	}{
		{
			name: "all fields in order",
			fields: InstructionFields{
				Role:       "role text",
				Tone:       "tone text",
				Structure:  "structure text",
				Depth:      "depth text",
				Forbidden:  "forbidden text",
				Format:     "format text",
				UserIntent: "intent text",
			},
			want: "role text\n\ntone text\n\nstructure text\n\ndepth text\n\nforbidden text\n\nformat text\n\nintent text",
		},
		{
			name: "empty fields omitted",
			fields: InstructionFields{
				Role:       "role text",
				UserIntent: "intent text",
			},
			want: "role text\n\nintent text",
		},
		{
			name: "fragments are trimmed",
			fields: InstructionFields{
				Role: "  role text \n",
				Tone: "\ttone text ",
			},
			want: "role text\n\ntone text",
		},
		{
			name: "whitespace-only fields omitted",
			fields: InstructionFields{
				Role: "role text",
				Tone: "   ",
			},
			want: "role text",
		},
		{
			name:   "all empty",
			fields: InstructionFields{},
			want:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BuildSystemPrompt(tt.fields); got != tt.want {
				t.Errorf("BuildSystemPrompt() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBuildUserPrompt(t *testing.T) {
	got := BuildUserPrompt("  축구의 경제학 ")
	if !strings.Contains(got, "축구의 경제학") {
		t.Errorf("BuildUserPrompt() = %q, missing topic", got)
	}
	if strings.Contains(got, "  축구") {
		t.Errorf("BuildUserPrompt() = %q, topic not trimmed", got)
	}
}
