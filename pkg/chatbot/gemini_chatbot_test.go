package chatbot

import (
	"context"
	"strings"
	"testing"

	"magiars-be/internal/constant"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		max  int
		want string
	}{
		{name: "short string untouched", in: "hola", max: 40, want: "hola"},
		{name: "exact length untouched", in: strings.Repeat("a", 40), max: 40, want: strings.Repeat("a", 40)},
		{name: "long string gets ellipsis", in: strings.Repeat("a", 41), max: 40, want: strings.Repeat("a", 40) + "..."},
		{name: "multibyte runes counted as one", in: "ñ" + strings.Repeat("é", 45), max: 40, want: "ñ" + strings.Repeat("é", 39) + "..."},
		{name: "surrounding whitespace trimmed", in: "  hola  ", max: 40, want: "hola"},
		{name: "empty string", in: "", max: 40, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Truncate(tt.in, tt.max); got != tt.want {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.want)
			}
		})
	}
}

func TestUnconfiguredClientFallbacks(t *testing.T) {
	c := NewClient("", nil)
	ctx := context.Background()

	if c.Configured() {
		t.Fatal("client without api key reports configured")
	}

	if got := c.Reply(ctx, "hola", nil); got != constant.UnconfiguredReply {
		t.Errorf("Reply() = %q, want unconfigured fallback", got)
	}

	if got := c.Classify(ctx, nil); got != constant.FallbackCategory {
		t.Errorf("Classify() = %q, want %q", got, constant.FallbackCategory)
	}

	long := strings.Repeat("x", 60)
	if got := c.TitleFor(ctx, long); got != strings.Repeat("x", 40)+"..." {
		t.Errorf("TitleFor() = %q, want truncated first message", got)
	}
}

func TestGeminiRole(t *testing.T) {
	tests := []struct {
		role string
		want string
	}{
		{role: constant.ChatMessageRoleUser, want: constant.ChatMessageRoleUser},
		{role: constant.ChatMessageRoleAssistant, want: constant.ChatMessageRoleModel},
		{role: "bot", want: constant.ChatMessageRoleUser},
	}

	for _, tt := range tests {
		if got := geminiRole(tt.role); got != tt.want {
			t.Errorf("geminiRole(%q) = %q, want %q", tt.role, got, tt.want)
		}
	}
}
