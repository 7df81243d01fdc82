package slack_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	model "github.com/secmon-lab/hermes/pkg/domain/model/slack"
	"github.com/secmon-lab/hermes/pkg/service/slack"
)

func TestRewrite(t *testing.T) {
	dir := model.Directory{
		"U1": {ID: "U1", Name: "ann", DisplayName: "Ann"},
		"U2": {ID: "U2", Name: "bob", RealName: "Bob Smith"},
		"U3": {ID: "U3", Name: "loud", DisplayName: "<!here>"},
	}

	testCases := map[string]struct {
		input    string
		expected string
	}{
		"user mention": {
			input:    "hi <@U1>",
			expected: "hi @Ann",
		},
		"user mention ignores slack label": {
			input:    "hi <@U1|someone>",
			expected: "hi @Ann",
		},
		"real name fallback": {
			input:    "<@U2> joined",
			expected: "@Bob Smith joined",
		},
		"unknown user keeps id": {
			input:    "<@U9>",
			expected: "@U9",
		},
		"channel with label": {
			input:    "see <#C1|general>",
			expected: "see #general",
		},
		"bare channel": {
			input:    "see <#C1>",
			expected: "see #C1",
		},
		"channel with empty label": {
			input:    "see <#C1|>",
			expected: "see #C1",
		},
		"labeled link": {
			input:    "<https://x.io|docs>",
			expected: "docs (https://x.io)",
		},
		"bare link": {
			input:    "go to <https://x.io/a?b=c>",
			expected: "go to https://x.io/a?b=c",
		},
		"mailto link": {
			input:    "<mailto:a@b.c|a@b.c>",
			expected: "a@b.c (mailto:a@b.c)",
		},
		"broadcast": {
			input:    "<!here> and <!channel> and <!everyone>",
			expected: "@here and @channel and @everyone",
		},
		"broadcast with label": {
			input:    "<!here|here>",
			expected: "@here",
		},
		"mixed": {
			input:    "<@U1> posted <https://x.io|docs> in <#C1|general> <!here>",
			expected: "@Ann posted docs (https://x.io) in #general @here",
		},
		"unknown markup untouched": {
			input:    "a <foo> b <!subteam^S1>",
			expected: "a <foo> b <!subteam^S1>",
		},
		"unbalanced markup untouched": {
			input:    "a < b and <@U1",
			expected: "a < b and <@U1",
		},
		"rewritten output is not matched again": {
			input:    "<@U3>",
			expected: "@<!here>",
		},
		"plain text": {
			input:    "nothing to do",
			expected: "nothing to do",
		},
		"empty": {
			input:    "",
			expected: "",
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			gt.Value(t, slack.Rewrite(tc.input, dir)).Equal(tc.expected)
		})
	}
}

func TestRewriteIdempotent(t *testing.T) {
	dir := model.Directory{
		"U1": {ID: "U1", Name: "ann", DisplayName: "Ann"},
	}

	inputs := []string{
		"hi <@U1>",
		"<https://x.io|docs> and <https://y.io>",
		"<#C1|general> <!channel>",
		"<@U9> <foo>",
	}

	for _, input := range inputs {
		once := slack.Rewrite(input, dir)
		gt.Value(t, slack.Rewrite(once, dir)).Equal(once)
	}
}

func TestRewriteNilDirectory(t *testing.T) {
	gt.Value(t, slack.Rewrite("<@U1> hi", nil)).Equal("@U1 hi")
}
