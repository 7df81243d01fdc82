package slack_test

import (
	"strings"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/hermes/pkg/service/slack"
)

func TestValidateToken(t *testing.T) {
	testCases := map[string]struct {
		token string
		err   error
	}{
		"empty":             {token: "", err: slack.ErrTokenRequired},
		"bot token":         {token: "xoxb-123-abc", err: slack.ErrBotTokenNotSupported},
		"user token":        {token: "xoxp-123-abc", err: nil},
		"rotating token":    {token: "xoxe.xoxp-1-abc", err: nil},
		"app token":         {token: "xapp-1-abc", err: slack.ErrInvalidToken},
		"random string":     {token: "not-a-token", err: slack.ErrInvalidToken},
		"rotating bot only": {token: "xoxe.xoxb-1-abc", err: slack.ErrInvalidToken},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			err := slack.ValidateToken(tc.token)
			if tc.err == nil {
				gt.NoError(t, err)
				return
			}
			gt.Error(t, err).Is(tc.err)
			if tc.token != "" {
				gt.Bool(t, strings.Contains(err.Error(), tc.token)).False()
			}
		})
	}
}

func TestValidateIDs(t *testing.T) {
	for _, id := range []string{"C0123ABC", "D024BE91L", "G12345", "C1"} {
		gt.NoError(t, slack.ValidateChannelID(id))
	}
	for _, id := range []string{"", "C", "c0123abc", "U0123ABC", "general", "#general"} {
		gt.Error(t, slack.ValidateChannelID(id)).Is(slack.ErrInvalidInput)
	}

	gt.NoError(t, slack.ValidateTS("ts", "1700000000.000100"))
	for _, ts := range []string{"", "1700000000", "1700000000.1", "abc.defghi"} {
		gt.Error(t, slack.ValidateTS("ts", ts)).Is(slack.ErrInvalidInput)
	}
}

func TestValidateText(t *testing.T) {
	gt.NoError(t, slack.ValidateText("hello"))
	gt.NoError(t, slack.ValidateText(strings.Repeat("あ", slack.MaxMessageLength)))
	gt.Error(t, slack.ValidateText("   \n")).Is(slack.ErrInvalidInput)
	gt.Error(t, slack.ValidateText(strings.Repeat("a", slack.MaxMessageLength+1))).Is(slack.ErrInvalidInput)
}

func TestSanitizeQuery(t *testing.T) {
	testCases := map[string]struct {
		input    string
		expected string
	}{
		"plain":         {input: "deploy failed", expected: "deploy failed"},
		"newlines":      {input: "a\nb\r\nc\rd", expected: "a b c d"},
		"trim":          {input: "  \n query \n", expected: "query"},
		"only newlines": {input: "\n\r\n", expected: ""},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			gt.Value(t, slack.SanitizeQuery(tc.input)).Equal(tc.expected)
		})
	}

	long := slack.SanitizeQuery(strings.Repeat("検", slack.MaxQueryLength+10))
	gt.Value(t, len([]rune(long))).Equal(slack.MaxQueryLength)
}

func TestClampLimit(t *testing.T) {
	gt.Value(t, slack.ClampLimit(0, 20, 100)).Equal(20)
	gt.Value(t, slack.ClampLimit(-1, 20, 100)).Equal(20)
	gt.Value(t, slack.ClampLimit(50, 20, 100)).Equal(50)
	gt.Value(t, slack.ClampLimit(500, 20, 100)).Equal(100)
}

func TestRankScore(t *testing.T) {
	gt.Value(t, slack.RankScore(0, 4)).Equal(1.0)
	gt.Value(t, slack.RankScore(3, 4)).Equal(0.25)
	gt.Value(t, slack.RankScore(0, 0)).Equal(0.0)
}
