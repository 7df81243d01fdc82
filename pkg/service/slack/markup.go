package slack

import (
	"regexp"
	"strings"

	model "github.com/secmon-lab/hermes/pkg/domain/model/slack"
)

// markupRule rewrites every match of pattern. groups holds the submatches,
// with groups[0] being the whole match.
type markupRule struct {
	pattern *regexp.Regexp
	replace func(groups []string, dir model.Directory) string
}

// markupRules run in order. Text produced by one rule is never matched again
// by a later rule.
var markupRules = []markupRule{
	// 1. user mentions: <@U123> and <@U123|label>; Slack's own label is ignored
	{
		pattern: regexp.MustCompile(`<@([A-Z0-9]+)(?:\|[^>]*)?>`),
		replace: func(g []string, dir model.Directory) string {
			return "@" + dir.Resolve(g[1])
		},
	},
	// 2. channel references: <#C123|general> then bare <#C123>
	{
		pattern: regexp.MustCompile(`<#([A-Z0-9]+)\|([^>]+)>`),
		replace: func(g []string, _ model.Directory) string {
			return "#" + g[2]
		},
	},
	{
		pattern: regexp.MustCompile(`<#([A-Z0-9]+)\|?>`),
		replace: func(g []string, _ model.Directory) string {
			return "#" + g[1]
		},
	},
	// 3. links: <https://x|label> then bare <https://x>
	{
		pattern: regexp.MustCompile(`<([a-zA-Z][a-zA-Z0-9+.\-]*:[^|>\s]+)\|([^>]+)>`),
		replace: func(g []string, _ model.Directory) string {
			return g[2] + " (" + g[1] + ")"
		},
	},
	{
		pattern: regexp.MustCompile(`<([a-zA-Z][a-zA-Z0-9+.\-]*:[^|>\s]+)>`),
		replace: func(g []string, _ model.Directory) string {
			return g[1]
		},
	},
	// 4. broadcasts: <!here>, <!channel>, <!everyone>
	{
		pattern: regexp.MustCompile(`<!(here|channel|everyone)(?:\|[^>]*)?>`),
		replace: func(g []string, _ model.Directory) string {
			return "@" + g[1]
		},
	},
}

// segment is a piece of text under rewriting. Frozen segments were produced
// by a rule and are skipped by the remaining ones.
type segment struct {
	text   string
	frozen bool
}

// Rewrite converts Slack markup in text into plain text. User mentions are
// resolved with dir, which must be loaded beforehand. Markup that matches no
// rule is left untouched.
func Rewrite(text string, dir model.Directory) string {
	if !strings.Contains(text, "<") {
		return text
	}

	segments := []segment{{text: text}}
	for _, rule := range markupRules {
		segments = rule.apply(segments, dir)
	}

	var b strings.Builder
	b.Grow(len(text))
	for _, s := range segments {
		b.WriteString(s.text)
	}
	return b.String()
}

func (r markupRule) apply(segments []segment, dir model.Directory) []segment {
	out := make([]segment, 0, len(segments))

	for _, s := range segments {
		if s.frozen {
			out = append(out, s)
			continue
		}

		matches := r.pattern.FindAllStringSubmatchIndex(s.text, -1)
		if len(matches) == 0 {
			out = append(out, s)
			continue
		}

		last := 0
		for _, loc := range matches {
			if loc[0] > last {
				out = append(out, segment{text: s.text[last:loc[0]]})
			}
			out = append(out, segment{
				text:   r.replace(submatches(s.text, loc), dir),
				frozen: true,
			})
			last = loc[1]
		}
		if last < len(s.text) {
			out = append(out, segment{text: s.text[last:]})
		}
	}

	return out
}

func submatches(text string, loc []int) []string {
	groups := make([]string, len(loc)/2)
	for i := range groups {
		start, end := loc[2*i], loc[2*i+1]
		if start >= 0 {
			groups[i] = text[start:end]
		}
	}
	return groups
}
