// Package fastpath provides the deterministic fast lane for trivially
// structured transaction statements ("income 500", "खर्च 200"). A match here
// bypasses the classifier entirely.
package fastpath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/bizsakhi/sakhi/internal/model"
)

// Confidence is the fixed confidence attached to fast-path detections.
const Confidence = 0.95

// Pattern is one lexical transaction pattern. The regex must capture the
// numeric amount in group 1.
type Pattern struct {
	Name     string
	Regex    string
	Kind     model.IntentKind
	Priority int // Higher priority patterns are checked first
}

type compiledPattern struct {
	compiledRegex *regexp.Regexp
	Pattern
}

// questionGuard suppresses the fast path for anything that reads like a
// question or calculation; those belong to the classifier.
var questionGuard = regexp.MustCompile(`(?i)\?|how much|tell me|\b(how|what|calculate|loss|profit|percent|percentage|if|when|why|where|who|explain)\b`)

// Matcher applies an ordered pattern table, first match wins.
type Matcher struct {
	patterns []compiledPattern
}

// NewMatcher compiles the given pattern table, sorted by priority. Patterns
// are matched case-insensitively.
func NewMatcher(patterns []Pattern) (*Matcher, error) {
	compiled := make([]compiledPattern, 0, len(patterns))

	for _, p := range patterns {
		regexStr := p.Regex
		if !strings.HasPrefix(regexStr, "(?i)") {
			regexStr = "(?i)" + regexStr
		}

		regex, err := regexp.Compile(regexStr)
		if err != nil {
			return nil, fmt.Errorf("failed to compile pattern %s: %w", p.Name, err)
		}

		compiled = append(compiled, compiledPattern{
			Pattern:       p,
			compiledRegex: regex,
		})
	}

	// Sort by priority (highest first). Equal priorities keep input order,
	// which is what makes the table's tie-break explicit.
	for i := 0; i < len(compiled)-1; i++ {
		for j := i + 1; j < len(compiled); j++ {
			if compiled[j].Priority > compiled[i].Priority {
				compiled[i], compiled[j] = compiled[j], compiled[i]
			}
		}
	}

	return &Matcher{patterns: compiled}, nil
}

// NewDefaultMatcher compiles the built-in multi-language pattern table.
func NewDefaultMatcher() (*Matcher, error) {
	return NewMatcher(DefaultPatterns())
}

// Match scans the message against the pattern table and returns the first
// matching transaction intent. Messages that read like questions never
// match. The boolean reports whether a pattern fired.
func (m *Matcher) Match(text string) (model.TransactionIntent, bool) {
	lowered := strings.ToLower(strings.TrimSpace(text))

	if questionGuard.MatchString(lowered) {
		return model.TransactionIntent{}, false
	}

	for _, p := range m.patterns {
		groups := p.compiledRegex.FindStringSubmatch(lowered)
		if groups == nil || len(groups) < 2 {
			continue
		}

		amount, err := parseAmount(groups[1])
		if err != nil || amount <= 0 {
			continue
		}

		switch p.Kind {
		case model.IntentIncome:
			return model.NewIncome(amount, fmt.Sprintf("Income - ₹%v", amount), "General"), true
		case model.IntentExpense:
			return model.NewExpense(amount, fmt.Sprintf("Expense - ₹%v", amount), "General"), true
		default:
			continue
		}
	}

	return model.TransactionIntent{}, false
}

// PatternCount returns the number of compiled patterns.
func (m *Matcher) PatternCount() int {
	return len(m.patterns)
}

// parseAmount normalizes a captured amount string: grouping separators are
// removed before parsing.
func parseAmount(s string) (float64, error) {
	return strconv.ParseFloat(strings.ReplaceAll(s, ",", ""), 64)
}
