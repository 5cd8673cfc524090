// Package edition classifies release text into a named cut or edition.
//
// Rules are evaluated in a fixed order and the first match wins. The order matters
// because the patterns overlap: "Extended IMAX" is a Directors Cut, not IMAX.
package edition

import (
	"time"

	"github.com/dlclark/regexp2"
	"github.com/samber/lo"
	"github.com/samber/mo"
)

// Cut names.
const (
	Theatrical   = "Theatrical Cut"
	Directors    = "Directors Cut"
	IMAXEnhanced = "IMAX Enhanced"
	IMAX         = "IMAX"
	OpenMatte    = "Open Matte"
)

// matchTimeout bounds a single rule evaluation; a timed out rule does not match.
const matchTimeout = time.Second

// Rule pairs a cut name with the pattern that detects it.
type Rule struct {
	Name    string
	pattern *regexp2.Regexp
}

// Pattern returns the source of the rule's regular expression.
func (r Rule) Pattern() string {
	return r.pattern.String()
}

// Match reports whether text contains the rule's marker.
func (r Rule) Match(text string) bool {
	ok, err := r.pattern.MatchString(text)
	return err == nil && ok
}

func newRule(name, pattern string) Rule {
	re := regexp2.MustCompile(pattern, regexp2.IgnoreCase)
	re.MatchTimeout = matchTimeout
	return Rule{Name: name, pattern: re}
}

// Word boundaries are ASCII only, so accented letters around a marker act as
// separators.
const (
	wordStart = `(?<![A-Za-z0-9_])`
	wordEnd   = `(?![A-Za-z0-9_])`
)

var rules = []Rule{
	newRule(Theatrical, wordStart+`Theatrical`+wordEnd),
	// a trailing digit catches glued forms such as "Edition2"
	newRule(Directors, wordStart+`(extended|uncut|directors|special|unrated|uncensored|cut|version|edition)(`+wordEnd+`|[0-9])`),
	newRule(IMAXEnhanced, wordStart+`(IMAX[ ._-]Enhanced)`+wordEnd),
	newRule(IMAX, wordStart+`((?<!NON[ ._-])IMAX)`+wordEnd),
	newRule(OpenMatte, wordStart+`(Open[ ._-]?Matte)`+wordEnd),
}

// Rules returns the ordered rule list.
func Rules() []Rule {
	return append([]Rule(nil), rules...)
}

// Classify returns the name of the first rule matching text.
func Classify(text string) mo.Option[string] {
	rule, ok := lo.Find(rules, func(r Rule) bool {
		return r.Match(text)
	})
	if !ok {
		return mo.None[string]()
	}
	return mo.Some(rule.Name)
}
