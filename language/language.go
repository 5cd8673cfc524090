// Package language maps language names to the emoji shown in compact stream descriptions.
package language

import (
	"sort"
	"strings"

	"github.com/samber/lo"
	"github.com/samber/mo"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Table of language names to the BCP 47 tag whose region supplies the flag.
var tags = map[string]string{
	"english":    "en-GB",
	"japanese":   "ja-JP",
	"chinese":    "zh-CN",
	"russian":    "ru-RU",
	"arabic":     "ar-SA",
	"portuguese": "pt-PT",
	"spanish":    "es-ES",
	"latino":     "es-MX",
	"french":     "fr-FR",
	"german":     "de-DE",
	"italian":    "it-IT",
	"korean":     "ko-KR",
	"hindi":      "hi-IN",
	"bengali":    "bn-BD",
	"punjabi":    "pa-PK",
	"marathi":    "mr-IN",
	"gujarati":   "gu-IN",
	"tamil":      "ta-IN",
	"telugu":     "te-IN",
	"kannada":    "kn-IN",
	"malayalam":  "ml-IN",
	"thai":       "th-TH",
	"vietnamese": "vi-VN",
	"indonesian": "id-ID",
	"malay":      "ms-MY",
	"turkish":    "tr-TR",
	"hebrew":     "he-IL",
	"persian":    "fa-IR",
	"ukrainian":  "uk-UA",
	"greek":      "el-GR",
	"lithuanian": "lt-LT",
	"latvian":    "lv-LV",
	"estonian":   "et-EE",
	"polish":     "pl-PL",
	"czech":      "cs-CZ",
	"slovak":     "sk-SK",
	"hungarian":  "hu-HU",
	"romanian":   "ro-RO",
	"bulgarian":  "bg-BG",
	"serbian":    "sr-RS",
	"croatian":   "hr-HR",
	"slovenian":  "sl-SI",
	"dutch":      "nl-NL",
	"danish":     "da-DK",
	"finnish":    "fi-FI",
	"swedish":    "sv-SE",
	"norwegian":  "nb-NO",
}

// Entries without a country flag.
var symbols = map[string]string{
	"multi":      "🌎",
	"dual audio": "🔈",
}

// Emoji returns the emoji for a language name, or for a BCP 47 tag that carries
// an explicit region such as "pt-BR". Lookup ignores case and surrounding space.
func Emoji(name string) mo.Option[string] {
	folded := cases.Fold().String(strings.TrimSpace(name))

	if s, ok := symbols[folded]; ok {
		return mo.Some(s)
	}

	if tag, ok := tags[folded]; ok {
		return flagOf(language.MustParse(tag))
	}

	tag, err := language.Parse(folded)
	if err != nil {
		return mo.None[string]()
	}
	return flagOf(tag)
}

// EmojiOr returns the emoji for name, or name itself when no mapping exists.
func EmojiOr(name string) string {
	return Emoji(name).OrElse(name)
}

// Known returns every mapped language name in alphabetical order.
func Known() []string {
	names := append(lo.Keys(tags), lo.Keys(symbols)...)
	sort.Strings(names)
	return names
}

// flagOf builds the regional indicator pair for the tag's region, when the region
// was stated explicitly and names a country.
func flagOf(tag language.Tag) mo.Option[string] {
	region, confidence := tag.Region()
	if confidence != language.Exact || !region.IsCountry() {
		return mo.None[string]()
	}

	code := region.String()
	if len(code) != 2 {
		return mo.None[string]()
	}

	const base = 0x1F1E6
	return mo.Some(string([]rune{
		base + rune(code[0]-'A'),
		base + rune(code[1]-'A'),
	}))
}
