package corrector

import (
	"context"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	wordRe       = regexp.MustCompile(`[\p{L}\p{N}']+`)
	spaceRunRe   = regexp.MustCompile(`[ \t]+`)
	spaceBeforeP = regexp.MustCompile(`[ \t]+([,.!?;:])`)
	missingSpace = regexp.MustCompile(`([,!?;:])(\p{L})`)
)

// misspellings maps lower-case typos to their correction.
var misspellings = map[string]string{
	"accross":    "across",
	"adress":     "address",
	"alot":       "a lot",
	"becuase":    "because",
	"begining":   "beginning",
	"beleive":    "believe",
	"calender":   "calendar",
	"cant":       "can't",
	"definately": "definitely",
	"didnt":      "didn't",
	"doesnt":     "doesn't",
	"dont":       "don't",
	"enviroment": "environment",
	"existance":  "existence",
	"freind":     "friend",
	"goverment":  "government",
	"grammer":    "grammar",
	"helo":       "hello",
	"i'd":        "I'd",
	"i'll":       "I'll",
	"i'm":        "I'm",
	"i've":       "I've",
	"im":         "I'm",
	"isnt":       "isn't",
	"ive":        "I've",
	"neccessary": "necessary",
	"occassion":  "occasion",
	"occured":    "occurred",
	"publically": "publicly",
	"recieve":    "receive",
	"recomend":   "recommend",
	"seperate":   "separate",
	"succesful":  "successful",
	"teh":        "the",
	"thier":      "their",
	"tommorow":   "tomorrow",
	"truely":     "truly",
	"untill":     "until",
	"wasnt":      "wasn't",
	"wether":     "whether",
	"wich":       "which",
	"wierd":      "weird",
	"wont":       "won't",
	"wrld":       "world",
}

// Rules corrects whitespace, a dictionary of common misspellings, the
// pronoun "i" and sentence capitalisation. It never fails.
type Rules struct {
	dict map[string]string
}

func NewRules() *Rules {
	return &Rules{dict: misspellings}
}

func (r *Rules) Correct(_ context.Context, text string) (string, error) {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	for i, l := range lines {
		l = spaceRunRe.ReplaceAllString(strings.TrimSpace(l), " ")
		l = spaceBeforeP.ReplaceAllString(l, "$1")
		l = missingSpace.ReplaceAllString(l, "$1 $2")
		lines[i] = wordRe.ReplaceAllStringFunc(l, r.fixWord)
	}
	out := strings.TrimSpace(strings.Join(lines, "\n"))
	return capitalizeSentences(out), nil
}

func (r *Rules) fixWord(w string) string {
	lower := strings.ToLower(w)
	if lower == "i" {
		return "I"
	}
	fix, ok := r.dict[lower]
	if !ok {
		return w
	}
	first, _ := utf8.DecodeRuneInString(w)
	if unicode.IsUpper(first) {
		return upperFirst(fix)
	}
	return fix
}

// capitalizeSentences upper-cases the first letter of the text and of every
// sentence that follows ". ", "! " or "? " (or a line break).
func capitalizeSentences(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))

	start := true
	var prev rune
	for _, c := range s {
		switch {
		case start && unicode.IsLetter(c):
			sb.WriteRune(unicode.ToUpper(c))
			start = false
		case unicode.IsSpace(c) && (prev == '.' || prev == '!' || prev == '?' || c == '\n'):
			sb.WriteRune(c)
			start = true
		default:
			if !unicode.IsSpace(c) {
				start = false
			}
			sb.WriteRune(c)
		}
		prev = c
	}
	return sb.String()
}

func upperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
