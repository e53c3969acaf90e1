// Package message composes short seeded love notes to accompany a bouquet.
package message

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/venooo/dailybouquet/pkg/seed"
)

// Separator splits paragraphs in Message.Text.
const Separator = "\n\n"

// Message is one generated note.
type Message struct {
	Subject   string `json:"subject"`
	Text      string `json:"text"`
	Signature string `json:"signature"`
}

// Paragraphs splits Text at blank lines.
func (m Message) Paragraphs() []string {
	return strings.Split(m.Text, Separator)
}

// Morning reports whether hour falls in the morning window [4, 12).
func Morning(hour int) bool {
	h := ((hour % 24) + 24) % 24
	return h >= 4 && h < 12
}

// maxResample bounds the search for a second, distinct thought.
const maxResample = 8

// Generate composes the note for s. The body is fully determined by s;
// hour only chooses between morning and evening phrasing. The random stream
// is consumed identically for every hour.
func Generate(s string, hour int) Message {
	src := seed.New(seed.Salt(s, "message"))

	opener := seed.Pick(src, openers)
	intro := seed.Pick(src, intros)

	timely := src.Chance(0.6)
	bank := evenings
	if Morning(hour) {
		bank = mornings
	}
	if phrase := seed.Pick(src, bank); timely {
		intro += " " + phrase
	}

	first := src.Intn(len(thoughts))
	body := thoughts[first]
	if src.Chance(0.3) {
		second := src.Intn(len(thoughts))
		for range maxResample {
			if second != first {
				break
			}
			second = src.Intn(len(thoughts))
		}
		if second == first {
			second = (first + 1) % len(thoughts)
		}
		body += " " + thoughts[second]
	}

	closing := seed.Pick(src, closings)
	signature := seed.Pick(src, signatures)

	return Message{
		Subject:   Subject(s),
		Text:      strings.Join([]string{opener, intro, body, closing}, Separator),
		Signature: signature,
	}
}

// Subject picks the subject line for s independently of the body.
func Subject(s string) string {
	return seed.Pick(seed.New(seed.Salt(s, "subject")), subjects)
}

// Classic composes the shorter opener-plus-body note: admiration and
// gratitude sentences arranged around a declaration of love in one of four
// fixed structures.
func Classic(s string) Message {
	src := seed.New(seed.Salt(s, "classic"))

	opener := seed.Pick(src, openers)
	admiration := capitalize(seed.Pick(src, admirations))
	gratitude := seed.Pick(src, gratitudes)
	love := seed.Pick(src, loves)

	var parts []string
	switch src.Intn(4) {
	case 0:
		parts = []string{admiration, love}
	case 1:
		parts = []string{gratitude, love}
	case 2:
		parts = []string{admiration, gratitude, love}
	default:
		parts = []string{love, gratitude}
	}

	return Message{
		Subject:   Subject(s),
		Text:      opener + Separator + strings.Join(parts, " "),
		Signature: seed.Pick(src, signatures),
	}
}

func capitalize(s string) string {
	r, n := utf8.DecodeRuneInString(s)
	if n == 0 {
		return s
	}
	return string(unicode.ToUpper(r)) + s[n:]
}
