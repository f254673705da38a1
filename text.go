package newsrag

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Default chunking parameters, in runes.
const (
	DefaultChunkSize    = 1024
	DefaultChunkOverlap = 200
)

// SplitText splits text into chunks of at most size runes, breaking on
// sentence boundaries where possible. Consecutive chunks share up to overlap
// runes of trailing sentences so that context survives the cut.
func SplitText(text string, size, overlap int) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	if size <= 0 {
		size = DefaultChunkSize
	}
	if overlap < 0 || overlap >= size {
		overlap = 0
	}

	var (
		chunks []string
		cur    []string
		curLen int
		fresh  bool // cur holds text not yet emitted
	)

	flush := func() {
		chunks = append(chunks, strings.Join(cur, " "))
		var carry []string
		n := 0
		for i := len(cur) - 1; i >= 0; i-- {
			l := utf8.RuneCountInString(cur[i])
			if n > 0 {
				l++
			}
			if n+l > overlap {
				break
			}
			carry = append([]string{cur[i]}, carry...)
			n += l
		}
		cur, curLen, fresh = carry, n, false
	}

	add := func(piece string) {
		l := utf8.RuneCountInString(piece)
		if curLen > 0 {
			l++
		}
		if curLen+l > size && fresh {
			flush()
		}
		if curLen > 0 && curLen+utf8.RuneCountInString(piece)+1 > size {
			cur, curLen = nil, 0
		}
		if curLen > 0 {
			curLen++
		}
		cur = append(cur, piece)
		curLen += utf8.RuneCountInString(piece)
		fresh = true
	}

	for _, sentence := range splitSentences(text) {
		for _, piece := range splitLong(sentence, size) {
			add(piece)
		}
	}
	if fresh {
		chunks = append(chunks, strings.Join(cur, " "))
	}
	return chunks
}

// splitSentences breaks text into trimmed sentences. Line breaks always end a
// sentence; '.', '!' and '?' end one when followed by whitespace.
func splitSentences(text string) []string {
	var sentences []string
	for _, line := range strings.Split(text, "\n") {
		runes := []rune(strings.TrimSpace(line))
		start := 0
		for i, r := range runes {
			if (r == '.' || r == '!' || r == '?') && i+1 < len(runes) && unicode.IsSpace(runes[i+1]) {
				if s := strings.TrimSpace(string(runes[start : i+1])); s != "" {
					sentences = append(sentences, s)
				}
				start = i + 1
			}
		}
		if s := strings.TrimSpace(string(runes[start:])); s != "" {
			sentences = append(sentences, s)
		}
	}
	return sentences
}

// splitLong cuts a sentence longer than size runes on word boundaries.
// Words longer than size are cut mid-word.
func splitLong(sentence string, size int) []string {
	if utf8.RuneCountInString(sentence) <= size {
		return []string{sentence}
	}

	var pieces []string
	var b strings.Builder
	n := 0
	for _, word := range strings.Fields(sentence) {
		w := []rune(word)
		for len(w) > size {
			if n > 0 {
				pieces = append(pieces, b.String())
				b.Reset()
				n = 0
			}
			pieces = append(pieces, string(w[:size]))
			w = w[size:]
		}
		if len(w) == 0 {
			continue
		}
		if n > 0 && n+1+len(w) > size {
			pieces = append(pieces, b.String())
			b.Reset()
			n = 0
		}
		if n > 0 {
			b.WriteByte(' ')
			n++
		}
		b.WriteString(string(w))
		n += len(w)
	}
	if n > 0 {
		pieces = append(pieces, b.String())
	}
	return pieces
}
