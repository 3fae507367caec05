package readability

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	sentenceRE = regexp.MustCompile(`\b[^.!?]+[.!?]*`)
	wordRE     = regexp.MustCompile(`[\p{L}\p{N}_'-]+`)
)

// linsearWindow is the number of leading words Linsear Write samples.
const linsearWindow = 100

// sample holds the raw counts every formula is derived from.
type sample struct {
	chars         int
	letters       int
	words         int
	syllables     int
	sentences     int
	polySyllables int
	longWords     int

	// unique words missing from the easy list, by syllable threshold
	difficult2 int
	difficult3 int

	linsearEasy      int
	linsearHard      int
	linsearSentences int
}

func analyze(text string) sample {
	var s sample

	for _, r := range text {
		if !unicode.IsSpace(r) {
			s.chars++
		}
	}

	cleaned := removePunctuation(text)
	for _, r := range cleaned {
		if !unicode.IsSpace(r) {
			s.letters++
		}
	}

	words := strings.Fields(cleaned)
	s.words = len(words)
	if s.words == 0 {
		return s
	}

	for _, w := range words {
		n := syllables(w)
		s.syllables += n
		if n >= 3 {
			s.polySyllables++
		}
		if utf8.RuneCountInString(w) > 6 {
			s.longWords++
		}
	}

	s.sentences = sentenceCount(text)
	s.difficult2 = difficultWords(text, 2)
	s.difficult3 = difficultWords(text, 3)

	head := strings.Fields(text)
	if len(head) > linsearWindow {
		head = head[:linsearWindow]
	}
	for _, w := range head {
		if syllables(w) < 3 {
			s.linsearEasy++
		} else {
			s.linsearHard++
		}
	}
	s.linsearSentences = sentenceCount(strings.Join(head, " "))

	return s
}

// removePunctuation drops every rune that is neither a letter, a digit nor
// whitespace.
func removePunctuation(text string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			return r
		}
		return -1
	}, text)
}

// sentenceCount counts sentence-like runs, ignoring fragments of two words
// or fewer. It never returns less than one.
func sentenceCount(text string) int {
	matches := sentenceRE.FindAllString(text, -1)
	ignored := 0
	for _, m := range matches {
		if len(strings.Fields(removePunctuation(m))) <= 2 {
			ignored++
		}
	}
	return max(1, len(matches)-ignored)
}

// difficultWords counts distinct words that are not on the easy list and
// have at least threshold syllables.
func difficultWords(text string, threshold int) int {
	seen := make(map[string]struct{})
	for _, w := range wordRE.FindAllString(strings.ToLower(text), -1) {
		if _, ok := seen[w]; ok {
			continue
		}
		if isEasyWord(w) || syllables(w) < threshold {
			continue
		}
		seen[w] = struct{}{}
	}
	return len(seen)
}

// syllables estimates the syllable count of a single word by counting vowel
// groups and discounting common silent endings. Words with any letters count
// at least one syllable.
func syllables(word string) int {
	var letters []rune
	for _, r := range strings.ToLower(word) {
		if unicode.IsLetter(r) {
			letters = append(letters, r)
		}
	}
	n := len(letters)
	if n == 0 {
		return 0
	}
	if n <= 3 {
		return 1
	}

	count := 0
	prevVowel := false
	for _, r := range letters {
		v := isVowel(r)
		if v && !prevVowel {
			count++
		}
		prevVowel = v
	}

	last, prev := letters[n-1], letters[n-2]
	switch {
	case last == 'e' && prev == 'l' && !isVowel(letters[n-3]):
		// "table", "simple": the final "le" is voiced
	case last == 'e' && !isVowel(prev):
		count--
	case last == 'd' && prev == 'e' && !strings.ContainsRune("td", letters[n-3]) && !isVowel(letters[n-3]):
		count--
	case last == 's' && prev == 'e' && !strings.ContainsRune("szxcgh", letters[n-3]) && !isVowel(letters[n-3]):
		count--
	}
	return max(1, count)
}

func isVowel(r rune) bool {
	switch r {
	case 'a', 'e', 'i', 'o', 'u', 'y':
		return true
	}
	return false
}
