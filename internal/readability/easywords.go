package readability

import (
	_ "embed"
	"strings"
	"sync"
)

// easy_words.txt is the Dale-Chall list of about 3,000 familiar words, one
// word per line, lower case.
//
//go:embed easy_words.txt
var easyWordsFile string

var easyWords = sync.OnceValue(func() map[string]struct{} {
	words := strings.Fields(easyWordsFile)
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[strings.ToLower(w)] = struct{}{}
	}
	return set
})

func isEasyWord(word string) bool {
	_, ok := easyWords()[strings.ToLower(word)]
	return ok
}
