package readability

import (
	"fmt"
	"math"
	"strings"
)

// WordsPerMinute is the reading speed assumed by ReadingTime.
const WordsPerMinute = 233

// WordCount counts whitespace-separated words.
func WordCount(text string) int {
	return len(strings.Fields(text))
}

// ReadingTime estimates how long text takes to read and formats it as
// MM:SS. Minutes are rounded to two decimals before the split.
func ReadingTime(text string) string {
	estimate := math.Round(float64(WordCount(text))/WordsPerMinute*100) / 100
	minutes := math.Floor(estimate)
	seconds := math.Round((estimate - minutes) * 60)
	return fmt.Sprintf("%02d:%02d", int(minutes), int(seconds))
}
