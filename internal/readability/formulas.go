package readability

import "math"

func (s sample) avgSentenceLength() float64 {
	return round(float64(s.words)/float64(s.sentences), 1)
}

func (s sample) avgSyllablesPerWord() float64 {
	return round(float64(s.syllables)/float64(s.words), 1)
}

func (s sample) avgCharsPerWord() float64 {
	return round(float64(s.chars)/float64(s.words), 2)
}

func (s sample) avgLettersPerWord() float64 {
	return round(float64(s.letters)/float64(s.words), 2)
}

func (s sample) avgSentencesPerWord() float64 {
	return round(float64(s.sentences)/float64(s.words), 2)
}

// Flesch Reading Ease: higher is easier, roughly 0 to 100.
func (s sample) fleschReadingEase() float64 {
	return round(206.835-1.015*s.avgSentenceLength()-84.6*s.avgSyllablesPerWord(), 2)
}

func fleschReadingEaseToGrade(score float64) float64 {
	switch {
	case score >= 90:
		return 5
	case score >= 80:
		return 6
	case score >= 70:
		return 7
	case score >= 60:
		return 8.5
	case score >= 50:
		return 11
	case score >= 40:
		return 13
	case score >= 30:
		return 15
	}
	return 16
}

func (s sample) fleschKincaidGrade() float64 {
	return round(0.39*s.avgSentenceLength()+11.8*s.avgSyllablesPerWord()-15.59, 1)
}

// SMOG needs at least three sentences.
func (s sample) smog() float64 {
	if s.sentences < 3 {
		return 0
	}
	return round(1.043*math.Sqrt(float64(s.polySyllables)*30/float64(s.sentences))+3.1291, 1)
}

func (s sample) colemanLiau() float64 {
	letters := round(s.avgLettersPerWord()*100, 2)
	sentences := round(s.avgSentencesPerWord()*100, 2)
	return round(0.058*letters-0.296*sentences-15.8, 2)
}

func (s sample) automatedReadability() float64 {
	chars := round(float64(s.chars)/float64(s.words), 2)
	words := round(float64(s.words)/float64(s.sentences), 2)
	return round(4.71*chars+0.5*words-21.43, 1)
}

func (s sample) linsearWrite() float64 {
	n := float64(s.linsearEasy+3*s.linsearHard) / float64(s.linsearSentences)
	if n <= 20 {
		n -= 2
	}
	return n / 2
}

// daleChall uses the percentage of words missing from the easy list.
func (s sample) daleChall() float64 {
	pct := float64(s.difficult2) / float64(s.words) * 100
	score := 0.1579*pct + 0.0496*s.avgSentenceLength()
	if pct > 5 {
		score += 3.6365
	}
	return round(score, 2)
}

func daleChallToGrade(score float64) float64 {
	switch {
	case score <= 4.9:
		return 4
	case score < 5.9:
		return 5
	case score < 6.9:
		return 7
	case score < 7.9:
		return 9
	case score < 8.9:
		return 11
	case score < 9.9:
		return 13
	}
	return 16
}

func (s sample) gunningFog() float64 {
	pct := float64(s.difficult3)/float64(s.words)*100 + 5
	return round(0.4*(s.avgSentenceLength()+pct), 2)
}

func (s sample) lix() float64 {
	return round(s.avgSentenceLength()+float64(s.longWords)*100/float64(s.words), 2)
}

func (s sample) rix() float64 {
	return round(float64(s.longWords)/float64(s.sentences), 2)
}
