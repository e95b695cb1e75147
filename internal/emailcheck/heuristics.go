package emailcheck

import (
	"regexp"
	"strings"
)

const (
	maxRepeatedRun  = 5
	maxSequenceRun  = 6
	maxConsonantRun = 7
)

var keyboardRows = []string{"qwertyuiop", "asdfghjkl", "zxcvbnm", "1234567890"}

var placeholderWithDigits = regexp.MustCompile(`^(test|fake|random|dummy|sample|temp|user)[a-z]*\d{5,}$`)

// suspiciousPattern возвращает имя сработавшего шаблона или пустую строку
func suspiciousPattern(local string) string {
	local = strings.ToLower(local)

	switch {
	case longestRepeatedRun(local) >= maxRepeatedRun:
		return "repeated_characters"
	case hasKeyboardSequence(local):
		return "keyboard_sequence"
	case longestAlphabetRun(local) >= maxSequenceRun:
		return "alphabet_sequence"
	case longestConsonantRun(local) >= maxConsonantRun:
		return "consonant_run"
	case placeholderWithDigits.MatchString(local):
		return "placeholder_with_digits"
	}
	return ""
}

func longestRepeatedRun(s string) int {
	longest, run := 0, 0
	for i := 0; i < len(s); i++ {
		if i > 0 && s[i] == s[i-1] {
			run++
		} else {
			run = 1
		}
		longest = max(longest, run)
	}
	return longest
}

func hasKeyboardSequence(s string) bool {
	for _, row := range keyboardRows {
		for i := 0; i+maxSequenceRun <= len(row); i++ {
			if strings.Contains(s, row[i:i+maxSequenceRun]) {
				return true
			}
		}
	}
	return false
}

// longestAlphabetRun длина самой длинной последовательности вида abcd...
func longestAlphabetRun(s string) int {
	longest, run := 0, 0
	for i := 0; i < len(s); i++ {
		if !isLetter(s[i]) {
			run = 0
			continue
		}
		if i > 0 && isLetter(s[i-1]) && s[i] == s[i-1]+1 {
			run++
		} else {
			run = 1
		}
		longest = max(longest, run)
	}
	return longest
}

func longestConsonantRun(s string) int {
	longest, run := 0, 0
	for i := 0; i < len(s); i++ {
		if isLetter(s[i]) && !strings.ContainsRune("aeiouy", rune(s[i])) {
			run++
			longest = max(longest, run)
			continue
		}
		run = 0
	}
	return longest
}

func isLetter(c byte) bool {
	return c >= 'a' && c <= 'z'
}
