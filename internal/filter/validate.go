package filter

import (
	"fmt"
	"strings"
	"unicode"
)

// Validate restricts conditions to comparisons and boolean logic over record
// fields: no calls, no arithmetic, no member access, no literals other than
// numbers, strings and booleans.
func Validate(cond string) error {
	cond = stripStrings(strings.TrimSpace(cond))
	if cond == "" {
		return nil
	}

	illegalChars := []rune{'{', '}', '[', ']', ';', ':', '?', '@', '#', '$', '\\'}
	for _, ch := range illegalChars {
		if strings.ContainsRune(cond, ch) {
			return fmt.Errorf("illegal character %q", ch)
		}
	}

	for i := 0; i < len(cond); i++ {
		if cond[i] != '.' {
			continue
		}
		if i == 0 || i == len(cond)-1 || !isDigit(cond[i-1]) || !isDigit(cond[i+1]) {
			return fmt.Errorf("dot access is not allowed")
		}
	}

	illegalOps := []string{"+", "-", "*", "/", "%"}
	for _, op := range illegalOps {
		if strings.Contains(cond, op) {
			return fmt.Errorf("arithmetic operator %q is not allowed", op)
		}
	}

	for i := 0; i < len(cond)-1; i++ {
		if cond[i] == '(' {
			j := i - 1
			for j >= 0 && unicode.IsSpace(rune(cond[j])) {
				j--
			}
			if j >= 0 && (unicode.IsLetter(rune(cond[j])) || cond[j] == '_') {
				k := j
				for k >= 0 && (unicode.IsLetter(rune(cond[k])) || unicode.IsDigit(rune(cond[k])) || cond[k] == '_') {
					k--
				}
				ident := strings.TrimSpace(cond[k+1 : j+1])
				if ident != "" && !isKeyword(ident) {
					return fmt.Errorf("function calls are not allowed (found %q(...))", ident)
				}
			}
		}
	}

	return nil
}

// stripStrings blanks the contents of quoted literals so that names like
// "Peixe-Boi" are not mistaken for operators.
func stripStrings(cond string) string {
	var b strings.Builder
	var quote rune
	escape := false

	for _, r := range cond {
		switch {
		case quote == 0:
			if r == '"' || r == '\'' {
				quote = r
			}
			b.WriteRune(r)
		case escape:
			escape = false
		case r == '\\':
			escape = true
		case r == quote:
			quote = 0
			b.WriteRune(r)
		}
	}
	return b.String()
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

// keywords may precede a parenthesized group.
func isKeyword(s string) bool {
	switch s {
	case "and", "or", "not":
		return true
	}
	return false
}
