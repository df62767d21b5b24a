package core

import (
	"strconv"
	"strings"
)

// Action is a submitted guess.
type Action int

// InvalidAction is what unparsable input turns into. It is never a member of an
// action space, so the rules engine drops it like any other out-of-range guess.
const InvalidAction Action = 0

func (a Action) String() string {
	return strconv.Itoa(int(a))
}

// ParseAction reads the leading integer of s. Surrounding whitespace and an
// optional sign are accepted and anything after the digits is ignored, so
// " 4 " and "4th" both yield 4. Text without leading digits yields InvalidAction.
func ParseAction(s string) Action {
	s = strings.TrimSpace(s)

	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digitsStart := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digitsStart {
		return InvalidAction
	}

	n, err := strconv.Atoi(s[:end])
	if err != nil {
		// Out of int range; no action space is that large.
		return InvalidAction
	}
	return Action(n)
}
