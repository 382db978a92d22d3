package novel

import (
	"regexp"
	"strconv"

	"golang.org/x/text/width"
)

var arabicNumeral = regexp.MustCompile(`^\d+$`)

var numeralDigits = map[rune]int{
	'零': 0, '〇': 0, '一': 1, '二': 2, '两': 2, '三': 3, '四': 4,
	'五': 5, '六': 6, '七': 7, '八': 8, '九': 9,
}

var numeralUnits = map[rune]int{
	'十': 10, '百': 100, '千': 1000, '万': 10000, '亿': 100000000,
}

// NormalizeNumeral converts a chapter numeral such as "十二", "一百零五" or "3"
// into an integer. Fullwidth digits are accepted. The boolean is false when
// the token is empty or an Arabic numeral overflows int.
//
// Chinese numerals are read in one pass: digits are held as pending, units
// below 万 multiply the pending digit (or an implicit 1) into the current
// section, and 万/亿 close the section into the result. Unknown runes drop
// the pending digit. A trailing digit with no unit counts at face value.
func NormalizeNumeral(token string) (int, bool) {
	if token == "" {
		return 0, false
	}
	token = width.Narrow.String(token)

	if arabicNumeral.MatchString(token) {
		n, err := strconv.Atoi(token)
		if err != nil {
			return 0, false
		}
		return n, true
	}

	var result, section, pending int
	hasPending := false
	for _, r := range token {
		if d, ok := numeralDigits[r]; ok {
			pending, hasPending = d, true
			continue
		}

		unit, ok := numeralUnits[r]
		switch {
		case !ok:
			pending, hasPending = 0, false
		case unit >= 10000:
			group := section + pending
			if group == 0 {
				group = 1
			}
			result += group * unit
			section, pending, hasPending = 0, 0, false
		default:
			if !hasPending {
				pending = 1
			}
			section += pending * unit
			pending, hasPending = 0, false
		}
	}

	return result + section + pending, true
}
