package normalize

import "strings"

// irregularPlurals covers food words the suffix rules get wrong.
var irregularPlurals = map[string]string{
	"leaves":    "leaf",
	"loaves":    "loaf",
	"knives":    "knife",
	"olives":    "olive",
	"chives":    "chive",
	"cloves":    "clove",
	"endives":   "endive",
	"geese":     "goose",
	"feet":      "foot",
	"teeth":     "tooth",
	"mice":      "mouse",
	"children":  "child",
	"oxen":      "ox",
	"molasses":  "molasses",
	"radishes":  "radish",
	"peaches":   "peach",
	"squashes":  "squash",
	"dishes":    "dish",
	"bunches":   "bunch",
	"boxes":     "box",
	"cookies":   "cookie",
	"brownies":  "brownie",
	"calves":    "calf",
	"halves":    "half",
	"shelves":   "shelf",
	"pies":      "pie",
	"potatoes":  "potato",
	"tomatoes":  "tomato",
	"mangoes":   "mango",
	"avocadoes": "avocado",
}

// uninflected words end in "s" but are already singular.
var uninflected = map[string]struct{}{
	"asparagus":  {},
	"hummus":     {},
	"couscous":   {},
	"citrus":     {},
	"swiss":      {},
	"brussels":   {},
	"grits":      {},
	"series":     {},
	"species":    {},
	"haricots":   {},
	"molasses":   {},
	"octopus":    {},
	"bass":       {},
	"watercress": {},
	"lemongrass": {},
}

// Singularize reduces a lowercase token to its singular form using the
// irregular table first, then the suffix rules -ies→y, -ves→f, -oes→o and
// a trailing -s dropped when the word is longer than three letters.
func Singularize(word string) string {
	if s, ok := irregularPlurals[word]; ok {
		return s
	}
	if _, ok := uninflected[word]; ok {
		return word
	}

	n := len(word)
	switch {
	case n > 4 && strings.HasSuffix(word, "ies"):
		return word[:n-3] + "y"
	case n > 4 && strings.HasSuffix(word, "ves"):
		return word[:n-3] + "f"
	case n > 4 && strings.HasSuffix(word, "oes"):
		return word[:n-2]
	case n > 3 && strings.HasSuffix(word, "s"):
		if strings.HasSuffix(word, "ss") || strings.HasSuffix(word, "us") || strings.HasSuffix(word, "is") {
			return word
		}
		return word[:n-1]
	}
	return word
}
