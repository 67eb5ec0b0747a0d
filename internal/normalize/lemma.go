package normalize

import "strings"

// PartOfSpeech selects the lemmatization rule set applied to a token.
type PartOfSpeech int

const (
	// Noun applies plural-to-singular reduction
	Noun PartOfSpeech = iota
	// Verb applies inflection-to-base reduction
	Verb
)

// String returns the string representation of the part of speech.
func (pos PartOfSpeech) String() string {
	switch pos {
	case Noun:
		return "noun"
	case Verb:
		return "verb"
	default:
		return "unknown"
	}
}

// uninflected holds forms whose trailing s is not an inflection.
var uninflected = map[string]struct{}{
	"series": {}, "species": {}, "news": {}, "hummus": {}, "asparagus": {},
	"couscous": {}, "citrus": {}, "molasses": {}, "swiss": {},
}

// verbExceptions maps irregular verb forms to their base form.
var verbExceptions = map[string]string{
	"am": "be", "is": "be", "are": "be", "was": "be", "were": "be",
	"been": "be", "being": "be",
	"has": "have", "had": "have", "having": "have",
	"does": "do", "did": "do", "done": "do", "doing": "do",
	"goes": "go", "going": "go", "went": "go", "gone": "go",
	"ate": "eat", "eaten": "eat",
	"drank": "drink", "drunk": "drink",
	"froze": "freeze", "frozen": "freeze",
	"ground": "grind",
	"lit": "light",
	"fed": "feed",
	"made": "make",
	"got": "get", "gotten": "get",
	"took": "take", "taken": "take",
	"gave": "give", "given": "give",
	"came": "come",
	"knew": "know", "known": "know",
	"grew": "grow", "grown": "grow",
	"threw": "throw", "thrown": "throw",
	"blew": "blow", "blown": "blow",
	"flew": "fly", "flown": "fly",
	"drew": "draw", "drawn": "draw",
	"chose": "choose", "chosen": "choose",
	"broke": "break", "broken": "break",
	"spoke": "speak", "spoken": "speak",
	"wrote": "write", "written": "write",
	"drove": "drive", "driven": "drive",
	"rose": "rise", "risen": "rise",
	"fell": "fall", "fallen": "fall",
	"began": "begin", "begun": "begin",
	"sang": "sing", "sung": "sing",
	"swam": "swim", "swum": "swim",
	"ran": "run",
	"sat": "sit",
	"saw": "see", "seen": "see",
	"said": "say",
	"paid": "pay",
	"met": "meet",
	"led": "lead",
	"read": "read",
	"heard": "hear",
	"held": "hold",
	"kept": "keep",
	"slept": "sleep",
	"swept": "sweep",
	"felt": "feel",
	"left": "leave", "leaves": "leave", "leaving": "leave",
	"meant": "mean",
	"sent": "send",
	"spent": "spend",
	"built": "build",
	"lost": "lose",
	"sold": "sell",
	"told": "tell",
	"stood": "stand", "understood": "understand",
	"found": "find",
	"bought": "buy",
	"brought": "bring",
	"thought": "think",
	"caught": "catch",
	"taught": "teach",
	"became": "become",
	"wore": "wear", "worn": "wear",
	"hung": "hang",
	"stuck": "stick",
	"struck": "strike",
	"shook": "shake", "shaken": "shake",
	"won": "win",
	"died": "die", "dying": "die",
	"tied": "tie", "tying": "tie",
	"used": "use", "using": "use",
	"iced": "ice",
	"aged": "age", "aging": "age",
	"dyed": "dye",
	"owed": "owe",
}

// nounExceptions maps irregular plurals to their singular form. The verb
// pass also consults this table so an irregular plural reaches the noun pass
// intact instead of being clipped by the regular -s rules.
var nounExceptions = map[string]string{
	"men": "man", "women": "woman", "children": "child", "people": "person",
	"feet": "foot", "teeth": "tooth", "geese": "goose", "mice": "mouse",
	"lives": "life", "wives": "wife", "knives": "knife", "loaves": "loaf",
	"halves": "half", "shelves": "shelf", "calves": "calf",
	"thieves": "thief", "scarves": "scarf",
	"shoes": "shoe", "menus": "menu",
	"cookies": "cookie", "brownies": "brownie", "smoothies": "smoothie",
	"veggies": "veggie", "movies": "movie",
}

// Lemma reduces a single lowercase token to a base form for the given part
// of speech. The rules follow the WordNet morphy suffix substitutions with a
// Porter-style stem repair in place of a dictionary lookup, so outputs are
// deterministic but occasionally stemmer-flavored (e.g. "marinated" becomes
// "marinat"); the vectorizer vocabulary is built from this same function, so
// such forms still resolve at inference time.
func Lemma(word string, pos PartOfSpeech) string {
	if word == "" {
		return word
	}
	if _, ok := uninflected[word]; ok {
		return word
	}

	switch pos {
	case Verb:
		if _, ok := nounExceptions[word]; ok {
			return word
		}
		if base, ok := verbExceptions[word]; ok {
			return base
		}
		return verbRules(word)
	case Noun:
		if base, ok := nounExceptions[word]; ok {
			return base
		}
		return nounRules(word)
	default:
		return word
	}
}

// verbRules applies ordered suffix substitutions for regular verb inflections.
func verbRules(w string) string {
	n := len(w)

	if strings.HasSuffix(w, "ies") && n >= 5 {
		return w[:n-3] + "y"
	}
	if strings.HasSuffix(w, "es") && n >= 5 {
		stem := w[:n-2]
		if endsAny(stem, "ss", "x", "z", "ch", "sh", "o") {
			return stem
		}
	}
	if strings.HasSuffix(w, "s") && n >= 4 && !endsAny(w, "ss", "ous", "us", "is") {
		return w[:n-1]
	}
	if strings.HasSuffix(w, "ied") && n >= 5 {
		return w[:n-3] + "y"
	}
	if strings.HasSuffix(w, "ed") && n >= 5 {
		if stem := w[:n-2]; hasVowel(stem) {
			return repairStem(stem)
		}
	}
	if strings.HasSuffix(w, "ing") && n >= 6 {
		if stem := w[:n-3]; hasVowel(stem) {
			return repairStem(stem)
		}
	}
	return w
}

// nounRules applies ordered suffix substitutions for regular plurals.
func nounRules(w string) string {
	n := len(w)

	if strings.HasSuffix(w, "ies") && n >= 5 {
		return w[:n-3] + "y"
	}
	if endsAny(w, "sses", "ches", "shes", "xes", "zzes") {
		return w[:n-2]
	}
	if strings.HasSuffix(w, "oes") && n >= 5 {
		return w[:n-2]
	}
	if strings.HasSuffix(w, "s") && n >= 4 && !endsAny(w, "ss", "us", "is", "ous") {
		return w[:n-1]
	}
	return w
}

// repairStem fixes a stem left by stripping -ed or -ing: consonant doubling
// is undone (stopped -> stop) and a dropped final e is restored for short
// consonant-vowel-consonant stems (bake -> bak -> bake).
func repairStem(stem string) string {
	if endsDoubleConsonant(stem) && !endsAny(stem, "ll", "ss", "ff", "zz") {
		return stem[:len(stem)-1]
	}
	if measure(stem) == 1 && endsCVC(stem) {
		return stem + "e"
	}
	return stem
}

// isVowelAt reports whether the byte at i acts as a vowel; y counts as a
// vowel when preceded by a consonant.
func isVowelAt(w string, i int) bool {
	switch w[i] {
	case 'a', 'e', 'i', 'o', 'u':
		return true
	case 'y':
		return i > 0 && !isVowelAt(w, i-1)
	}
	return false
}

func hasVowel(w string) bool {
	for i := range w {
		if isVowelAt(w, i) {
			return true
		}
	}
	return false
}

// measure counts vowel-consonant sequences, as in the Porter stemmer.
func measure(w string) int {
	m := 0
	prevVowel := false
	for i := range w {
		v := isVowelAt(w, i)
		if prevVowel && !v {
			m++
		}
		prevVowel = v
	}
	return m
}

// endsCVC reports whether w ends consonant-vowel-consonant with the final
// consonant not w, x, or y.
func endsCVC(w string) bool {
	n := len(w)
	if n < 3 {
		return false
	}
	if isVowelAt(w, n-3) || !isVowelAt(w, n-2) || isVowelAt(w, n-1) {
		return false
	}
	switch w[n-1] {
	case 'w', 'x', 'y':
		return false
	}
	return true
}

func endsDoubleConsonant(w string) bool {
	n := len(w)
	return n >= 2 && w[n-1] == w[n-2] && !isVowelAt(w, n-1)
}

func endsAny(w string, suffixes ...string) bool {
	for _, s := range suffixes {
		if strings.HasSuffix(w, s) {
			return true
		}
	}
	return false
}
