package tagset

import (
	"regexp"
)

// The English TreeTagger tagset of the parsed ukWaC corpus.
//
//	VB   be    base (be)           VH   have  base (have)
//	VBD  be    past tense (was)    VHD  have  past tense (had)
//	VBG  be    -ing (being)        VHG  have  -ing (having)
//	VBN  be    past participle     VHN  have  past participle (had)
//	VBP  be    plural (are)        VHP  have  plural (have)
//	VBZ  be    -s (is)             VHZ  have  -s (has)
//	VV   verb  base (believe)      VVD  verb  past tense (believed)
//	VVG  verb  -ing (believing)    VVN  verb  past participle
//	VVP  verb  plural (believe)    VVZ  verb  -s (believes)
//
//	JJ JJR JJS  adjectives         RB RBR RBS  adverbs
//	NN NNS NP NPS  nouns           PP PP$      pronouns
//	WDT WP WP$ WRB  wh words       EX          existential there
//	IN  preposition                RP          adverbial particle
//	DT  determiner                 CD          cardinal number
//	MD  modal                      TO          infinitive marker
var englishPatterns = map[Category]string{
	Verb:        "^V",
	Noun:        "^(N|EX|PP|W)",
	Adjective:   "^JJ",
	Adverb:      "^RB",
	Preposition: "^IN",
	Particle:    "^RP",
	Determiner:  "^DT",
	Numeral:     "^CD",
	Wh:          "^W",
	Infinitive:  "^TO$",
}

var englishTenses = []struct {
	tense   Tense
	pattern string
}{
	{Past, "^V.D"},
	{Gerund, "^V.G"},
	{PastPart, "^V.N"},
	{Present, "^V.P"},
	{Present, "^V.Z"},
}

var englishAuxiliaries = []struct {
	aux     Aux
	pattern string
}{
	{Have, "^VH"},
	{Be, "^VB"},
	{Modal, "^MD"},
}

var englishRelations = Relations{
	Subject:           "SBJ",
	Object:            "OBJ",
	Predicate:         "PRD",
	Root:              "ROOT",
	VerbChain:         "VC",
	ClausalComplement: "SBAR",
}

// English returns the built-in tagset of the parsed ukWaC corpus.
func English() *Tagset {
	ts := &Tagset{
		Name:            "english",
		Relations:       englishRelations,
		DoLemma:         "do",
		Complementizers: []string{"if", "that", "whether", "like", "for"},
		NonPrepositions: []string{"if", "that", "whether"},
		FreeChoice:      "ever",
	}

	for _, c := range Categories() {
		ts.Categories = append(ts.Categories, Rule[Category]{Value: c, Pattern: regexp.MustCompile(englishPatterns[c])})
	}

	for _, t := range englishTenses {
		ts.Tenses = append(ts.Tenses, Rule[Tense]{Value: t.tense, Pattern: regexp.MustCompile(t.pattern)})
	}

	for _, a := range englishAuxiliaries {
		ts.Auxiliaries = append(ts.Auxiliaries, Rule[Aux]{Value: a.aux, Pattern: regexp.MustCompile(a.pattern)})
	}

	return ts
}
