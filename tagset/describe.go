package tagset

type RuleDescription struct {
	Value   string `json:"value"`
	Pattern string `json:"pattern"`
}

// Description is the serializable form of a Tagset.
type Description struct {
	Name            string            `json:"name"`
	Categories      []RuleDescription `json:"categories"`
	Tenses          []RuleDescription `json:"tenses"`
	Auxiliaries     []RuleDescription `json:"auxiliaries"`
	Relations       Relations         `json:"relations"`
	DoLemma         string            `json:"do_lemma,omitempty"`
	Complementizers []string          `json:"complementizers"`
	NonPrepositions []string          `json:"non_prepositions"`
	FreeChoice      string            `json:"free_choice,omitempty"`
}

func describe[T ~string](rules []Rule[T]) []RuleDescription {
	desc := make([]RuleDescription, len(rules))
	for i, r := range rules {
		desc[i] = RuleDescription{Value: string(r.Value), Pattern: r.Pattern.String()}
	}
	return desc
}

func (ts *Tagset) Describe() Description {
	return Description{
		Name:            ts.Name,
		Categories:      describe(ts.Categories),
		Tenses:          describe(ts.Tenses),
		Auxiliaries:     describe(ts.Auxiliaries),
		Relations:       ts.Relations,
		DoLemma:         ts.DoLemma,
		Complementizers: ts.Complementizers,
		NonPrepositions: ts.NonPrepositions,
		FreeChoice:      ts.FreeChoice,
	}
}
