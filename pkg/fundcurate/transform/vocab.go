package transform

// Term maps one free-text source value to its canonical taxonomy value.
// An empty To blanks the cell out.
type Term struct {
	From string
	To   string
}

// Duplicate records a key declared more than once in a vocabulary.
type Duplicate struct {
	Key      string
	Previous string
	Value    string
}

// Conflicting reports whether the later definition changed the value.
func (d Duplicate) Conflicting() bool {
	return d.Previous != d.Value
}

// Vocabulary is a flattened original -> canonical lookup.
// When a key is declared twice the last definition wins; every repeat is
// kept in Duplicates so it can be surfaced as a configuration warning.
type Vocabulary struct {
	name       string
	terms      map[string]string
	keys       []string
	duplicates []Duplicate
}

// NewVocabulary flattens terms into a vocabulary.
func NewVocabulary(name string, terms ...Term) *Vocabulary {
	v := &Vocabulary{
		name:  name,
		terms: make(map[string]string, len(terms)),
	}
	for _, t := range terms {
		if prev, ok := v.terms[t.From]; ok {
			v.duplicates = append(v.duplicates, Duplicate{Key: t.From, Previous: prev, Value: t.To})
		} else {
			v.keys = append(v.keys, t.From)
		}
		v.terms[t.From] = t.To
	}
	return v
}

// Name returns the vocabulary name.
func (v *Vocabulary) Name() string {
	return v.name
}

// Lookup returns the canonical value for s.
func (v *Vocabulary) Lookup(s string) (string, bool) {
	to, ok := v.terms[s]
	return to, ok
}

// Keys returns the keys in first-declaration order.
func (v *Vocabulary) Keys() []string {
	return append([]string(nil), v.keys...)
}

// Len returns the number of distinct keys.
func (v *Vocabulary) Len() int {
	return len(v.keys)
}

// Duplicates returns every repeated key declaration.
func (v *Vocabulary) Duplicates() []Duplicate {
	return append([]Duplicate(nil), v.duplicates...)
}

// Conflicts returns the repeated declarations that changed the value.
func (v *Vocabulary) Conflicts() []Duplicate {
	var out []Duplicate
	for _, d := range v.duplicates {
		if d.Conflicting() {
			out = append(out, d)
		}
	}
	return out
}
