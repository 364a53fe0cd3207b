package tokencoding

import (
	"github.com/evfreq/evfreq/internal/core/ports"
)

// Vocabulary assigns dense integer identifiers to string tokens in
// first-seen order, so that textual event streams can be integerized
// before counting. It implements the ports.TokenCodec interface.
type Vocabulary struct {
	ids    map[string]int32
	tokens []string
}

// NewVocabulary creates a new empty Vocabulary.
func NewVocabulary() ports.TokenCodec {
	return &Vocabulary{
		ids: make(map[string]int32),
	}
}

// Encode returns the identifier for token, assigning the next dense
// identifier if the token has not been seen before.
func (v *Vocabulary) Encode(token string) int32 {
	if id, ok := v.ids[token]; ok {
		return id
	}

	id := int32(len(v.tokens))
	v.ids[token] = id
	v.tokens = append(v.tokens, token)
	return id
}

// Decode returns the token a previously assigned identifier maps to, and
// false if the identifier was never assigned.
func (v *Vocabulary) Decode(id int32) (string, bool) {
	if id < 0 || int(id) >= len(v.tokens) {
		return "", false
	}
	return v.tokens[id], true
}

// Size returns the number of distinct tokens encoded so far.
func (v *Vocabulary) Size() int {
	return len(v.tokens)
}
