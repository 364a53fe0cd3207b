package ports

/*
TokenCodec defines the contract for mapping string tokens to dense integer
event identifiers and back. This is a driven port, representing a domain
capability: it lets textual event streams be integerized before counting.
*/
type TokenCodec interface {
	// Encode returns the identifier for token, assigning a new one if the
	// token has not been seen before.
	Encode(token string) int32

	// Decode returns the token for an identifier previously assigned by
	// Encode, and false if the identifier is unknown.
	Decode(id int32) (string, bool)

	// Size returns the number of distinct tokens encoded so far.
	Size() int
}
