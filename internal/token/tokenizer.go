package token

// Tokenizer interface defines the method for tokenizing input strings.
// On failure no partial token slice is returned.
type Tokenizer interface {
	Tokenize(input string) ([]Token, error)
}
