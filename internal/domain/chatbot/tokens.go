package chatbot

import (
	"unicode/utf8"

	"github.com/pkoukk/tiktoken-go"
)

// BPECounter counts tokens with the model's byte pair encoding. When the
// encoding cannot be loaded (offline startup, unknown model) it estimates at
// roughly four characters per token so budget enforcement keeps working.
type BPECounter struct {
	encoding *tiktoken.Tiktoken
}

// NewBPECounter loads the encoding for the given model, falling back to
// cl100k_base and then to estimation.
func NewBPECounter(model string) *BPECounter {
	encoding, err := tiktoken.EncodingForModel(model)
	if err != nil {
		encoding, _ = tiktoken.GetEncoding("cl100k_base")
	}
	return &BPECounter{encoding: encoding}
}

func (c *BPECounter) Count(text string) int {
	if c.encoding == nil {
		return (utf8.RuneCountInString(text) + 3) / 4
	}
	return len(c.encoding.Encode(text, nil, nil))
}
