package schema

import (
	// Packages
	types "github.com/mutablelogic/go-server/pkg/types"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

// Conversation is the ordered sequence of messages exchanged with the model
type Conversation []*Message

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Append adds a message to the conversation
func (s *Conversation) Append(message Message) {
	*s = append(*s, &message)
}

// AppendWithOutput adds a message to the conversation, re-calculating token
// usage so that the last message carries any input tokens not yet counted
func (s *Conversation) AppendWithOutput(message Message, input, output uint) {
	tokens := uint(0)
	for _, msg := range *s {
		tokens += msg.Tokens
	}
	if len(*s) > 0 && input > tokens {
		(*s)[len(*s)-1].Tokens += input - tokens
	}

	// Set the output tokens
	message.Tokens = output

	// Append the message
	*s = append(*s, &message)
}

// Truncate drops all messages after the first n
func (s *Conversation) Truncate(n int) {
	if n < 0 {
		n = 0
	}
	if n < len(*s) {
		clear((*s)[n:])
		*s = (*s)[:n]
	}
}

// Return the total number of tokens in the conversation
func (s Conversation) Tokens() uint {
	total := uint(0)
	for _, msg := range s {
		total += msg.Tokens
	}
	return total
}

// Last returns the last message, or nil if the conversation is empty
func (s Conversation) Last() *Message {
	if len(s) == 0 {
		return nil
	}
	return s[len(s)-1]
}

////////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (s Conversation) String() string {
	return types.Stringify(s)
}
