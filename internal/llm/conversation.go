package llm

// SplitConversation separates a conversation into the prior turns and the
// newest message. Session-style providers replay history and then send only
// the newest message as the active turn.
func SplitConversation(messages []Message) (history []Message, last Message, ok bool) {
	if len(messages) == 0 {
		return nil, Message{}, false
	}
	n := len(messages) - 1
	return messages[:n], messages[n], true
}
