package component

// Message is a chat message with interactive components attached. Only the
// fields this layer reads are modeled; transport stays with the caller.
type Message struct {
	ID         int64
	ChannelID  int64
	Content    string
	Components []*ActionRow
}
