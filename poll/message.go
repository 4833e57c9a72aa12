package poll

import "github.com/opd-ai/session-core/envelope"

// Message is a single decrypted, parsed message delivered to a poller's
// on-message callback.
type Message struct {
	Namespace       int
	Hash            string
	Envelope        envelope.Envelope
	Content         envelope.Content
	AuthorSessionID string
}
