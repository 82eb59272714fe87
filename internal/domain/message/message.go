// Package message models inbound messages received for a client. Messages
// are produced by external channel integrations; this service only reads
// them.
package message

import (
	"fmt"
	"time"
)

type Message struct {
	id         uint
	clientID   uint
	sender     string
	channel    string
	body       string
	replied    bool
	receivedAt time.Time
}

// ReconstructMessage reconstructs a message from persistence. There is no
// producer-side constructor: ingestion is owned by the external integration
// that writes the table.
func ReconstructMessage(messageID, clientID uint, sender, channel, body string,
	replied bool, receivedAt time.Time) (*Message, error) {

	if messageID == 0 {
		return nil, fmt.Errorf("message ID cannot be zero")
	}
	if clientID == 0 {
		return nil, fmt.Errorf("client ID is required")
	}

	return &Message{
		id:         messageID,
		clientID:   clientID,
		sender:     sender,
		channel:    channel,
		body:       body,
		replied:    replied,
		receivedAt: receivedAt,
	}, nil
}

func (m *Message) ID() uint              { return m.id }
func (m *Message) ClientID() uint        { return m.clientID }
func (m *Message) Sender() string        { return m.sender }
func (m *Message) Channel() string       { return m.channel }
func (m *Message) Body() string          { return m.body }
func (m *Message) Replied() bool         { return m.replied }
func (m *Message) ReceivedAt() time.Time { return m.receivedAt }
