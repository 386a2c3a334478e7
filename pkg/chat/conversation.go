package chat

import (
	"strings"
	"time"
)

type Sender string

const (
	FromBot  Sender = "bot"
	FromUser Sender = "user"
)

type Message struct {
	ID     int
	Text   string
	Sender Sender
	At     time.Time
}

// Conversation is an ordered transcript that starts with the greeting.
type Conversation struct {
	bot      Bot
	messages []Message
	now      func() time.Time
}

func NewConversation() *Conversation {
	c := &Conversation{now: time.Now}
	c.append(Greeting, FromBot)
	return c
}

func (c *Conversation) Messages() []Message {
	return c.messages
}

// Send appends the user's message and returns the bot's answer, which the
// caller delivers with Deliver. Blank input is ignored.
func (c *Conversation) Send(text string) (Message, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Message{}, false
	}
	c.append(text, FromUser)
	return Message{Text: c.bot.Reply(text), Sender: FromBot}, true
}

// Deliver appends a pending bot message.
func (c *Conversation) Deliver(m Message) Message {
	return c.append(m.Text, m.Sender)
}

func (c *Conversation) append(text string, from Sender) Message {
	m := Message{ID: len(c.messages) + 1, Text: text, Sender: from, At: c.now()}
	c.messages = append(c.messages, m)
	return m
}
