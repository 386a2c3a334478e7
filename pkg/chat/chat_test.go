package chat

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReply(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "Tell me about NEWTON", want: "Newton's Laws"},
		{in: "ionic bond?", want: "Chemical bonding"},
		{in: "what is a cell", want: "Cell division"},
		{in: "trigonometry help", want: "Key trig identities"},
		{in: "hi there", want: "Hello! I'm here"},
		{in: "physics and chemistry", want: "Newton's Laws"},
		{in: "economics", want: Fallback},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := Bot{}.Reply(tt.in)
			require.True(t, strings.HasPrefix(got, tt.want), got)
		})
	}
}

func TestConversation(t *testing.T) {
	c := NewConversation()
	require.Len(t, c.Messages(), 1)
	require.Equal(t, Greeting, c.Messages()[0].Text)

	_, ok := c.Send("   ")
	require.False(t, ok)
	require.Len(t, c.Messages(), 1)

	pending, ok := c.Send("  cells  ")
	require.True(t, ok)
	require.Len(t, c.Messages(), 2)
	require.Equal(t, "cells", c.Messages()[1].Text)
	require.Equal(t, FromUser, c.Messages()[1].Sender)

	got := c.Deliver(pending)
	require.Equal(t, 3, got.ID)
	require.Equal(t, FromBot, got.Sender)
	require.Equal(t, []int{1, 2, 3}, []int{c.Messages()[0].ID, c.Messages()[1].ID, c.Messages()[2].ID})
}
