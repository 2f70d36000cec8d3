package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConversationAppendDoesNotAlias(t *testing.T) {
	t.Parallel()

	base := Conversation{}.Append("first question")
	a := base.Append("answer a")
	b := base.Append("answer b")

	require.Equal(t, 1, base.Len())
	assert.Equal(t, "answer a", a.Turns[1])
	assert.Equal(t, "answer b", b.Turns[1])
}

func TestConversationTranscript(t *testing.T) {
	t.Parallel()

	c := Conversation{}.Append("שלום", "<he>שלום</he> <ar>مرحبا</ar>")
	assert.Equal(t, "שלום\n<he>שלום</he> <ar>مرحبا</ar>", c.Transcript())
	assert.Empty(t, Conversation{}.Transcript())
}
