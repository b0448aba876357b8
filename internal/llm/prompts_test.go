package llm

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChunkText(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		size     int
		wantLens []int
	}{
		{name: "empty", text: "", size: 3000, wantLens: nil},
		{name: "shorter than window", text: strings.Repeat("a", 10), size: 3000, wantLens: []int{10}},
		{name: "exact multiple", text: strings.Repeat("a", 6000), size: 3000, wantLens: []int{3000, 3000}},
		{name: "remainder", text: strings.Repeat("a", 7000), size: 3000, wantLens: []int{3000, 3000, 1000}},
		{name: "non positive size", text: "abc", size: 0, wantLens: []int{3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chunks := ChunkText(tt.text, tt.size)
			var lens []int
			for _, c := range chunks {
				lens = append(lens, len([]rune(c)))
			}
			assert.Equal(t, tt.wantLens, lens)
			assert.Equal(t, tt.text, strings.Join(chunks, ""))
		})
	}
}

func TestChunkText_CountsCharactersNotBytes(t *testing.T) {
	text := strings.Repeat("é", 5)
	chunks := ChunkText(text, 2)
	require.Len(t, chunks, 3)
	assert.Equal(t, "éé", chunks[0])
	assert.Equal(t, "é", chunks[2])
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", Truncate("abc", 10))
	assert.Equal(t, "ab", Truncate("abc", 2))
	assert.Equal(t, "ü", Truncate("üü", 1))
	assert.Equal(t, "abc", Truncate("abc", 0))
}

func TestQAPrompt(t *testing.T) {
	msgs := QAPrompt("hello world", "What is this?")
	require.Len(t, msgs, 3)

	assert.Equal(t, Message{Role: RoleSystem, Content: "You are a helpful assistant."}, msgs[0])
	assert.Equal(t, Message{Role: RoleSystem, Content: "Document Content: hello world"}, msgs[1])
	assert.Equal(t, Message{Role: RoleUser, Content: "What is this?"}, msgs[2])

	doc, ok := DocumentFromPrompt(msgs)
	assert.True(t, ok)
	assert.Equal(t, "hello world", doc)
}

func TestTranslationPrompt(t *testing.T) {
	msgs := TranslationPrompt("French", "bonjour")
	require.Len(t, msgs, 2)
	assert.Equal(t, "You are a translation assistant. Translate the following text into French.", msgs[0].Content)
	assert.Equal(t, RoleSystem, msgs[0].Role)
	assert.Equal(t, Message{Role: RoleUser, Content: "bonjour"}, msgs[1])

	_, ok := DocumentFromPrompt(msgs)
	assert.False(t, ok)
}
