package llm

import (
	"fmt"
	"strings"
)

const (
	// TranslationChunkSize is the fixed window, in characters, sent per translation call.
	TranslationChunkSize = 3000

	qaSystemPrompt          = "You are a helpful assistant."
	documentContentPrefix   = "Document Content: "
	translationSystemPrompt = "You are a translation assistant. Translate the following text into %s."
)

// QAPrompt builds the three-message prompt for a question about a whole document.
func QAPrompt(document, question string) []Message {
	return []Message{
		{Role: RoleSystem, Content: qaSystemPrompt},
		{Role: RoleSystem, Content: documentContentPrefix + document},
		{Role: RoleUser, Content: question},
	}
}

// DocumentFromPrompt returns the document text embedded in a QAPrompt.
func DocumentFromPrompt(messages []Message) (string, bool) {
	for _, m := range messages {
		if m.Role == RoleSystem && strings.HasPrefix(m.Content, documentContentPrefix) {
			return strings.TrimPrefix(m.Content, documentContentPrefix), true
		}
	}
	return "", false
}

// TranslationPrompt builds the prompt for one translation window.
func TranslationPrompt(language, chunk string) []Message {
	return []Message{
		{Role: RoleSystem, Content: fmt.Sprintf(translationSystemPrompt, language)},
		{Role: RoleUser, Content: chunk},
	}
}

// ChunkText splits text into consecutive windows of size characters with no overlap.
// The last window holds the remainder. A non-positive size yields the whole text as one window.
func ChunkText(text string, size int) []string {
	if text == "" {
		return nil
	}
	if size <= 0 {
		return []string{text}
	}
	runes := []rune(text)
	chunks := make([]string, 0, (len(runes)+size-1)/size)
	for start := 0; start < len(runes); start += size {
		end := start + size
		if end > len(runes) {
			end = len(runes)
		}
		chunks = append(chunks, string(runes[start:end]))
	}
	return chunks
}

// Truncate clips text to at most limit characters.
func Truncate(text string, limit int) string {
	if limit <= 0 {
		return text
	}
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit])
}
