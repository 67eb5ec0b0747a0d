package inspect

import (
	"strings"
)

const (
	// defaultBlockSize bounds ranked block length in bytes; roughly a
	// long menu paragraph
	defaultBlockSize = 600
)

// splitBlocks cuts rendered Markdown into rankable blocks. Paragraphs are
// the natural unit; a paragraph over maxSize falls back to sentence
// grouping and finally to word packing so every block fits.
func splitBlocks(text string, maxSize int) []string {
	if maxSize <= 0 {
		maxSize = defaultBlockSize
	}

	var blocks []string
	for _, para := range strings.Split(text, "\n\n") {
		para = strings.TrimSpace(para)
		if para == "" {
			continue
		}
		if len(para) <= maxSize {
			blocks = append(blocks, para)
			continue
		}
		blocks = append(blocks, splitOversized(para, maxSize)...)
	}

	return blocks
}

// splitOversized breaks a paragraph on sentence boundaries, packing
// sentences together while they fit. A single sentence longer than
// maxSize is packed word by word.
func splitOversized(para string, maxSize int) []string {
	var blocks []string
	var current strings.Builder

	flush := func() {
		if current.Len() > 0 {
			blocks = append(blocks, current.String())
			current.Reset()
		}
	}

	for _, sentence := range splitSentences(para) {
		if len(sentence) > maxSize {
			flush()
			blocks = append(blocks, packWords(sentence, maxSize)...)
			continue
		}
		if current.Len() > 0 && current.Len()+1+len(sentence) > maxSize {
			flush()
		}
		if current.Len() > 0 {
			current.WriteString(" ")
		}
		current.WriteString(sentence)
	}
	flush()

	return blocks
}

// splitSentences splits on sentence-ending punctuation followed by a space,
// keeping the punctuation with its sentence.
func splitSentences(text string) []string {
	var sentences []string
	start := 0
	for i := 0; i < len(text)-1; i++ {
		if (text[i] == '.' || text[i] == '?' || text[i] == '!') && text[i+1] == ' ' {
			sentence := strings.TrimSpace(text[start : i+1])
			if sentence != "" {
				sentences = append(sentences, sentence)
			}
			start = i + 2
		}
	}
	if start < len(text) {
		if tail := strings.TrimSpace(text[start:]); tail != "" {
			sentences = append(sentences, tail)
		}
	}
	return sentences
}

// packWords splits one long sentence on whitespace, packing words up to
// maxSize per block. A single word over maxSize is kept whole.
func packWords(sentence string, maxSize int) []string {
	var blocks []string
	var current strings.Builder

	for _, word := range strings.Fields(sentence) {
		if current.Len() > 0 && current.Len()+1+len(word) > maxSize {
			blocks = append(blocks, current.String())
			current.Reset()
		}
		if current.Len() > 0 {
			current.WriteString(" ")
		}
		current.WriteString(word)
	}
	if current.Len() > 0 {
		blocks = append(blocks, current.String())
	}

	return blocks
}
