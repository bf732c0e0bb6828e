// Package docs embeds the bidsort documentation topics.
package docs

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"slices"
	"strings"
)

//go:embed *.md
var docs embed.FS

// index is the topic listing all the others.
const index = "readme"

// GetTopic returns the content of a documentation topic.
// The empty topic is the index, "*" is every topic concatenated.
func GetTopic(topic string) (string, error) {
	switch topic {
	case "":
		topic = index
	case "*":
		topics, err := GetAllTopics()
		if err != nil {
			return "", err
		}
		return GetTopics(topics...)
	}

	content, err := docs.ReadFile(topic + ".md")
	if err != nil {
		return "", fmt.Errorf("topic %q not found: %w", topic, err)
	}
	return string(content), nil
}

// GetTopics returns the content of multiple documentation topics concatenated together.
func GetTopics(topics ...string) (string, error) {
	var b strings.Builder
	for _, topic := range topics {
		content, err := GetTopic(topic)
		if err != nil {
			return "", err
		}
		b.WriteString(content)
		b.WriteString("\n")
	}
	return b.String(), nil
}

// GetAllTopics returns the sorted list of all available documentation topics,
// the index excluded.
func GetAllTopics() ([]string, error) {
	entries, err := fs.Glob(docs, "*.md")
	if err != nil {
		return nil, err
	}
	var topics []string
	for _, e := range entries {
		base := strings.TrimSuffix(path.Base(e), ".md")
		if base == index {
			continue
		}
		topics = append(topics, base)
	}
	slices.Sort(topics)
	return topics, nil
}
