package scoring

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"
)

//go:embed data/subjectivity_keywords.json
var keywordsJSON []byte

var (
	keywordsOnce sync.Once
	tagKeywords  map[string][]string
)

// keywordsForTag returns the lowercase evidence keywords associated with a
// catalog tag. Unknown tags map to nothing.
func keywordsForTag(tag string) []string {
	keywordsOnce.Do(func() {
		if err := json.Unmarshal(keywordsJSON, &tagKeywords); err != nil {
			panic(fmt.Sprintf("scoring: embedded keyword dictionary: %v", err))
		}
	})
	return tagKeywords[tag]
}

// keywordsForTags unions the keywords of several tags, preserving tag
// order and dropping duplicates so each keyword is counted at most once.
func keywordsForTags(tags []string) []string {
	var out []string
	seen := make(map[string]bool)
	for _, tag := range tags {
		for _, kw := range keywordsForTag(tag) {
			if seen[kw] {
				continue
			}
			seen[kw] = true
			out = append(out, kw)
		}
	}
	return out
}
