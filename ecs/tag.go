package ecs

import (
	"math/bits"
	"strings"
)

// Tag is a label from a fixed vocabulary.
type Tag uint8

const (
	TagPlayer Tag = iota
	TagEnemy
	TagMarker
	tagCount
)

var tagNames = [tagCount]string{
	TagPlayer: "player",
	TagEnemy:  "enemy",
	TagMarker: "marker",
}

func (t Tag) String() string {
	if t < tagCount {
		return tagNames[t]
	}
	return "unknown"
}

// ParseTag resolves a tag from its label.
func ParseTag(name string) (Tag, bool) {
	for i, n := range tagNames {
		if n == name {
			return Tag(i), true
		}
	}
	return 0, false
}

// TagSet holds each tag at most once.
type TagSet uint64

func (s TagSet) Has(t Tag) bool {
	return s&(1<<t) != 0
}

// With returns the set including t.
func (s TagSet) With(t Tag) TagSet {
	return s | 1<<t
}

func (s TagSet) Len() int {
	return bits.OnesCount64(uint64(s))
}

// Tags lists the members in vocabulary order.
func (s TagSet) Tags() []Tag {
	tags := make([]Tag, 0, s.Len())
	for t := Tag(0); t < tagCount; t++ {
		if s.Has(t) {
			tags = append(tags, t)
		}
	}
	return tags
}

func (s TagSet) String() string {
	names := make([]string, 0, s.Len())
	for _, t := range s.Tags() {
		names = append(names, t.String())
	}
	return strings.Join(names, ",")
}
