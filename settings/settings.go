// Package settings owns the bot's mutable runtime configuration and the
// per-adapter embed policies, persisted as one JSON document per adapter
// under a settings directory. Unknown fields in persisted documents are
// ignored so older and newer layouts keep loading.
package settings

import (
	"embedbot/models"
)

// Runtime holds the settings mutable through the /settings command.
type Runtime struct {
	DoImplicitAutoEmbed bool `json:"do_implicit_auto_embed"`
}

func defaultRuntime() Runtime {
	return Runtime{DoImplicitAutoEmbed: true}
}

// FuzzyClassification matches a classification triple; nil fields are
// wildcards.
type FuzzyClassification struct {
	Content *models.ContentKind `json:"content_type"`
	Origin  *models.OriginKind  `json:"origin_type"`
	Nsfw    *models.NsfwKind    `json:"nsfw_type"`
}

func fuzzyMatch[T comparable](want *T, got T) bool {
	return want == nil || *want == got
}

// Matches reports whether the triple falls inside this fuzzy pattern.
func (f FuzzyClassification) Matches(c models.Classification) bool {
	return fuzzyMatch(f.Content, c.Content) &&
		fuzzyMatch(f.Origin, c.Origin) &&
		fuzzyMatch(f.Nsfw, c.Nsfw)
}

// TriplePolicy is an embed filter expressed as a set of fuzzy
// classification triples; a post is eligible if any pattern matches.
type TriplePolicy struct {
	EmbedSet []FuzzyClassification `json:"embed_set"`
}

func (p TriplePolicy) Allows(c models.Classification) bool {
	for _, f := range p.EmbedSet {
		if f.Matches(c) {
			return true
		}
	}
	return false
}

// ContentSetPolicy is an embed filter expressed as an exact set of content
// kinds, for adapters without origin or nsfw concepts.
type ContentSetPolicy struct {
	EmbedSet []models.ContentKind `json:"embed_set"`
}

func (p ContentSetPolicy) Allows(kind models.ContentKind) bool {
	for _, k := range p.EmbedSet {
		if k == kind {
			return true
		}
	}
	return false
}

func defaultTriplePolicy() TriplePolicy {
	// everything safe-for-work, any content, any origin
	sfw := models.Sfw
	return TriplePolicy{EmbedSet: []FuzzyClassification{{Nsfw: &sfw}}}
}

func defaultContentSetPolicy(kinds ...models.ContentKind) ContentSetPolicy {
	return ContentSetPolicy{EmbedSet: kinds}
}
