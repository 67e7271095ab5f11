package models

// OriginKind projects an Origin for policy evaluation.
type OriginKind string

const (
	OriginNonCrossposted OriginKind = "non-crossposted"
	OriginCrossposted    OriginKind = "crossposted"
)

// NsfwKind projects the content-warning flag for policy evaluation.
type NsfwKind string

const (
	Sfw  NsfwKind = "sfw"
	Nsfw NsfwKind = "nsfw"
)

// Classification is the derived triple embed policy is evaluated against.
// It is computed from a Post at filter time and never stored.
type Classification struct {
	Content ContentKind
	Origin  OriginKind
	Nsfw    NsfwKind
}

// ClassifyCommon derives the origin and nsfw components shared by every
// adapter; the content component comes from the post's Content.
func ClassifyCommon(c *PostCommon, content Content) Classification {
	origin := OriginNonCrossposted
	if c.Origin.IsCrosspost() {
		origin = OriginCrossposted
	}

	nsfw := Sfw
	if c.NSFW {
		nsfw = Nsfw
	}

	return Classification{Content: content.Kind(), Origin: origin, Nsfw: nsfw}
}
