package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyCommon(t *testing.T) {
	c := ClassifyCommon(&PostCommon{Origin: JustOrigin("pics")}, ImageContent{})
	assert.Equal(t, Classification{Content: ContentImage, Origin: OriginNonCrossposted, Nsfw: Sfw}, c)

	c = ClassifyCommon(&PostCommon{NSFW: true, Origin: Crossposted("aww", "bestof")}, VideoContent{})
	assert.Equal(t, Classification{Content: ContentVideo, Origin: OriginCrossposted, Nsfw: Nsfw}, c)
}

func TestOrigin(t *testing.T) {
	assert.False(t, JustOrigin("pics").IsCrosspost())

	x := Crossposted("aww", "bestof")
	assert.True(t, x.IsCrosspost())
	assert.Equal(t, "bestof", x.Name)
	assert.Equal(t, "aww", x.CrosspostedFrom)
}
