package models

import "net/url"

// ContentKind tags the specialized content shape of a post. The string
// values are part of the persisted policy schema.
type ContentKind string

const (
	ContentText         ContentKind = "text"
	ContentImage        ContentKind = "image"
	ContentGallery      ContentKind = "gallery"
	ContentVideo        ContentKind = "video"
	ContentVideoPreview ContentKind = "video-preview"
	ContentAttachment   ContentKind = "attachment"
)

// Content is the specialized part of a post, one implementation per shape.
type Content interface {
	Kind() ContentKind
}

// TextContent is a post with no media.
type TextContent struct{}

func (TextContent) Kind() ContentKind { return ContentText }

// ImageContent is a post with a single remote image.
type ImageContent struct {
	URL *url.URL
}

func (ImageContent) Kind() ContentKind { return ContentImage }

// GalleryContent is a post with two or more remote images, in source order.
// A single-image gallery is collapsed to ImageContent by the adapters.
type GalleryContent struct {
	URLs []*url.URL
}

func (GalleryContent) Kind() ContentKind { return ContentGallery }

// VideoContent is a post with a directly embeddable video URL.
type VideoContent struct {
	URL *url.URL
}

func (VideoContent) Kind() ContentKind { return ContentVideo }

// VideoPreviewContent is a post whose video cannot be embedded directly;
// only a thumbnail plus link-out is offered.
type VideoPreviewContent struct {
	ThumbnailURL *url.URL
}

func (VideoPreviewContent) Kind() ContentKind { return ContentVideoPreview }

// AttachmentContent is a locally produced file with no remote URL, e.g. a
// rasterized SVG.
type AttachmentContent struct {
	Path string
	Name string
}

func (AttachmentContent) Kind() ContentKind { return ContentAttachment }
