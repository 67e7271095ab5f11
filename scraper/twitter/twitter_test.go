package twitter

import (
	"net/url"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"

	"embedbot/embed"
	"embedbot/models"
)

func page(html string) *goquery.Document {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		panic(err)
	}
	return doc
}

func tweetURL(t *testing.T, raw string) *url.URL {
	t.Helper()
	u, err := url.Parse(raw)
	assert.Nil(t, err)
	return u
}

func TestAnalyzeTextTweet(t *testing.T) {
	doc := page(`<html><body><article>
		<div data-testid="tweetText"><span>just setting up my twttr</span></div>
	</article></body></html>`)

	post, err := analyzePost(tweetURL(t, "https://twitter.com/jack/status/20"), doc)
	assert.Nil(t, err)
	assert.Equal(t, "jack", post.Author)
	assert.Equal(t, "just setting up my twttr", post.BodyText)
	assert.Equal(t, models.ContentText, post.Content().Kind())
}

func TestAnalyzeTweetTextSkipsEllipsisNodes(t *testing.T) {
	doc := page(`<html><body><article>
		<div data-testid="tweetText"><span>read more </span><a href="https://t.co/x">…<span>example.com/article</span></a></div>
	</article></body></html>`)

	post, err := analyzePost(tweetURL(t, "https://twitter.com/someone/status/1"), doc)
	assert.Nil(t, err)
	assert.Equal(t, "read more example.com/article", post.BodyText)
}

func TestAnalyzeImageTweet(t *testing.T) {
	doc := page(`<html><body><article>
		<div data-testid="tweetText"><span>look at this</span></div>
		<img alt="" src="https://pbs.twimg.com/profile_images/avatar.jpg"/>
		<img alt="Image" src="https://pbs.twimg.com/media/Eabc123.jpg?format=jpg"/>
	</article></body></html>`)

	post, err := analyzePost(tweetURL(t, "https://twitter.com/someone/status/1"), doc)
	assert.Nil(t, err)

	image, ok := post.Content().(models.ImageContent)
	assert.True(t, ok)
	assert.Equal(t, "https://pbs.twimg.com/media/Eabc123.jpg?format=jpg", image.URL.String())
}

func TestAnalyzeGalleryTweet(t *testing.T) {
	doc := page(`<html><body><article>
		<img alt="Image" src="https://pbs.twimg.com/media/E1.jpg"/>
		<img alt="Image" src="https://pbs.twimg.com/media/E2.jpg"/>
	</article></body></html>`)

	post, err := analyzePost(tweetURL(t, "https://twitter.com/someone/status/1"), doc)
	assert.Nil(t, err)

	gallery, ok := post.Content().(models.GalleryContent)
	assert.True(t, ok)
	assert.Len(t, gallery.URLs, 2)
}

func TestAnalyzeVideoTweet(t *testing.T) {
	doc := page(`<html><body><article>
		<video type="video/mp4" src="https://video.twimg.com/tweet_video/E1.mp4" poster="https://pbs.twimg.com/tweet_video_thumb/E1.jpg"></video>
	</article></body></html>`)

	post, err := analyzePost(tweetURL(t, "https://twitter.com/someone/status/1"), doc)
	assert.Nil(t, err)

	video, ok := post.Content().(models.VideoContent)
	assert.True(t, ok)
	assert.Equal(t, "https://video.twimg.com/tweet_video/E1.mp4", video.URL.String())
}

func TestAnalyzeBlobVideoFallsBackToPreview(t *testing.T) {
	doc := page(`<html><body><article>
		<video poster="https://pbs.twimg.com/amplify_video_thumb/E1.jpg" src="blob:https://twitter.com/uuid"></video>
	</article></body></html>`)

	post, err := analyzePost(tweetURL(t, "https://twitter.com/someone/status/1"), doc)
	assert.Nil(t, err)

	preview, ok := post.Content().(models.VideoPreviewContent)
	assert.True(t, ok)
	assert.Equal(t, "https://pbs.twimg.com/amplify_video_thumb/E1.jpg", preview.ThumbnailURL.String())
}

func TestAuthorFromURL(t *testing.T) {
	assert.Equal(t, "jack", authorFromURL(tweetURL(t, "https://twitter.com/jack/status/20")))
	assert.Equal(t, "", authorFromURL(tweetURL(t, "https://twitter.com/")))
}

func TestIsSuitable(t *testing.T) {
	s := New(nil)

	assert.True(t, s.IsSuitable(tweetURL(t, "https://twitter.com/jack/status/20")))
	assert.True(t, s.IsSuitable(tweetURL(t, "https://www.twitter.com/jack/status/20")))
	assert.True(t, s.IsSuitable(tweetURL(t, "https://x.com/jack/status/20")))
	assert.True(t, s.IsSuitable(tweetURL(t, "https://www.x.com/jack/status/20")))
	assert.False(t, s.IsSuitable(tweetURL(t, "https://pbs.twimg.com/media/E1.jpg")))
}

func TestCreateResponseVideoPreviewFooter(t *testing.T) {
	post := &Post{
		PostCommon: models.PostCommon{
			SourceURL: tweetURL(t, "https://twitter.com/someone/status/1"),
			BodyText:  "watch this",
			Origin:    models.JustOrigin("twitter.com"),
		},
		Author:  "someone",
		content: models.VideoPreviewContent{ThumbnailURL: tweetURL(t, "https://pbs.twimg.com/thumb.jpg")},
	}

	r := post.CreateResponse("alice", &models.EmbedOptions{}, embed.NewResponse())
	assert.Equal(t, "@someone - **twitter.com**", r.Card().Title)
	assert.Equal(t, "https://pbs.twimg.com/thumb.jpg", r.Card().Image.URL)
	assert.Equal(t, "This was originally a video. Click to watch on twitter.", r.Card().Footer.Text)
}

func TestCreateResponseGalleryPlainText(t *testing.T) {
	post := &Post{
		PostCommon: models.PostCommon{
			SourceURL: tweetURL(t, "https://twitter.com/someone/status/1"),
			BodyText:  "two pics",
			Origin:    models.JustOrigin("twitter.com"),
		},
		Author: "someone",
		content: models.GalleryContent{URLs: []*url.URL{
			tweetURL(t, "https://pbs.twimg.com/media/E1.jpg"),
			tweetURL(t, "https://pbs.twimg.com/media/E2.jpg"),
		}},
	}

	r := post.CreateResponse("alice", &models.EmbedOptions{}, embed.NewResponse())
	assert.False(t, r.HasCard())
	assert.Contains(t, r.PlainText(), "https://pbs.twimg.com/media/E1.jpg\nhttps://pbs.twimg.com/media/E2.jpg")
	assert.Contains(t, r.PlainText(), "@someone - **twitter.com**")
}
