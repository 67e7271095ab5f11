package ninegag

import (
	"net/url"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"

	"embedbot/embed"
	"embedbot/models"
)

func pageWithConfig(title, blob string) *goquery.Document {
	html := `<html><head><title>` + title + `</title></head><body>` +
		`<script>window._config = JSON.parse("` + blob + `");</script>` +
		`</body></html>`
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		panic(err)
	}
	return doc
}

func postURL(t *testing.T, raw string) *url.URL {
	t.Helper()
	u, err := url.Parse(raw)
	assert.Nil(t, err)
	return u
}

const photoBlob = `{\"data\":{\"post\":{\"type\":\"Photo\",\"images\":{\"image700\":{\"url\":\"https://img-9gag-fun.9cache.com/photo/a1b2c3_700b.jpg\"}}}}}`

const animatedBlob = `{\"data\":{\"post\":{\"type\":\"Animated\",\"images\":{\"image460svwm\":{\"url\":\"https://img-9gag-fun.9cache.com/photo/a1b2c3_460svwm.webm\"},\"image460sv\":{\"url\":\"https://img-9gag-fun.9cache.com/photo/a1b2c3_460sv.mp4\"}}}}}`

const animatedNoWmBlob = `{\"data\":{\"post\":{\"type\":\"Animated\",\"images\":{\"image460sv\":{\"url\":\"https://img-9gag-fun.9cache.com/photo/a1b2c3_460sv.mp4\"}}}}}`

func TestAnalyzePhotoPost(t *testing.T) {
	src := postURL(t, "https://9gag.com/gag/a1b2c3")
	doc := pageWithConfig("Funny cat - 9GAG", photoBlob)

	post, err := analyzePost(src, doc)
	assert.Nil(t, err)
	assert.Equal(t, "Funny cat", post.Title)
	assert.Equal(t, models.JustOrigin("9GAG"), post.Origin)

	image, ok := post.Content().(models.ImageContent)
	assert.True(t, ok)
	assert.Equal(t, "https://img-9gag-fun.9cache.com/photo/a1b2c3_700b.jpg", image.URL.String())
}

func TestAnalyzeAnimatedPost(t *testing.T) {
	src := postURL(t, "https://9gag.com/gag/a1b2c3")

	post, err := analyzePost(src, pageWithConfig("Cat runs - 9GAG", animatedBlob))
	assert.Nil(t, err)
	video, ok := post.Content().(models.VideoContent)
	assert.True(t, ok)
	assert.Equal(t, "https://img-9gag-fun.9cache.com/photo/a1b2c3_460svwm.webm", video.URL.String())

	// falls back to the rendition with sound when no watermarked one exists
	post, err = analyzePost(src, pageWithConfig("Cat runs - 9GAG", animatedNoWmBlob))
	assert.Nil(t, err)
	video, ok = post.Content().(models.VideoContent)
	assert.True(t, ok)
	assert.Equal(t, "https://img-9gag-fun.9cache.com/photo/a1b2c3_460sv.mp4", video.URL.String())
}

func TestConfigBlobByDelimiters(t *testing.T) {
	// prefix code and trailing statements around the JSON.parse call must
	// not confuse the extraction
	html := `<html><head><title>x - 9GAG</title></head><body>` +
		`<script>var unrelated = 1;</script>` +
		`<script>window.something = 2; window._config = JSON.parse("{\"data\":{\"post\":{\"type\":\"Photo\",\"images\":{\"image700\":{\"url\":\"https://img.test/x.jpg\"}}}}}"); window.other = 3;</script>` +
		`</body></html>`
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	assert.Nil(t, err)

	post, err := analyzePost(postURL(t, "https://9gag.com/gag/x"), doc)
	assert.Nil(t, err)
	assert.Equal(t, models.ContentImage, post.Content().Kind())
}

func TestAnalyzeMissingConfig(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(
		`<html><head><title>x - 9GAG</title></head><body><script>var a = 1;</script></body></html>`))
	assert.Nil(t, err)

	_, err = analyzePost(postURL(t, "https://9gag.com/gag/x"), doc)
	assert.NotNil(t, err)
}

func TestIsSuitable(t *testing.T) {
	s := New(nil, nil)

	assert.True(t, s.IsSuitable(postURL(t, "https://9gag.com/gag/a1b2c3")))
	assert.False(t, s.IsSuitable(postURL(t, "https://www.reddit.com/r/pics")))
	assert.False(t, s.IsSuitable(postURL(t, "https://img-9gag-fun.9cache.com/photo/x.jpg")))
}

func TestFmtTitleWithinLimit(t *testing.T) {
	for _, title := range []string{
		strings.Repeat("a", 400),
		strings.Repeat("a", 243),
		strings.Repeat("a", 244),
		strings.Repeat("*", 400),
		"short",
	} {
		post := &Post{PostCommon: models.PostCommon{Title: title, Origin: models.JustOrigin("9GAG")}}
		assert.LessOrEqual(t, len(fmtTitle(post)), 256, "title len %d", len(title))
	}
}

func TestCreateResponseImageCard(t *testing.T) {
	post := &Post{
		PostCommon: models.PostCommon{
			SourceURL: postURL(t, "https://9gag.com/gag/a1b2c3"),
			Title:     "Funny cat",
			Origin:    models.JustOrigin("9GAG"),
		},
		content: models.ImageContent{URL: postURL(t, "https://img.test/x.jpg")},
	}

	r := post.CreateResponse("alice", &models.EmbedOptions{}, embed.NewResponse())
	assert.True(t, r.HasCard())
	assert.Equal(t, "'Funny cat' - **9GAG**", r.Card().Title)
	assert.Equal(t, "https://img.test/x.jpg", r.Card().Image.URL)
}

func TestCreateResponseVideoPlainText(t *testing.T) {
	post := &Post{
		PostCommon: models.PostCommon{
			SourceURL: postURL(t, "https://9gag.com/gag/a1b2c3"),
			Title:     "Cat runs",
			Origin:    models.JustOrigin("9GAG"),
		},
		content: models.VideoContent{URL: postURL(t, "https://img.test/x.webm")},
	}

	r := post.CreateResponse("alice", &models.EmbedOptions{}, embed.NewResponse())
	assert.False(t, r.HasCard())
	assert.Contains(t, r.PlainText(), ">>> **alice**")
	assert.Contains(t, r.PlainText(), "EmbedURL: https://img.test/x.webm")
	assert.Contains(t, r.PlainText(), "'Cat runs' - **9GAG**")
}
