package twitter

import (
	"context"
	"time"

	"github.com/chromedp/cdproto/emulation"
	"github.com/chromedp/chromedp"
	"github.com/spf13/viper"

	"embedbot/scraper"
)

// renderedHTML drives a headless browser to the tweet URL and returns the
// DOM after client-side rendering. Tweets are empty shells until the page's
// scripts have run, so a plain GET is useless here.
func renderedHTML(ctx context.Context, url string) (string, error) {
	headless := true
	if viper.IsSet("twitter.headless") {
		headless = viper.GetBool("twitter.headless")
	}

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", headless),
		chromedp.Flag("disable-gpu", true),
	)

	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, opts...)
	defer allocCancel()

	browserCtx, browserCancel := chromedp.NewContext(allocCtx)
	defer browserCancel()

	timeout := viper.GetInt("scrape.timeoutSeconds")
	if timeout <= 0 {
		timeout = 30
	}
	browserCtx, timeoutCancel := context.WithTimeout(browserCtx, time.Duration(timeout)*time.Second)
	defer timeoutCancel()

	ua := viper.GetString("scrape.userAgent")
	if ua == "" {
		ua = scraper.UserAgent
	}

	var content string
	err := chromedp.Run(browserCtx,
		emulation.SetUserAgentOverride(ua),
		chromedp.Navigate(url),
		chromedp.WaitVisible("article", chromedp.ByQuery),
		chromedp.OuterHTML("html", &content, chromedp.ByQuery),
	)
	if err != nil {
		return "", &scraper.FetchError{URL: url, Err: err}
	}
	return content, nil
}
