package web

import (
	"context"
	"encoding/xml"
	"fmt"
	"net/url"
	"strings"

	"github.com/bnema/lora-bbs/internal/ports"
)

const googleNewsURL = "https://news.google.com"

// GoogleNews reads the regional RSS feed.
type GoogleNews struct {
	Client Client
}

var _ ports.NewsProvider = GoogleNews{}

type rssFeed struct {
	Items []rssItem `xml:"channel>item"`
}

type rssItem struct {
	Title string `xml:"title"`
}

func (g GoogleNews) Headlines(ctx context.Context, region string, lang string, limit int) ([]string, error) {
	values := url.Values{}
	values.Set("hl", lang)
	values.Set("gl", region)
	values.Set("ceid", region+":"+lang)

	body, err := g.Client.get(ctx, googleNewsURL, "/rss", values, nil)
	if err != nil {
		return nil, fmt.Errorf("google news: %w", err)
	}

	var feed rssFeed
	if err := xml.Unmarshal(body, &feed); err != nil {
		return nil, fmt.Errorf("parse rss feed: %w", err)
	}

	headlines := make([]string, 0, len(feed.Items))
	for _, item := range feed.Items {
		if limit > 0 && len(headlines) == limit {
			break
		}
		title := strings.TrimSpace(item.Title)
		if title == "" {
			title = "Sin título"
		}
		headlines = append(headlines, title)
	}

	return headlines, nil
}
