package twitter

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"activity_stream/internal/domain"
	"activity_stream/internal/provider"
)

// Normalizer maps tweets onto the canonical item schema.
type Normalizer struct {
	loc *time.Location
}

func NewNormalizer(loc *time.Location) *Normalizer {
	return &Normalizer{loc: loc}
}

func (n *Normalizer) Normalize(raw provider.RawPost, conn domain.Connection) (domain.ActivityItem, error) {
	var tweet Tweet
	if err := json.Unmarshal(raw.Payload, &tweet); err != nil {
		return domain.ActivityItem{}, &domain.NormalizationError{
			Provider: domain.ProviderTwitter,
			SourceID: raw.SourceID,
			Err:      err,
		}
	}
	if tweet.IDStr == "" {
		return domain.ActivityItem{}, &domain.NormalizationError{
			Provider: domain.ProviderTwitter,
			SourceID: raw.SourceID,
			Err:      fmt.Errorf("missing id_str"),
		}
	}

	date, err := provider.ParseTime(tweet.CreatedAt, n.loc)
	if err != nil {
		return domain.ActivityItem{}, &domain.NormalizationError{
			Provider: domain.ProviderTwitter,
			SourceID: tweet.IDStr,
			Err:      err,
		}
	}

	item := domain.ActivityItem{
		ConnectionID: conn.ID,
		Provider:     domain.ProviderTwitter,
		Type:         domain.ItemTypeTweet,
		Date:         date,
		Title:        tweet.IDStr,
		Body:         expandURLs(tweet),
		Permalink:    fmt.Sprintf("https://twitter.com/%s/status/%s", conn.Username, tweet.IDStr),
		SourceID:     tweet.IDStr,
		RawData:      raw.Payload,
		IsPublished:  true,
		IsActive:     true,
	}

	if photos := photoEntities(tweet); len(photos) == 1 {
		item.Type = domain.ItemTypePhoto
		picture := photos[0].MediaURL
		pictureID := photos[0].IDStr
		item.Picture = &picture
		item.PictureID = &pictureID
		// The timeline text embeds the photo's own shortened link; it adds
		// nothing once the image is attached.
		item.Body = strings.ReplaceAll(item.Body, photos[0].URL, "")
		item.Body = strings.TrimSpace(item.Body)
	}

	return item, nil
}

// expandURLs replaces every shortened URL in the tweet text with its
// expanded form.
func expandURLs(tweet Tweet) string {
	text := tweet.Text
	for _, entity := range tweet.Entities.URLs {
		if entity.URL != "" && entity.ExpandedURL != "" {
			text = strings.ReplaceAll(text, entity.URL, entity.ExpandedURL)
		}
	}
	return text
}

func photoEntities(tweet Tweet) []MediaEntity {
	var photos []MediaEntity
	for _, m := range tweet.Entities.Media {
		if m.Type == "photo" {
			photos = append(photos, m)
		}
	}
	return photos
}
