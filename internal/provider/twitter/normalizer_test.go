package twitter

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"activity_stream/internal/domain"
	"activity_stream/internal/provider"
)

func tweetPayload(t *testing.T, tweet Tweet) provider.RawPost {
	t.Helper()
	payload, err := json.Marshal(tweet)
	require.NoError(t, err)
	return provider.RawPost{
		Provider: domain.ProviderTwitter,
		SourceID: tweet.IDStr,
		Payload:  payload,
	}
}

func TestNormalizer_PlainTweet(t *testing.T) {
	n := NewNormalizer(time.UTC)
	conn := domain.Connection{ID: 100, Username: "ada"}

	raw := tweetPayload(t, Tweet{
		IDStr:     "600000001",
		Text:      "hello world",
		CreatedAt: "Mon Jun 01 10:30:00 +0000 2015",
	})

	item, err := n.Normalize(raw, conn)

	require.NoError(t, err)
	assert.Equal(t, domain.ItemTypeTweet, item.Type)
	assert.Equal(t, "600000001", item.SourceID)
	assert.Equal(t, "600000001", item.Title)
	assert.Equal(t, "hello world", item.Body)
	assert.Equal(t, "https://twitter.com/ada/status/600000001", item.Permalink)
	assert.Equal(t, int64(100), item.ConnectionID)
	assert.Equal(t, time.Date(2015, 6, 1, 10, 30, 0, 0, time.UTC), item.Date)
	assert.True(t, item.IsPublished)
	assert.True(t, item.IsActive)
	assert.Nil(t, item.Picture)
	assert.JSONEq(t, string(raw.Payload), string(item.RawData))
}

func TestNormalizer_ExpandsShortenedURLs(t *testing.T) {
	n := NewNormalizer(time.UTC)

	raw := tweetPayload(t, Tweet{
		IDStr:     "600000002",
		Text:      "read this https://t.co/abc and https://t.co/def",
		CreatedAt: "Mon Jun 01 10:30:00 +0000 2015",
		Entities: Entities{
			URLs: []URLEntity{
				{URL: "https://t.co/abc", ExpandedURL: "https://example.com/article"},
				{URL: "https://t.co/def", ExpandedURL: "https://example.org/post"},
			},
		},
	})

	item, err := n.Normalize(raw, domain.Connection{Username: "ada"})

	require.NoError(t, err)
	assert.Equal(t, "read this https://example.com/article and https://example.org/post", item.Body)
}

func TestNormalizer_SinglePhotoBecomesPhotoItem(t *testing.T) {
	n := NewNormalizer(time.UTC)

	raw := tweetPayload(t, Tweet{
		IDStr:     "600000003",
		Text:      "sunset https://t.co/pic1",
		CreatedAt: "Mon Jun 01 10:30:00 +0000 2015",
		Entities: Entities{
			Media: []MediaEntity{
				{
					IDStr:    "700000001",
					Type:     "photo",
					URL:      "https://t.co/pic1",
					MediaURL: "https://pbs.twimg.com/media/sunset.jpg",
				},
			},
		},
	})

	item, err := n.Normalize(raw, domain.Connection{Username: "ada"})

	require.NoError(t, err)
	assert.Equal(t, domain.ItemTypePhoto, item.Type)
	require.NotNil(t, item.Picture)
	assert.Equal(t, "https://pbs.twimg.com/media/sunset.jpg", *item.Picture)
	require.NotNil(t, item.PictureID)
	assert.Equal(t, "700000001", *item.PictureID)
	// the shortened media link is dropped from the text
	assert.Equal(t, "sunset", item.Body)
}

func TestNormalizer_MultiplePhotosStayTweet(t *testing.T) {
	n := NewNormalizer(time.UTC)

	raw := tweetPayload(t, Tweet{
		IDStr:     "600000004",
		Text:      "album https://t.co/pics",
		CreatedAt: "Mon Jun 01 10:30:00 +0000 2015",
		Entities: Entities{
			Media: []MediaEntity{
				{IDStr: "1", Type: "photo", URL: "https://t.co/pics", MediaURL: "https://pbs.twimg.com/media/a.jpg"},
				{IDStr: "2", Type: "photo", URL: "https://t.co/pics", MediaURL: "https://pbs.twimg.com/media/b.jpg"},
			},
		},
	})

	item, err := n.Normalize(raw, domain.Connection{Username: "ada"})

	require.NoError(t, err)
	assert.Equal(t, domain.ItemTypeTweet, item.Type)
	assert.Nil(t, item.Picture)
	assert.Equal(t, "album https://t.co/pics", item.Body)
}

func TestNormalizer_NonPhotoMediaIgnored(t *testing.T) {
	n := NewNormalizer(time.UTC)

	raw := tweetPayload(t, Tweet{
		IDStr:     "600000005",
		Text:      "clip https://t.co/vid",
		CreatedAt: "Mon Jun 01 10:30:00 +0000 2015",
		Entities: Entities{
			Media: []MediaEntity{
				{IDStr: "1", Type: "video", URL: "https://t.co/vid", MediaURL: "https://pbs.twimg.com/media/v.mp4"},
			},
		},
	})

	item, err := n.Normalize(raw, domain.Connection{Username: "ada"})

	require.NoError(t, err)
	assert.Equal(t, domain.ItemTypeTweet, item.Type)
	assert.Nil(t, item.Picture)
}

func TestNormalizer_MissingID(t *testing.T) {
	n := NewNormalizer(time.UTC)

	raw := tweetPayload(t, Tweet{
		Text:      "no id",
		CreatedAt: "Mon Jun 01 10:30:00 +0000 2015",
	})

	_, err := n.Normalize(raw, domain.Connection{Username: "ada"})

	var normErr *domain.NormalizationError
	require.True(t, errors.As(err, &normErr))
	assert.Equal(t, domain.ProviderTwitter, normErr.Provider)
}

func TestNormalizer_BadTimestamp(t *testing.T) {
	n := NewNormalizer(time.UTC)

	raw := tweetPayload(t, Tweet{
		IDStr:     "600000006",
		Text:      "x",
		CreatedAt: "yesterday",
	})

	_, err := n.Normalize(raw, domain.Connection{Username: "ada"})

	var normErr *domain.NormalizationError
	require.True(t, errors.As(err, &normErr))
	assert.Equal(t, "600000006", normErr.SourceID)
}

func TestNormalizer_UndecodablePayload(t *testing.T) {
	n := NewNormalizer(time.UTC)

	raw := provider.RawPost{
		Provider: domain.ProviderTwitter,
		SourceID: "garbage",
		Payload:  []byte(`{"id_str": 42}`),
	}

	_, err := n.Normalize(raw, domain.Connection{Username: "ada"})

	var normErr *domain.NormalizationError
	require.True(t, errors.As(err, &normErr))
	assert.Equal(t, "garbage", normErr.SourceID)
}
