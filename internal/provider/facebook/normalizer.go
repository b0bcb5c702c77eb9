package facebook

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"activity_stream/internal/domain"
	"activity_stream/internal/provider"
)

// Normalizer maps Facebook statuses and photos onto the canonical item
// schema.
type Normalizer struct {
	loc *time.Location
}

func NewNormalizer(loc *time.Location) *Normalizer {
	return &Normalizer{loc: loc}
}

func (n *Normalizer) Normalize(raw provider.RawPost, conn domain.Connection) (domain.ActivityItem, error) {
	var post Post
	if err := json.Unmarshal(raw.Payload, &post); err != nil {
		return domain.ActivityItem{}, &domain.NormalizationError{
			Provider: domain.ProviderFacebook,
			SourceID: raw.SourceID,
			Err:      err,
		}
	}
	if post.ID == "" {
		return domain.ActivityItem{}, &domain.NormalizationError{
			Provider: domain.ProviderFacebook,
			SourceID: raw.SourceID,
			Err:      fmt.Errorf("missing id"),
		}
	}

	timestamp := post.CreatedTime
	if timestamp == "" {
		timestamp = post.UpdatedTime
	}
	date, err := provider.ParseTime(timestamp, n.loc)
	if err != nil {
		return domain.ActivityItem{}, &domain.NormalizationError{
			Provider: domain.ProviderFacebook,
			SourceID: post.ID,
			Err:      err,
		}
	}

	item := domain.ActivityItem{
		ConnectionID: conn.ID,
		Provider:     domain.ProviderFacebook,
		Type:         raw.Kind,
		Date:         date,
		Permalink:    permalink(conn.ExternalAccountID, post.ID),
		SourceID:     post.ID,
		RawData:      raw.Payload,
		IsPublished:  true,
		IsActive:     true,
	}

	switch raw.Kind {
	case KindStatus:
		item.Title = fmt.Sprintf("%s posted a status update.", post.From.Name)
		item.Body = post.Message
	case KindPhoto:
		item.Title = fmt.Sprintf("%s posted a photo.", post.From.Name)
		item.Body = post.Name
		applyImages(&item, post.Images)
	default:
		return domain.ActivityItem{}, &domain.NormalizationError{
			Provider: domain.ProviderFacebook,
			SourceID: post.ID,
			Err:      fmt.Errorf("unknown kind %q", raw.Kind),
		}
	}

	if post.Privacy != nil && post.Privacy.Value != "" {
		value := post.Privacy.Value
		item.Privacy = &value
	}

	applyPlace(&item, post.Place)

	return item, nil
}

// permalink rebuilds the public post URL. Graph API ids are compound
// ("<accountid>_<postid>"); the public URL wants the second half.
func permalink(accountID, postID string) string {
	if idx := strings.Index(postID, "_"); idx >= 0 {
		postID = postID[idx+1:]
	}
	return fmt.Sprintf("https://facebook.com/%s/posts/%s", accountID, postID)
}

// applyImages picks the largest variant as the picture, plus exact 480 and
// 320 width variants for the medium and small renditions.
func applyImages(item *domain.ActivityItem, images []ImageVariant) {
	const (
		mediumWidth = 480
		smallWidth  = 320
	)

	var largest *ImageVariant
	for i := range images {
		img := &images[i]
		if largest == nil || img.Width > largest.Width {
			largest = img
		}
		switch img.Width {
		case mediumWidth:
			item.PictureMedium = &img.Source
		case smallWidth:
			item.PictureSmall = &img.Source
		}
	}
	if largest != nil {
		item.Picture = &largest.Source
	}
}

// applyPlace copies whatever location fields the post carries. Partial
// location data is valid; absent fields stay null.
func applyPlace(item *domain.ActivityItem, place *Place) {
	if place == nil {
		return
	}
	if place.ID != "" {
		item.PlaceID = &place.ID
	}
	if place.Name != "" {
		item.PlaceName = &place.Name
	}
	loc := place.Location
	if loc == nil {
		return
	}
	if loc.Street != "" {
		item.Street = &loc.Street
	}
	if loc.City != "" {
		item.City = &loc.City
	}
	if loc.State != "" {
		item.State = &loc.State
	}
	if loc.Country != "" {
		item.Country = &loc.Country
	}
	item.Latitude = loc.Latitude
	item.Longitude = loc.Longitude
}
