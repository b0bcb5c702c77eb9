package twitter

// Tweet represents one entry of the user timeline response.
type Tweet struct {
	IDStr     string   `json:"id_str"`
	Text      string   `json:"text"`
	CreatedAt string   `json:"created_at"`
	Entities  Entities `json:"entities"`
	User      User     `json:"user"`
}

type Entities struct {
	URLs  []URLEntity   `json:"urls"`
	Media []MediaEntity `json:"media"`
}

type URLEntity struct {
	URL         string `json:"url"`
	ExpandedURL string `json:"expanded_url"`
}

type MediaEntity struct {
	IDStr    string `json:"id_str"`
	Type     string `json:"type"`
	URL      string `json:"url"`
	MediaURL string `json:"media_url_https"`
}

type User struct {
	ScreenName string `json:"screen_name"`
	Protected  bool   `json:"protected"`
}
