package facebook

// Post covers the fields shared by statuses and photos.
type Post struct {
	ID          string         `json:"id"`
	From        Author         `json:"from"`
	Message     string         `json:"message"` // status text
	Name        string         `json:"name"`    // photo caption
	Images      []ImageVariant `json:"images"`
	Place       *Place         `json:"place"`
	Privacy     *Privacy       `json:"privacy"`
	CreatedTime string         `json:"created_time"`
	UpdatedTime string         `json:"updated_time"`
}

type Author struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type ImageVariant struct {
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Source string `json:"source"`
}

type Place struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Location *Location `json:"location"`
}

type Location struct {
	Street    string   `json:"street"`
	City      string   `json:"city"`
	State     string   `json:"state"`
	Country   string   `json:"country"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

type Privacy struct {
	Value string `json:"value"`
}

// privacyEveryone is the only level that results in publication.
const privacyEveryone = "EVERYONE"
