package solutions

type playlistItemsResponse struct {
	Items []playlistItem `json:"items"`
}

type playlistItem struct {
	Snippet struct {
		Title      string `json:"title"`
		ResourceID struct {
			VideoID string `json:"videoId"`
		} `json:"resourceId"`
	} `json:"snippet"`
}
