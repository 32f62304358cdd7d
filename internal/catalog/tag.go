package catalog

// Tag is one entry of the tag vocabulary. Name acts as the key that entity
// references point at; it is freely editable, blank included.
type Tag struct {
	Name  string `json:"name"`
	Fluff string `json:"fluff"`
}
