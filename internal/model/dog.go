package model

// DogImage is the response for a random dog picture. Pointer fields encode
// the null values returned when the upstream lookup fails.
type DogImage struct {
	Breed *string `json:"breed"`
	URL   *string `json:"url"`
}
