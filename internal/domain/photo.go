package domain

import "io"

// Photo is a photo slot: the public URL of a remote asset and the id the media
// host needs to delete it. The zero value means the slot is empty.
type Photo struct {
	URL      string `json:"url"`
	PublicID string `json:"public_id"`
}

func (p Photo) IsEmpty() bool {
	return p.PublicID == "" && p.URL == ""
}

// Image is an uploaded file on its way to the media host.
type Image struct {
	Name        string
	ContentType string
	Size        int64
	Content     io.Reader
}
