package compute

import (
	"context"

	"github.com/pkg/errors"

	interrors "github.com/jrsteele09/go-cloud-client/internal/errors"
)

// Image is a bootable machine image.
type Image struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Status  string `json:"status"`
	Created string `json:"created"`
	Updated string `json:"updated"`
}

// Images lists the images available to the identity's tenant.
func (c *Client) Images(ctx context.Context) ([]Image, error) {
	var payload struct {
		Images []Image `json:"images"`
	}
	if err := c.get(ctx, "/images/detail", &payload); err != nil {
		return nil, errors.Wrap(err, "[Client.Images] list images")
	}
	return payload.Images, nil
}

// Image fetches one image by id.
func (c *Client) Image(ctx context.Context, imageID string) (*Image, error) {
	if imageID == "" {
		return nil, interrors.ErrMissingParameters
	}

	var payload struct {
		Image Image `json:"image"`
	}
	if err := c.get(ctx, "/images/"+imageID, &payload); err != nil {
		return nil, errors.Wrap(err, "[Client.Image] get image")
	}
	return &payload.Image, nil
}

// DeleteImage removes a stored image.
func (c *Client) DeleteImage(ctx context.Context, imageID string) error {
	if imageID == "" {
		return interrors.ErrMissingParameters
	}
	return errors.Wrap(c.delete(ctx, "/images/"+imageID), "[Client.DeleteImage] delete image")
}
