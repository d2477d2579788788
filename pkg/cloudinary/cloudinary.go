// Package cloudinary removes images the client previously uploaded to Cloudinary.
package cloudinary

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"path"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

type Client struct {
	cld *cloudinary.Cloudinary
}

func NewClient(cloudName, apiKey, apiSecret string) (*Client, error) {
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize cloudinary: %w", err)
	}
	return &Client{cld: cld}, nil
}

// DeleteImage destroys the asset behind a delivery URL such as
// https://res.cloudinary.com/demo/image/upload/v1712/userprofile/abc123.jpg.
func (c *Client) DeleteImage(ctx context.Context, imageURL string) error {
	publicID, err := PublicIDFromURL(imageURL)
	if err != nil {
		return err
	}

	res, err := c.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	if err != nil {
		return fmt.Errorf("failed to delete %s: %w", publicID, err)
	}
	if res.Error.Message != "" {
		return fmt.Errorf("failed to delete %s: %s", publicID, res.Error.Message)
	}
	return nil
}

// PublicIDFromURL returns "<folder>/<name>" from the last two path segments,
// with the file extension stripped.
func PublicIDFromURL(imageURL string) (string, error) {
	u, err := url.Parse(imageURL)
	if err != nil {
		return "", fmt.Errorf("invalid image url: %w", err)
	}

	parts := strings.Split(strings.Trim(u.Path, "/"), "/")
	if len(parts) < 2 || parts[len(parts)-1] == "" {
		return "", errors.New("image url has no folder/file segment")
	}

	filename := parts[len(parts)-1]
	name := strings.TrimSuffix(filename, path.Ext(filename))
	folder := parts[len(parts)-2]
	return folder + "/" + name, nil
}
