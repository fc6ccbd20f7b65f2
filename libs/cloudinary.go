package libs

import (
	"fmt"
	"log"
	"path"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
)

// CloudinaryImages maps stored image references such as
// "images/cheesecake.jpg" to Cloudinary delivery URLs.
type CloudinaryImages struct {
	cld *cloudinary.Cloudinary
}

func NewCloudinaryImages(cloudinaryURL string) (*CloudinaryImages, error) {
	cld, err := cloudinary.NewFromURL(cloudinaryURL)
	if err != nil {
		return nil, fmt.Errorf("cloudinary init from URL fail: %w", err)
	}
	cld.Config.URL.Secure = true
	return &CloudinaryImages{cld: cld}, nil
}

// Resolve leaves absolute paths and full URLs untouched.
func (c *CloudinaryImages) Resolve(ref string) string {
	if ref == "" || strings.HasPrefix(ref, "/") || strings.Contains(ref, "://") {
		return ref
	}

	publicID := strings.TrimSuffix(ref, path.Ext(ref))
	img, err := c.cld.Image(publicID)
	if err != nil {
		log.Printf("[Cloudinary] image %s: %v", publicID, err)
		return ref
	}
	url, err := img.String()
	if err != nil {
		log.Printf("[Cloudinary] url for %s: %v", publicID, err)
		return ref
	}
	return url
}
