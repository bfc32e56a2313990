package cloudinary

import (
	"context"
	"errors"
	"fmt"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/sm8ta/webike_theft_registry/internal/core/ports"
)

// CloudinaryAdapter stores bike photos on Cloudinary and hands back their
// secure URLs.
type CloudinaryAdapter struct {
	cld *cloudinary.Cloudinary
}

func NewCloudinaryAdapter(cloudName, apiKey, apiSecret string) (*CloudinaryAdapter, error) {
	if cloudName == "" || apiKey == "" || apiSecret == "" {
		return nil, errors.New("cloudinary credentials are incomplete")
	}
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Cloudinary: %w", err)
	}
	return &CloudinaryAdapter{cld: cld}, nil
}

func (a *CloudinaryAdapter) Upload(ctx context.Context, file ports.ImageFile, folder string) (string, error) {
	result, err := a.cld.Upload.Upload(ctx, file.Reader, uploader.UploadParams{
		Folder:       folder,
		ResourceType: "image",
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to Cloudinary: %w", err)
	}
	if result.Error.Message != "" {
		return "", fmt.Errorf("cloudinary rejected %s: %s", file.Name, result.Error.Message)
	}
	return result.SecureURL, nil
}
