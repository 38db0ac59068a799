package media

import (
	"context"
	"errors"
	"io"

	"eventdeck/config"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"
)

const uploadFolder = "events"

// Uploader 接收圖片二進位內容，回傳可長期引用的 URL
type Uploader interface {
	Upload(ctx context.Context, r io.Reader) (string, error)
}

type CloudinaryUploader struct {
	cld    *cloudinary.Cloudinary
	folder string
}

func NewCloudinaryUploader(cfg *config.CloudinaryConfig) (*CloudinaryUploader, error) {
	cld, err := cloudinary.NewFromParams(cfg.CloudName, cfg.APIKey, cfg.APISecret)
	if err != nil {
		return nil, err
	}
	return &CloudinaryUploader{cld: cld, folder: uploadFolder}, nil
}

func (u *CloudinaryUploader) Upload(ctx context.Context, r io.Reader) (string, error) {
	resp, err := u.cld.Upload.Upload(ctx, r, uploader.UploadParams{
		PublicID: uuid.NewString(),
		Folder:   u.folder,
	})
	if err != nil {
		return "", err
	}
	// SDK 可能把 API 層的失敗放在 response body 而非 err
	if resp.Error.Message != "" {
		return "", errors.New(resp.Error.Message)
	}
	return resp.SecureURL, nil
}
