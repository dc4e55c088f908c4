package storage

import (
	"context"

	"github.com/cloudinary/cloudinary-go/v2"
)

// StorageService defines the interface for vehicle image storage.
type StorageService interface {
	UploadFile(ctx context.Context, localFilePath, destFolder string) (string, error)
	DeleteFile(ctx context.Context, publicID string) error
	DeliveryURL(publicID string) (string, error)
}

// StorageServiceImpl implements StorageService using Cloudinary.
type StorageServiceImpl struct {
	cld       *cloudinary.Cloudinary
	cloudName string
}
