package storage

import (
	"context"
	"fmt"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// NewStorageService creates a new StorageServiceImpl instance.
func NewStorageService(cld *cloudinary.Cloudinary, cloudName string) StorageService {
	return &StorageServiceImpl{
		cld:       cld,
		cloudName: cloudName,
	}
}

// UploadFile uploads a file to Cloudinary into the specified folder and returns the permanent identifier.
func (s *StorageServiceImpl) UploadFile(ctx context.Context, localFilePath, destFolder string) (string, error) {
	uploadParams := uploader.UploadParams{
		Folder: destFolder,
	}
	result, err := s.cld.Upload.Upload(ctx, localFilePath, uploadParams)
	if err != nil {
		return "", fmt.Errorf("StorageServiceImpl: failed to upload file: %w", err)
	}
	if result.PublicID == "" {
		return "", fmt.Errorf("StorageServiceImpl: no public ID returned")
	}
	return result.PublicID, nil
}

// DeleteFile deletes a file from Cloudinary given its public ID.
func (s *StorageServiceImpl) DeleteFile(ctx context.Context, publicID string) error {
	_, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	if err != nil {
		return fmt.Errorf("StorageServiceImpl: failed to delete file: %w", err)
	}
	return nil
}

// DeliveryURL constructs the public delivery URL for a vehicle image.
func (s *StorageServiceImpl) DeliveryURL(publicID string) (string, error) {
	img, err := s.cld.Image(publicID)
	if err != nil {
		return "", fmt.Errorf("StorageServiceImpl: failed to get asset: %w", err)
	}
	url, err := img.String()
	if err != nil {
		return "", fmt.Errorf("StorageServiceImpl: failed to get URL string: %w", err)
	}
	return url, nil
}
