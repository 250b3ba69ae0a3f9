package service

import (
	"context"
	"fmt"
	"io"
	"log"
	"strings"

	"quitute-doce-desejo/models"
	"quitute-doce-desejo/utils"

	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
)

// PhotoService sources product photos from a Google Drive folder the
// store owner drops images into. File names carry the product id
// ("brigadeiro.jpg"); files that don't parse are skipped, not fatal.
type PhotoService struct {
	client *drive.Service
}

// NewPhotoService creates a new PhotoService instance.
// credentialsPath is the path to the Service Account JSON file.
func NewPhotoService(credentialsPath string) (*PhotoService, error) {
	ctx := context.Background()

	driveService, err := drive.NewService(ctx, option.WithCredentialsFile(credentialsPath))
	if err != nil {
		return nil, fmt.Errorf("failed to create drive service: %w", err)
	}

	return &PhotoService{
		client: driveService,
	}, nil
}

// Ensure PhotoService implements PhotoServiceInterface
var _ PhotoServiceInterface = (*PhotoService)(nil)

// ListPhotos lists all image files in a Drive folder and maps them to
// product ids by file name.
func (ps *PhotoService) ListPhotos(folderID string) ([]models.ProductPhoto, error) {
	query := fmt.Sprintf("'%s' in parents and trashed=false", folderID)

	var allFiles []*drive.File
	pageToken := ""
	for {
		call := ps.client.Files.List().
			Q(query).
			Fields("nextPageToken, files(id, name, mimeType)")

		if pageToken != "" {
			call = call.PageToken(pageToken)
		}

		r, err := call.Do()
		if err != nil {
			return nil, fmt.Errorf("failed to list files: %w", err)
		}

		allFiles = append(allFiles, r.Files...)
		pageToken = r.NextPageToken

		if pageToken == "" {
			break
		}
	}

	imageMimeTypes := map[string]bool{
		"image/png":  true,
		"image/jpeg": true,
		"image/jpg":  true,
	}

	var photos []models.ProductPhoto
	for _, file := range allFiles {
		if !imageMimeTypes[strings.ToLower(file.MimeType)] {
			continue
		}

		productID, err := utils.ParsePhotoFileName(file.Name)
		if err != nil {
			log.Printf("warning: skipping photo %s: %v", file.Name, err)
			continue
		}

		photos = append(photos, models.ProductPhoto{
			ProductID:   productID,
			DriveFileID: file.Id,
			FileName:    file.Name,
			ImageURL:    fmt.Sprintf("https://drive.google.com/uc?id=%s", file.Id),
		})
	}

	return photos, nil
}

// DownloadPhoto downloads a photo's raw bytes by Drive file id.
func (ps *PhotoService) DownloadPhoto(fileID string) ([]byte, error) {
	resp, err := ps.client.Files.Get(fileID).Download()
	if err != nil {
		return nil, fmt.Errorf("failed to download file %s: %w", fileID, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", fileID, err)
	}
	return data, nil
}
