package service

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
)

// PhotoSyncService materializes Drive product photos into a local
// directory, one optimized JPEG per product id. The image endpoints serve
// from that directory; a product without a synced photo is simply a 404.
type PhotoSyncService struct {
	photos PhotoServiceInterface
	dir    string
}

// NewPhotoSyncService creates a new PhotoSyncService writing into dir.
func NewPhotoSyncService(photos PhotoServiceInterface, dir string) *PhotoSyncService {
	return &PhotoSyncService{
		photos: photos,
		dir:    dir,
	}
}

// LocalPhotoPath returns the on-disk path for a product's source photo.
func (s *PhotoSyncService) LocalPhotoPath(productID string) string {
	return filepath.Join(s.dir, productID+".jpg")
}

// SyncPhotos downloads every photo in the folder that is not yet on disk.
// Returns total photos seen, downloaded count, skipped count and per-file
// errors. Individual failures don't abort the sync.
func (s *PhotoSyncService) SyncPhotos(folderID string) (total, downloaded, skipped int, errs []string, err error) {
	log.Printf("🔄 SyncPhotos: Starting photo sync for folder: %s", folderID)

	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return 0, 0, 0, nil, fmt.Errorf("failed to create photos directory: %w", err)
	}

	photos, err := s.photos.ListPhotos(folderID)
	if err != nil {
		return 0, 0, 0, nil, fmt.Errorf("failed to list photos from Drive: %w", err)
	}

	total = len(photos)
	log.Printf("📦 SyncPhotos: Found %d photos in Drive", total)

	seen := make(map[string]bool)
	for _, photo := range photos {
		path := s.LocalPhotoPath(photo.ProductID)

		if _, err := os.Stat(path); err == nil {
			log.Printf("⏭️  SyncPhotos: Skipping %s (already on disk)", photo.ProductID)
			skipped++
			continue
		}

		if seen[photo.ProductID] {
			log.Printf("⏭️  SyncPhotos: Skipping %s (duplicate product id in folder)", photo.FileName)
			skipped++
			continue
		}
		seen[photo.ProductID] = true

		data, err := s.photos.DownloadPhoto(photo.DriveFileID)
		if err != nil {
			msg := fmt.Sprintf("Failed to download photo %s (%s): %v", photo.FileName, photo.DriveFileID, err)
			log.Printf("❌ %s", msg)
			errs = append(errs, msg)
			continue
		}

		optimized, err := OptimizeImage(data, "medium")
		if err != nil {
			msg := fmt.Sprintf("Failed to optimize photo %s (%s): %v", photo.FileName, photo.DriveFileID, err)
			log.Printf("❌ %s", msg)
			errs = append(errs, msg)
			continue
		}

		if err := os.WriteFile(path, optimized, 0644); err != nil {
			msg := fmt.Sprintf("Failed to save photo %s: %v", photo.FileName, err)
			log.Printf("❌ %s", msg)
			errs = append(errs, msg)
			continue
		}

		log.Printf("✓ SyncPhotos: Saved %s", path)
		downloaded++
	}

	log.Printf("🎉 SyncPhotos: Completed: %d downloaded, %d skipped, %d failed out of %d", downloaded, skipped, len(errs), total)
	return total, downloaded, skipped, errs, nil
}
