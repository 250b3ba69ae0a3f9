package service

import "quitute-doce-desejo/models"

// PhotoServiceInterface defines the contract for product photo sourcing.
type PhotoServiceInterface interface {
	ListPhotos(folderID string) ([]models.ProductPhoto, error)
	DownloadPhoto(fileID string) ([]byte, error)
}
