package contentControllers

import (
	"context"
	"errors"
	"log"

	"github.com/syedzainalii/noosh-tuft/services"
)

// normalizeImage uploads inline data-URI images through the hosting
// collaborator; already-hosted URLs pass through untouched.
func normalizeImage(ctx context.Context, store services.ImageStore, image, folder string) (string, error) {
	if image == "" || !services.IsDataURI(image) {
		return image, nil
	}
	if store == nil {
		return "", errors.New("image hosting is not configured")
	}
	return store.Upload(ctx, image, folder)
}

// dropHostedImage deletes a replaced or orphaned hosted image, best-effort.
func dropHostedImage(store services.ImageStore, url string) {
	if store == nil || url == "" || !store.Owns(url) {
		return
	}
	if err := store.Delete(context.Background(), url); err != nil {
		log.Printf("⚠️ Failed to delete image %s: %v", url, err)
	}
}
