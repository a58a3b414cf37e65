package service

import "github.com/MKhiriev/go-trip-journal/models"

// diffImages compares the stored image set of a trip with the submitted one,
// keyed by storage key. added are images only in the submission and still
// sitting in the temporary bucket; removed are images only in storage whose
// objects are now unreferenced.
func diffImages(stored, submitted []models.Image) (added, removed []models.Image) {
	storedKeys := make(map[string]struct{}, len(stored))
	for _, image := range stored {
		storedKeys[image.FileURLName] = struct{}{}
	}
	submittedKeys := make(map[string]struct{}, len(submitted))
	for _, image := range submitted {
		submittedKeys[image.FileURLName] = struct{}{}
	}

	for _, image := range submitted {
		if _, ok := storedKeys[image.FileURLName]; !ok {
			added = append(added, image)
		}
	}
	for _, image := range stored {
		if _, ok := submittedKeys[image.FileURLName]; !ok {
			removed = append(removed, image)
		}
	}

	return added, removed
}

func imageKeys(images []models.Image) []string {
	keys := make([]string, 0, len(images))
	for _, image := range images {
		if image.FileURLName != "" {
			keys = append(keys, image.FileURLName)
		}
	}
	return keys
}
