package utils

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	photoExtRegex  = regexp.MustCompile(`\.(png|jpg|jpeg)$`)
	productIDRegex = regexp.MustCompile(`^[a-z0-9][a-z0-9-]*$`)
)

// ParsePhotoFileName maps a photo file name to the product id it belongs
// to: the file stem, lower-cased, must be a product slug.
// Example: "Brigadeiro.JPG" -> "brigadeiro".
func ParsePhotoFileName(filename string) (string, error) {
	stem := photoExtRegex.ReplaceAllString(strings.ToLower(strings.TrimSpace(filename)), "")
	if !productIDRegex.MatchString(stem) {
		return "", fmt.Errorf("invalid photo filename %q: stem must be a product slug", filename)
	}
	return stem, nil
}
