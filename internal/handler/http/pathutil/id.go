// Package pathutil provides helpers for extracting and normalizing URL paths.
package pathutil

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

// ErrInvalidID is returned when the ID in the URL path is not a valid UUID.
var ErrInvalidID = errors.New("invalid id")

// ExtractID extracts a UUID from a URL path by removing the given prefix.
// The returned ID is in canonical lowercase form.
//
//	id, err := ExtractID("/news/9b2e...", "/news/")
func ExtractID(path, prefix string) (string, error) {
	idStr := strings.TrimPrefix(path, prefix)
	id, err := uuid.Parse(idStr)
	if err != nil {
		return "", ErrInvalidID
	}
	return id.String(), nil
}
