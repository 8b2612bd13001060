package assets

import (
	"fmt"
	"strings"
)

// maxAssetNameLength bounds template set names.
const maxAssetNameLength = 64

// ValidateAssetName checks that a template set name is safe for use as a
// directory name. Returns ErrInvalidAssetName if the name is empty, too long,
// starts with '-', or contains path separators or dots.
func ValidateAssetName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidAssetName)
	}
	if len(name) > maxAssetNameLength {
		return fmt.Errorf("%w: longer than %d characters", ErrInvalidAssetName, maxAssetNameLength)
	}
	if strings.HasPrefix(name, "-") || strings.ContainsAny(name, "/\\.") {
		return fmt.Errorf("%w: %q", ErrInvalidAssetName, name)
	}
	return nil
}
