package bootstrap

import (
	"path/filepath"
	"strings"
)

//go:generate go run github.com/dmarkham/enumer -type ObjectType -trimprefix ObjectType -transform snake -output objecttype.gen.go

// ObjectType is the closed set of record types the loader understands.
// Anything outside this enumeration is rejected, never silently skipped.
type ObjectType int

const (
	ObjectTypeUser ObjectType = iota
	ObjectTypeUserRole
	ObjectTypeTeam
	ObjectTypeProject
	ObjectTypeRole
	ObjectTypeRolePermission
	ObjectTypeConversionProfile
	ObjectTypeStorageLocation
	ObjectTypeUploadProfile
	ObjectTypeAPIKey
)

// Classify derives the object type from a bootstrap filename. Filenames
// follow <name>.<type>.<ext>; the type is the second-from-last dot segment,
// accepted in both singular and plural spellings.
func Classify(filename string) (ObjectType, error) {
	base := filepath.Base(filename)
	parts := strings.Split(base, ".")
	if len(parts) < 3 {
		return 0, &UnknownObjectTypeError{Path: filename}
	}

	tag := parts[len(parts)-2]
	if typ, err := ObjectTypeString(tag); err == nil {
		return typ, nil
	}
	if n := len(tag); n > 1 && tag[n-1] == 's' {
		if typ, err := ObjectTypeString(tag[:n-1]); err == nil {
			return typ, nil
		}
	}

	return 0, &UnknownObjectTypeError{Path: filename, Tag: tag}
}
