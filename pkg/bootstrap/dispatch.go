package bootstrap

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pixvault/pixvault/pkg/auth"
	"github.com/pixvault/pixvault/pkg/model"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// applyFunc decodes one JSON record and inserts it within tx.
type applyFunc func(tx *gorm.DB, raw json.RawMessage, path string) error

// registry is the closed mapping from object type to its decode-and-insert
// operation. Every ObjectType value has exactly one entry.
var registry = map[ObjectType]applyFunc{
	ObjectTypeUser:              insertRecord[model.User](ObjectTypeUser),
	ObjectTypeUserRole:          insertRecord[model.UserRole](ObjectTypeUserRole),
	ObjectTypeTeam:              insertRecord[model.Team](ObjectTypeTeam),
	ObjectTypeProject:           insertRecord[model.Project](ObjectTypeProject),
	ObjectTypeRole:              insertRecord[model.Role](ObjectTypeRole),
	ObjectTypeRolePermission:    insertRecord[model.RolePermission](ObjectTypeRolePermission),
	ObjectTypeConversionProfile: insertRecord[model.ConversionProfile](ObjectTypeConversionProfile),
	ObjectTypeStorageLocation:   insertRecord[model.StorageLocation](ObjectTypeStorageLocation),
	ObjectTypeUploadProfile:     insertRecord[model.UploadProfile](ObjectTypeUploadProfile),
	ObjectTypeAPIKey:            applyAPIKey,
}

// Apply decodes raw against the schema for typ and inserts the result.
func Apply(tx *gorm.DB, typ ObjectType, raw json.RawMessage, path string) error {
	apply, ok := registry[typ]
	if !ok {
		return &UnknownObjectTypeError{Path: path, Tag: typ.String()}
	}
	return apply(tx, raw, path)
}

// insertRecord builds the applyFunc for a plain record type: strict decode,
// required-field validation, single-row insert.
func insertRecord[T any](typ ObjectType) applyFunc {
	return func(tx *gorm.DB, raw json.RawMessage, path string) error {
		value, err := decodeRecord[T](typ, raw, path)
		if err != nil {
			return err
		}
		if err := tx.Create(value).Error; err != nil {
			return fmt.Errorf("inserting %s record from %s: %w", typ, path, err)
		}
		return nil
	}
}

func decodeRecord[T any](typ ObjectType, raw json.RawMessage, path string) (*T, error) {
	var value T

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&value); err != nil {
		return nil, &DecodeError{Path: path, Type: typ, Field: fieldFromJSONError(err), Err: err}
	}

	if err := validate.Struct(&value); err != nil {
		field := ""
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			field = verrs[0].Field()
		}
		return nil, &DecodeError{Path: path, Type: typ, Field: field, Err: err}
	}

	return &value, nil
}

// fieldFromJSONError pulls a field name out of the decode error when the
// error shape carries one.
func fieldFromJSONError(err error) string {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return typeErr.Field
	}
	// DisallowUnknownFields produces `json: unknown field "x"`.
	if _, name, ok := strings.Cut(err.Error(), `unknown field "`); ok {
		return strings.TrimSuffix(name, `"`)
	}
	return ""
}

// apiKeyInput is the bootstrap-file shape of an API key. The plaintext key
// is carried only long enough to rebuild the stored record.
type apiKeyInput struct {
	Key                     string    `json:"key" validate:"required"`
	Name                    string    `json:"name" validate:"required"`
	TeamID                  uuid.UUID `json:"team_id" validate:"required"`
	UserID                  uuid.UUID `json:"user_id" validate:"required"`
	InheritsUserPermissions bool      `json:"inherits_user_permissions"`
	Expires                 time.Time `json:"expires" validate:"required"`
}

// applyAPIKey reconstructs a credential record from its plaintext key: the
// key is parsed into (prefix, id, random), the stored digest is derived,
// and the random component is discarded.
func applyAPIKey(tx *gorm.DB, raw json.RawMessage, path string) error {
	input, err := decodeRecord[apiKeyInput](ObjectTypeAPIKey, raw, path)
	if err != nil {
		return err
	}

	parsed, err := auth.ParseKey(input.Key)
	if err != nil {
		return fmt.Errorf("api key %q from %s: %w", input.Name, path, err)
	}

	data := auth.DeriveKeyData(parsed.Prefix, parsed.ID, parsed.Random, input.Expires)

	record := model.APIKey{
		ID:                      parsed.ID,
		Name:                    input.Name,
		Prefix:                  data.Prefix,
		Hash:                    data.Hash,
		TeamID:                  input.TeamID,
		UserID:                  input.UserID,
		InheritsUserPermissions: input.InheritsUserPermissions,
		Created:                 time.Now().UTC(),
		Expires:                 input.Expires,
	}

	if err := tx.Create(&record).Error; err != nil {
		return fmt.Errorf("inserting api_key record from %s: %w", path, err)
	}
	return nil
}
