package bootstrap

import (
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/pixvault/pixvault/pkg/auth"
)

func setupTestDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })

	gormDB, err := gorm.Open(
		postgres.New(postgres.Config{
			Conn:                 mockDB,
			PreferSimpleProtocol: true,
		}),
		&gorm.Config{
			SkipDefaultTransaction: true,
			Logger:                 logger.Default.LogMode(logger.Silent),
		},
	)
	require.NoError(t, err)

	return gormDB, mock
}

func TestApply_InsertsUser(t *testing.T) {
	db, mock := setupTestDB(t)

	id := uuid.New()
	raw := fmt.Sprintf(`{"id": %q, "email": "alice@example.com", "name": "Alice"}`, id)

	mock.ExpectExec(`INSERT INTO "users"`).
		WithArgs(id.String(), "alice@example.com", "Alice").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := Apply(db, ObjectTypeUser, json.RawMessage(raw), "seed/alice.user.json")
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApply_InsertsProject(t *testing.T) {
	db, mock := setupTestDB(t)

	id := uuid.New()
	teamID := uuid.New()
	raw := fmt.Sprintf(
		`{"id": %q, "team_id": %q, "name": "main", "base_path": "images/"}`,
		id, teamID,
	)

	mock.ExpectExec(`INSERT INTO "projects"`).
		WithArgs(id.String(), teamID.String(), "main", "images/").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := Apply(db, ObjectTypeProject, json.RawMessage(raw), "seed/main.project.json")
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApply_UnknownField(t *testing.T) {
	db, _ := setupTestDB(t)

	raw := fmt.Sprintf(`{"id": %q, "name": "acme", "color": "blue"}`, uuid.New())

	err := Apply(db, ObjectTypeTeam, json.RawMessage(raw), "seed/acme.team.json")

	var decodeErr *DecodeError
	require.ErrorAs(t, err, &decodeErr)
	assert.Equal(t, ObjectTypeTeam, decodeErr.Type)
	assert.Equal(t, "color", decodeErr.Field)
}

func TestApply_WrongFieldType(t *testing.T) {
	db, _ := setupTestDB(t)

	raw := fmt.Sprintf(`{"id": %q, "name": 42}`, uuid.New())

	err := Apply(db, ObjectTypeTeam, json.RawMessage(raw), "seed/acme.team.json")

	var decodeErr *DecodeError
	require.ErrorAs(t, err, &decodeErr)
	assert.Equal(t, "name", decodeErr.Field)
}

func TestApply_MissingRequiredField(t *testing.T) {
	db, _ := setupTestDB(t)

	raw := fmt.Sprintf(`{"id": %q, "name": "Alice"}`, uuid.New())

	err := Apply(db, ObjectTypeUser, json.RawMessage(raw), "seed/alice.user.json")

	var decodeErr *DecodeError
	require.ErrorAs(t, err, &decodeErr)
	assert.Equal(t, "Email", decodeErr.Field)
}

func TestApply_APIKey(t *testing.T) {
	db, mock := setupTestDB(t)

	id := uuid.New()
	random := uuid.New()
	key := auth.EncodeKey(id, random)
	teamID := uuid.New()
	userID := uuid.New()
	expires := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)

	raw := fmt.Sprintf(
		`{"key": %q, "name": "deploy-key", "team_id": %q, "user_id": %q, "inherits_user_permissions": true, "expires": "2030-01-01T00:00:00Z"}`,
		key, teamID, userID,
	)

	expected := auth.DeriveKeyData(auth.KeyPrefix, id, random, expires)

	mock.ExpectExec(`INSERT INTO "api_keys"`).
		WithArgs(
			id.String(), "deploy-key", auth.KeyPrefix, expected.Hash,
			teamID.String(), userID.String(), true,
			sqlmock.AnyArg(), sqlmock.AnyArg(),
		).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := Apply(db, ObjectTypeAPIKey, json.RawMessage(raw), "seed/deploy.api_key.json")
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApply_APIKeyMalformed(t *testing.T) {
	db, _ := setupTestDB(t)

	raw := fmt.Sprintf(
		`{"key": "not-a-key", "name": "bad", "team_id": %q, "user_id": %q, "expires": "2030-01-01T00:00:00Z"}`,
		uuid.New(), uuid.New(),
	)

	err := Apply(db, ObjectTypeAPIKey, json.RawMessage(raw), "seed/bad.api_key.json")

	var malformed *auth.MalformedKeyError
	assert.ErrorAs(t, err, &malformed)
}

func TestApply_APIKeyWrongPrefix(t *testing.T) {
	db, _ := setupTestDB(t)

	key := auth.EncodeKey(uuid.New(), uuid.New())
	key = "zzz" + key[len(auth.KeyPrefix):]

	raw := fmt.Sprintf(
		`{"key": %q, "name": "bad", "team_id": %q, "user_id": %q, "expires": "2030-01-01T00:00:00Z"}`,
		key, uuid.New(), uuid.New(),
	)

	err := Apply(db, ObjectTypeAPIKey, json.RawMessage(raw), "seed/bad.api_key.json")

	var mismatch *auth.PrefixMismatchError
	assert.ErrorAs(t, err, &mismatch)
}
