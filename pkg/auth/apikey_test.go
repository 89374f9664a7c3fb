package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKey_RoundTrip(t *testing.T) {
	id := uuid.MustParse("11111111-2222-3333-4444-555555555555")
	random := uuid.MustParse("aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee")

	key := EncodeKey(id, random)
	parsed, err := ParseKey(key)
	require.NoError(t, err)

	assert.Equal(t, KeyPrefix, parsed.Prefix)
	assert.Equal(t, id, parsed.ID)
	assert.Equal(t, random, parsed.Random)
}

func TestParseKey_Malformed(t *testing.T) {
	tests := []struct {
		name string
		key  string
	}{
		{name: "only two parts", key: "pvk.onlytwoparts"},
		{name: "four parts", key: "pvk.a.b.c"},
		{name: "empty", key: ""},
		{name: "id not base64", key: "pvk.!!!.AAAAAAAAAAAAAAAAAAAAAA"},
		{name: "id too short", key: "pvk.AAAA.AAAAAAAAAAAAAAAAAAAAAA"},
		{name: "random too short", key: "pvk.AAAAAAAAAAAAAAAAAAAAAA.AAAA"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseKey(tt.key)
			require.Error(t, err)

			var malformed *MalformedKeyError
			assert.ErrorAs(t, err, &malformed)
		})
	}
}

func TestParseKey_PrefixMismatch(t *testing.T) {
	id := uuid.New()
	random := uuid.New()
	key := "WRONG." + EncodeKey(id, random)[len(KeyPrefix)+1:]

	_, err := ParseKey(key)
	require.Error(t, err)

	var mismatch *PrefixMismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, "WRONG", mismatch.Got)
}

func TestDeriveKeyData_Deterministic(t *testing.T) {
	id := uuid.New()
	random := uuid.New()
	expires := time.Date(2030, 6, 1, 12, 0, 0, 0, time.UTC)

	first := DeriveKeyData(KeyPrefix, id, random, expires)
	second := DeriveKeyData(KeyPrefix, id, random, expires)

	assert.Equal(t, first.Hash, second.Hash)
	assert.Equal(t, KeyPrefix, first.Prefix)
	assert.Len(t, first.Hash, 32)
}

func TestDeriveKeyData_AnyComponentChangesHash(t *testing.T) {
	id := uuid.New()
	random := uuid.New()
	expires := time.Date(2030, 6, 1, 12, 0, 0, 0, time.UTC)

	base := DeriveKeyData(KeyPrefix, id, random, expires)

	variants := map[string]KeyData{
		"prefix":  DeriveKeyData("other", id, random, expires),
		"id":      DeriveKeyData(KeyPrefix, uuid.New(), random, expires),
		"random":  DeriveKeyData(KeyPrefix, id, uuid.New(), expires),
		"expires": DeriveKeyData(KeyPrefix, id, random, expires.Add(time.Hour)),
	}

	for component, variant := range variants {
		assert.NotEqual(t, base.Hash, variant.Hash, "changing %s must change the hash", component)
	}
}

func TestVerify(t *testing.T) {
	expires := time.Date(2031, 1, 1, 0, 0, 0, 0, time.UTC)

	key, id, err := GenerateKey()
	require.NoError(t, err)

	parsed, err := ParseKey(key)
	require.NoError(t, err)
	require.Equal(t, id, parsed.ID)

	data := DeriveKeyData(parsed.Prefix, parsed.ID, parsed.Random, expires)

	assert.True(t, Verify(key, data.Hash, expires))
	assert.False(t, Verify(key, data.Hash, expires.Add(time.Minute)), "different expiry must not verify")
	assert.False(t, Verify("pvk.onlytwoparts", data.Hash, expires))

	otherKey, _, err := GenerateKey()
	require.NoError(t, err)
	assert.False(t, Verify(otherKey, data.Hash, expires))
}

func TestGenerateKey_Unique(t *testing.T) {
	first, firstID, err := GenerateKey()
	require.NoError(t, err)
	second, secondID, err := GenerateKey()
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.NotEqual(t, firstID, secondID)
}
