package auth

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/binary"
	"encoding/hex"
	"testing"
	"time"

	"gatekeeper/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHMACCodec_Derive(t *testing.T) {
	codec := NewHMACCodec(newTestConfig())
	created := time.Date(2025, 6, 1, 12, 30, 45, 0, time.UTC)

	value := codec.Derive("token-id", "user-id", created)

	// HMAC-SHA512(secret, id || userId || bigEndian(created.Unix())).
	mac := hmac.New(sha512.New, []byte("token-secret"))
	mac.Write([]byte("token-id"))
	mac.Write([]byte("user-id"))
	var ts [8]byte
	binary.BigEndian.PutUint64(ts[:], uint64(created.Unix()))
	mac.Write(ts[:])

	assert.Equal(t, hex.EncodeToString(mac.Sum(nil)), value)
}

func TestHMACCodec_Deterministic(t *testing.T) {
	codec := NewHMACCodec(newTestConfig())
	created := time.Now().UTC().Truncate(time.Second)

	assert.Equal(t,
		codec.Derive("id", "user", created),
		codec.Derive("id", "user", created))
}

func TestHMACCodec_AnyInputChangesOutput(t *testing.T) {
	codec := NewHMACCodec(newTestConfig())
	created := time.Date(2025, 6, 1, 12, 30, 45, 0, time.UTC)
	base := codec.Derive("id", "user", created)

	assert.NotEqual(t, base, codec.Derive("id2", "user", created))
	assert.NotEqual(t, base, codec.Derive("id", "user2", created))
	assert.NotEqual(t, base, codec.Derive("id", "user", created.Add(time.Second)))
}

func TestHMACCodec_Verify(t *testing.T) {
	codec := NewHMACCodec(newTestConfig())
	created := time.Now().UTC().Truncate(time.Second)

	token := &entity.AuthToken{
		ID:      "token-id",
		UserID:  "user-id",
		Created: created,
	}
	token.Token = codec.Derive(token.ID, token.UserID, token.Created)

	require.True(t, codec.Verify(token))

	// Flipping any field invalidates the stored value.
	tampered := *token
	tampered.Token = "0" + tampered.Token[1:]
	if tampered.Token == token.Token {
		tampered.Token = "1" + tampered.Token[1:]
	}
	assert.False(t, codec.Verify(&tampered))

	tampered = *token
	tampered.ID = "other-id"
	assert.False(t, codec.Verify(&tampered))

	tampered = *token
	tampered.UserID = "other-user"
	assert.False(t, codec.Verify(&tampered))

	tampered = *token
	tampered.Created = created.Add(time.Second)
	assert.False(t, codec.Verify(&tampered))
}

func TestHMACCodec_DifferentSecretsDisagree(t *testing.T) {
	other := newTestConfig()
	other.Secrets.AuthTokenSecret = "another-secret"
	created := time.Now().UTC().Truncate(time.Second)

	assert.NotEqual(t,
		NewHMACCodec(newTestConfig()).Derive("id", "user", created),
		NewHMACCodec(other).Derive("id", "user", created))
}

func TestHMACCodec_EmptyIDsStillDerive(t *testing.T) {
	codec := NewHMACCodec(newTestConfig())

	value := codec.Derive("", "", time.Unix(0, 0))
	assert.Len(t, value, 128)
}
