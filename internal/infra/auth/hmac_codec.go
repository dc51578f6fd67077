package auth

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/binary"
	"encoding/hex"
	"time"

	"gatekeeper/config"
	"gatekeeper/internal/domain/entity"
	"gatekeeper/internal/domain/service"
)

// hmacCodec derives token values with HMAC-SHA512 over the token identity
// fields. The authenticated message is tokenID || userID || created, where
// created is the big-endian 8-byte encoding of the instant's Unix seconds.
// The timestamp must carry no sub-second component: the stored record has to
// reproduce the exact derivation input after a storage round trip, or the
// token becomes permanently unverifiable.
type hmacCodec struct {
	secret []byte
}

// NewHMACCodec is the constructor for hmacCodec. The derivation secret is a
// configuration value distinct from the password server salt.
func NewHMACCodec(cfg *config.Config) service.TokenCodec {
	return &hmacCodec{secret: []byte(cfg.Secrets.AuthTokenSecret)}
}

// Derive computes the lowercase hex token value for the identity triple.
// Malformed or empty ids are still hashable and produce a deterministic
// (if meaningless) result.
func (c *hmacCodec) Derive(tokenID, userID string, created time.Time) string {
	mac := hmac.New(sha512.New, c.secret)
	mac.Write([]byte(tokenID))
	mac.Write([]byte(userID))

	var ts [8]byte
	binary.BigEndian.PutUint64(ts[:], uint64(created.Unix()))
	mac.Write(ts[:])

	return hex.EncodeToString(mac.Sum(nil))
}

// Verify recomputes the expected value from the record's stored identity
// fields and compares in constant time. A mismatch means the record was
// tampered with or corrupted; the caller must not mutate or delete it.
func (c *hmacCodec) Verify(token *entity.AuthToken) bool {
	expected := c.Derive(token.ID, token.UserID, token.Created)

	return hmac.Equal([]byte(expected), []byte(token.Token))
}
