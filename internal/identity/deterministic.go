package identity

import (
	"strings"

	hashid "github.com/goliatone/hashid/pkg/hashid"
	"github.com/google/uuid"
)

// UUID derives a deterministic UUID from a stable key using go-hashid.
//
// Callers must ensure key construction prevents cross-entity collisions
// (prefix by domain/type).
func UUID(key string) uuid.UUID {
	trimmed := strings.TrimSpace(key)
	if trimmed == "" {
		return uuid.Nil
	}
	uid, err := hashid.NewUUID(trimmed, hashid.WithHashAlgorithm(hashid.SHA256), hashid.WithNormalization(true))
	if err != nil || uid == uuid.Nil {
		return uuid.NewSHA1(uuid.NameSpaceOID, []byte(trimmed))
	}
	return uid
}

// BlockUUID derives a stable placeholder id for a block the upstream payload
// left unidentified. Keying on type plus flattened content keeps distinct
// siblings from sharing an id unless they genuinely carry the same text.
func BlockUUID(blockType, content string) uuid.UUID {
	return UUID("notion-convert:block:" + strings.TrimSpace(blockType) + ":" + content)
}
