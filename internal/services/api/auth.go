package api

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"hirehub/internal/modkit/httpkit"
	"hirehub/internal/platform/config"
	perr "hirehub/internal/platform/errors"
)

// TokenParser returns the bearer parser for public callers
//
// Tokens are "<user>.<hex hmac-sha256(user, secret)>", minted by the identity
// collaborator at sign-in. The API only verifies the signature; it keeps no
// session state. An empty AUTH_SECRET rejects every token
func TokenParser(cfg config.Conf) httpkit.TokenFunc {
	secret := cfg.MayString("AUTH_SECRET", "")
	return func(token string) (string, error) {
		if secret == "" {
			return "", perr.Unauthorizedf("auth disabled")
		}
		user, sig, ok := strings.Cut(token, ".")
		if !ok || user == "" {
			return "", perr.Unauthorizedf("malformed token")
		}
		mac := hmac.New(sha256.New, []byte(secret))
		mac.Write([]byte(user))
		want := hex.EncodeToString(mac.Sum(nil))
		if !hmac.Equal([]byte(want), []byte(strings.ToLower(sig))) {
			return "", perr.Unauthorizedf("bad signature")
		}
		return user, nil
	}
}
