package shortener

import (
	"crypto/sha256"
	"encoding/hex"
)

// CodeLength is the number of hex characters kept from the digest.
const CodeLength = 10

// DeriveCode computes the short code for a URL: the first CodeLength
// characters of the lowercase hex SHA-256 digest of the raw input.
// The input is not normalized or validated. Distinct URLs can share a code.
func DeriveCode(url string) Code {
	sum := sha256.Sum256([]byte(url))

	return Code(hex.EncodeToString(sum[:])[:CodeLength])
}
