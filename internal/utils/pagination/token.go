package pagination

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
)

// EncodeOffsetToken creates an opaque token for the page starting at offset.
func EncodeOffsetToken(offset, limit int) string {
	tokenStr := fmt.Sprintf("%d|%d", offset, limit)
	return base64.RawURLEncoding.EncodeToString([]byte(tokenStr))
}

// DecodeOffsetToken parses a token produced by EncodeOffsetToken.
func DecodeOffsetToken(token string) (offset, limit int, err error) {
	decodedBytes, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid pagination token format (base64 decode): %w", err)
	}
	parts := strings.SplitN(string(decodedBytes), "|", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid pagination token format (split)")
	}

	offset, err = strconv.Atoi(parts[0])
	if err != nil || offset < 0 {
		return 0, 0, fmt.Errorf("invalid pagination token format (offset)")
	}
	limit, err = strconv.Atoi(parts[1])
	if err != nil || limit <= 0 {
		return 0, 0, fmt.Errorf("invalid pagination token format (limit)")
	}
	return offset, limit, nil
}

// NextToken returns the token of the page after a bounded page that came back full.
// Unbounded or short pages have no successor.
func NextToken(offset, limit, returned int) *string {
	if limit <= 0 || returned < limit {
		return nil
	}
	token := EncodeOffsetToken(offset+limit, limit)
	return &token
}
