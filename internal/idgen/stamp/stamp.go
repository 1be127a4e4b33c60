// Package stamp builds booking ids from the creation time plus a random token,
// e.g. "BK-LX3K2F9A-Q7ZP0M1C".
package stamp

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	prefix      = "BK"
	tokenLength = 8
	alphabet    = "0123456789abcdefghijklmnopqrstuvwxyz"
)

// randomBytes skips the uuid version and variant bytes.
var randomBytes = [tokenLength]int{0, 1, 2, 3, 4, 5, 7, 9}

type Generator struct {
	now func() time.Time
}

func New(now func() time.Time) *Generator {
	if now == nil {
		now = time.Now
	}

	return &Generator{now: now}
}

func (g *Generator) GetID(_ context.Context) (string, error) {
	raw, err := uuid.NewRandom()
	if err != nil {
		return "", fmt.Errorf("generate random token: %w", err)
	}

	token := make([]byte, tokenLength)
	for i, pos := range randomBytes {
		token[i] = alphabet[int(raw[pos])%len(alphabet)]
	}

	id := fmt.Sprintf("%s-%s-%s", prefix, strconv.FormatInt(g.now().UnixMilli(), 36), token) //nolint:gomnd

	return strings.ToUpper(id), nil
}

// Fallback is the id shown when a booking succeeded but no id came back.
func Fallback(now time.Time) string {
	return strings.ToUpper(prefix + "-" + strconv.FormatInt(now.UnixMilli(), 36)) //nolint:gomnd
}
