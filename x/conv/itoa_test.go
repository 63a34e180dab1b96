package conv

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestItoa(t *testing.T) {
	var buf [20]byte
	for _, tc := range []struct {
		n    int64
		want string
	}{{0, "0"}, {7, "7"}, {11028, "11028"}, {-42, "-42"}} {
		assert.Equal(t, tc.want, string(Itoa(buf[:], tc.n)))
	}
}

func TestAppendPrefixed(t *testing.T) {
	assert.Equal(t, "KUWEI-11028", string(AppendPrefixed(nil, "KUWEI-", 11028)))
	assert.Equal(t, "X0", string(AppendPrefixed(make([]byte, 0, 4), "X", 0)))
}

func TestAppendInt(t *testing.T) {
	b := []byte("t=")
	b = AppendInt(b, -9223372036854775808)
	assert.Equal(t, "t=-9223372036854775808", string(b))
	assert.Equal(t, "12 34", string(AppendInt(append(AppendInt(nil, 12), ' '), 34)))
}
