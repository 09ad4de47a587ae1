package hash

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestID(t *testing.T) {
	tests := []struct {
		name string
		data string
		id   uint64
	}{
		{"empty string", "", 0xef46db3751d8e999},
		{"short string", "test", 0x4fdcca5ddb678139},
		{"long string", "this is a longer test string to hash", 0x69275f7f7ee59dbd},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.id, ID(tt.data))
		})
	}
}

func TestChecksum_MatchesID(t *testing.T) {
	for _, s := range []string{"", "Users", "Bookmarks.title", randString(64)} {
		assert.Equal(t, ID(s), Checksum([]byte(s)), s)
	}
}

func TestChecksum_DetectsFlip(t *testing.T) {
	data := []byte{0x2a, 0x00, 0x00, 0x00}
	sum := Checksum(data)

	data[1] ^= 0x01
	assert.NotEqual(t, sum, Checksum(data))
}

func randString(n int) string {
	const letters = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
	b := make([]byte, n)
	seededRand := rand.New(rand.NewSource(time.Now().UnixNano()))
	for i := range b {
		b[i] = letters[seededRand.Intn(len(letters))]
	}

	return string(b)
}

func BenchmarkChecksum(b *testing.B) {
	data := []byte(randString(256))
	b.ResetTimer()
	for b.Loop() {
		Checksum(data)
	}
}
