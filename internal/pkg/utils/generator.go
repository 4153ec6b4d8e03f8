package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"math/big"
	"registration-service/internal/pkg/constvars"
	"time"

	"github.com/google/uuid"
)

// GenerateRandomHex returns byteLength random bytes hex encoded.
func GenerateRandomHex(byteLength int) (string, error) {
	buffer := make([]byte, byteLength)
	if _, err := rand.Read(buffer); err != nil {
		return "", err
	}
	return hex.EncodeToString(buffer), nil
}

// GenerateRandomString picks length characters uniformly from alphabet.
func GenerateRandomString(alphabet string, length int) (string, error) {
	max := big.NewInt(int64(len(alphabet)))

	result := make([]byte, length)
	for i := range result {
		num, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		result[i] = alphabet[num.Int64()]
	}

	return string(result), nil
}

func GenerateRequestID() string {
	return constvars.REQUEST_ID_PREFIX + uuid.NewString()
}

func GenerateArchiveObjectName(ticketID string, submittedAt time.Time) string {
	return fmt.Sprintf(constvars.AppArchiveObjectFormat, submittedAt.UTC().Format("2006/01/02"), ticketID+"-"+uuid.NewString())
}
