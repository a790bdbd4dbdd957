package random

import (
	"math/rand"

	"github.com/google/uuid"
)

// GetUUID returns a canonical dashed UUID v4.
func GetUUID() string {
	return uuid.New().String()
}

const numbers = "0123456789"

func GetRandomNumberString(length int) string {
	key := make([]byte, length)
	for i := 0; i < length; i++ {
		key[i] = numbers[rand.Intn(len(numbers))]
	}
	return string(key)
}
