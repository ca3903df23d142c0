package testutil

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// c32 alphabet used by Stacks-style principal addresses.
const addressCharset = "0123456789ABCDEFGHJKMNPQRSTVWXYZ"

// RandomStakerAddress generates a random mainnet-shaped staker principal.
func RandomStakerAddress() (string, error) {
	body, err := randomString(addressCharset, 38)
	if err != nil {
		return "", err
	}
	return "SP" + body, nil
}

// RandomAlphaNum generates a random alphanumeric string.
// In case length <= 0 it returns an error.
func RandomAlphaNum(length int) (string, error) {
	const charset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	return randomString(charset, length)
}

func randomString(charset string, length int) (string, error) {
	if length <= 0 {
		return "", fmt.Errorf("length must be greater than 0")
	}

	randomString := make([]byte, length)
	for i := range randomString {
		num, err := rand.Int(rand.Reader, big.NewInt(int64(len(charset))))
		if err != nil {
			return "", err
		}
		randomString[i] = charset[num.Int64()]
	}

	return string(randomString), nil
}
