package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const randomCharset = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789" // karışmaya müsait karakterler (0/O, 1/I) hariç

// GenerateSecureRandomString crypto/rand ile verilen uzunlukta rastgele
// bir string üretir. Aktivasyon kodları gibi dışarı basılan değerler için kullanılır.
func GenerateSecureRandomString(length int) (string, error) {
	if length <= 0 {
		return "", fmt.Errorf("geçersiz uzunluk: %d", length)
	}
	result := make([]byte, length)
	max := big.NewInt(int64(len(randomCharset)))
	for i := range result {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		result[i] = randomCharset[n.Int64()]
	}
	return string(result), nil
}

// GenerateCardUID karta fiziksel olarak (NFC/QR) kodlanan kalıcı public
// tanımlayıcıyı üretir. Bir kez basıldıktan sonra asla değişmez.
func GenerateCardUID() (string, error) {
	suffix, err := GenerateSecureRandomString(8)
	if err != nil {
		return "", err
	}
	return "QK-" + suffix, nil
}
