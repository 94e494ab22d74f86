package pkg

import "golang.org/x/crypto/bcrypt"

const secretHashCost = 12

func HashSecret(secret string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(secret), secretHashCost)
	return BytesToString(bytes), err
}

func CheckSecretHash(secret, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(secret)) == nil
}
