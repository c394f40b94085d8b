package credential

import "golang.org/x/crypto/bcrypt"

// hashCost is the bcrypt work factor used for all new digests.
const hashCost = 10

// HashPassword derives a salted bcrypt digest from the plaintext
// password. Each call produces a distinct digest.
func HashPassword(password string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(password), hashCost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// VerifyPassword reports whether the plaintext password matches the
// stored digest.
func VerifyPassword(password, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}
