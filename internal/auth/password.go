package auth

import "golang.org/x/crypto/bcrypt"

// HashPassword derives a bcrypt hash for a staff credential at the configured
// cost. Doctor onboarding hashes the default password once up front, so cost
// is paid per interactive registration or password change, not per onboarding.
func HashPassword(password string, cost int) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// ComparePassword checks a login or password-change attempt against the
// stored staff hash.
func ComparePassword(hashed, plain string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain))
}
