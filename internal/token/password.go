package token

import "golang.org/x/crypto/bcrypt"

// DefaultBcryptCost is the deployment-wide cost factor for password hashing.
const DefaultBcryptCost = 10

// dummyHash is a real bcrypt hash (of an unused value) compared against when
// no account matches the presented username, so the miss path burns the same
// bcrypt cost as a genuine comparison and stays timing-indistinguishable.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// HashPassword hashes a plaintext password with the given bcrypt cost.
func HashPassword(password string, cost int) (string, error) {
	if cost <= 0 {
		cost = DefaultBcryptCost
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// VerifyPassword checks the presented password against the stored hash. Pass
// an empty storedHash when the account lookup missed: the comparison then
// runs against dummyHash and always fails, keeping "unknown user" and "wrong
// password" indistinguishable in both result and latency.
func VerifyPassword(presented, storedHash string) bool {
	found := storedHash != ""
	if !found {
		storedHash = dummyHash
	}
	err := bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(presented))
	return found && err == nil
}
