package token

import "testing"

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("Admin1234", DefaultBcryptCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hash == "Admin1234" {
		t.Fatalf("password stored in the clear")
	}
	if !VerifyPassword("Admin1234", hash) {
		t.Fatalf("correct password rejected")
	}
	if VerifyPassword("wrong", hash) {
		t.Fatalf("wrong password accepted")
	}
}

func TestVerifyPassword_MissingAccountAlwaysFails(t *testing.T) {
	// Empty stored hash marks the "account not found" path; it must fail even
	// for the preimage of the internal dummy hash.
	for _, pw := range []string{"anything", "password", ""} {
		if VerifyPassword(pw, "") {
			t.Fatalf("VerifyPassword(%q, <none>) = true", pw)
		}
	}
}
