package services

import "testing"

func TestHashPasswordDeterministic(t *testing.T) {
	salt, err := GenerateSalt()
	if err != nil {
		t.Fatalf("GenerateSalt: %v", err)
	}

	first, err := HashPassword("correct horse battery staple", salt, PasswordAlgoScrypt)
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	second, err := HashPassword("correct horse battery staple", salt, PasswordAlgoScrypt)
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if first != second {
		t.Fatalf("same password and salt produced different hashes")
	}

	otherSalt, err := GenerateSalt()
	if err != nil {
		t.Fatalf("GenerateSalt: %v", err)
	}
	third, err := HashPassword("correct horse battery staple", otherSalt, PasswordAlgoScrypt)
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if third == first {
		t.Fatalf("different salts produced the same hash")
	}
}

func TestVerifyPassword(t *testing.T) {
	salt, err := GenerateSalt()
	if err != nil {
		t.Fatalf("GenerateSalt: %v", err)
	}
	hash, err := HashPassword("hunter2hunter2", salt, PasswordAlgoScrypt)
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}

	if !VerifyPassword("hunter2hunter2", salt, PasswordAlgoScrypt, hash) {
		t.Fatalf("expected correct password to verify")
	}
	if VerifyPassword("hunter2hunter3", salt, PasswordAlgoScrypt, hash) {
		t.Fatalf("expected wrong password to fail")
	}
	if VerifyPassword("hunter2hunter2", salt, PasswordAlgoScrypt, hash[:16]) {
		t.Fatalf("expected truncated hash to fail, not panic")
	}
	if VerifyPassword("hunter2hunter2", salt, "md5", hash) {
		t.Fatalf("expected unknown algorithm to fail")
	}
}

func TestVerifyPasswordLegacyAlgo(t *testing.T) {
	salt, err := GenerateSalt()
	if err != nil {
		t.Fatalf("GenerateSalt: %v", err)
	}
	legacyHash, err := HashPassword("old-credentials-1", salt, PasswordAlgoPBKDF2)
	if err != nil {
		t.Fatalf("HashPassword legacy: %v", err)
	}

	if !VerifyPassword("old-credentials-1", salt, PasswordAlgoPBKDF2, legacyHash) {
		t.Fatalf("expected legacy credentials to stay valid")
	}
	if VerifyPassword("old-credentials-1", salt, PasswordAlgoScrypt, legacyHash) {
		t.Fatalf("legacy hash must not verify under the current algorithm")
	}
}

func TestHashSessionToken(t *testing.T) {
	hash := HashSessionToken("some-opaque-token")
	if hash == "some-opaque-token" {
		t.Fatalf("token must never equal its stored form")
	}
	if len(hash) != 64 {
		t.Fatalf("expected sha256 hex digest, got %d chars", len(hash))
	}
	if HashSessionToken("some-opaque-token") != hash {
		t.Fatalf("token hash must be stable")
	}
}
