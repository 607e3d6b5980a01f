package utils

import (
	"strings"
	"testing"
)

func TestHashPassword(t *testing.T) {
	password := "securepassword123"

	hash, err := HashPassword(password)
	if err != nil {
		t.Fatalf("Failed to hash password: %v", err)
	}

	if hash == "" {
		t.Error("Expected hash to be non-empty")
	}

	if hash == password {
		t.Error("Hash should not equal plain password")
	}

	// bcrypt hash should start with $2a$ or $2b$
	if !strings.HasPrefix(hash, "$2") {
		t.Error("Expected bcrypt hash prefix")
	}
}

func TestHashPassword_TooShort(t *testing.T) {
	_, err := HashPassword("short")
	if err != ErrPasswordTooShort {
		t.Errorf("Expected ErrPasswordTooShort, got %v", err)
	}
}

func TestHashPassword_TooLong(t *testing.T) {
	// bcrypt has a max length of 72 bytes
	longPassword := strings.Repeat("a", 73)

	_, err := HashPassword(longPassword)
	if err != ErrPasswordTooLong {
		t.Errorf("Expected ErrPasswordTooLong, got %v", err)
	}
}

func TestCheckPassword_Correct(t *testing.T) {
	password := "securepassword123"

	hash, _ := HashPassword(password)

	if !CheckPassword(password, hash) {
		t.Error("Expected password check to pass")
	}
}

func TestCheckPassword_Wrong(t *testing.T) {
	password := "securepassword123"
	wrongPassword := "wrongpassword"

	hash, _ := HashPassword(password)

	if CheckPassword(wrongPassword, hash) {
		t.Error("Expected password check to fail")
	}
}

func TestCheckPassword_InvalidHash(t *testing.T) {
	if CheckPassword("password", "not-a-valid-hash") {
		t.Error("Expected password check to fail with invalid hash")
	}
}

func TestHashPassword_Uniqueness(t *testing.T) {
	password := "samepassword123"

	hash1, _ := HashPassword(password)
	hash2, _ := HashPassword(password)

	// Same password should produce different hashes (due to salt)
	if hash1 == hash2 {
		t.Error("Expected different hashes for same password (due to salt)")
	}

	if !CheckPassword(password, hash1) {
		t.Error("Expected hash1 to validate")
	}
	if !CheckPassword(password, hash2) {
		t.Error("Expected hash2 to validate")
	}
}

func BenchmarkCheckPassword(b *testing.B) {
	password := "benchmarkpassword123"
	hash, _ := HashPassword(password)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		CheckPassword(password, hash)
	}
}
