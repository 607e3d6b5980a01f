package utils

import (
	"strings"
	"testing"
)

func TestValidator_Required(t *testing.T) {
	v := NewValidator()

	if v.Required("name", "   ") {
		t.Error("Expected whitespace-only value to fail")
	}

	if !v.HasErrors() {
		t.Error("Expected validator to collect an error")
	}

	v = NewValidator()
	if !v.Required("name", "hello") {
		t.Error("Expected non-empty value to pass")
	}
}

func TestValidator_ValidateUsername(t *testing.T) {
	valid := []string{"alice", "bob_123", "user-name", "abc"}
	for _, username := range valid {
		v := NewValidator()
		if !v.ValidateUsername("username", username) {
			t.Errorf("Expected username '%s' to be valid", username)
		}
	}

	invalid := []string{"", "ab", "has space", "emoji😀", strings.Repeat("a", 51)}
	for _, username := range invalid {
		v := NewValidator()
		if v.ValidateUsername("username", username) {
			t.Errorf("Expected username '%s' to be invalid", username)
		}
	}
}

func TestValidator_ValidateEmail(t *testing.T) {
	v := NewValidator()
	if !v.ValidateEmail("email", "alice@example.com") {
		t.Error("Expected valid email to pass")
	}

	invalid := []string{"", "not-an-email", "missing@tld", "@example.com"}
	for _, email := range invalid {
		v := NewValidator()
		if v.ValidateEmail("email", email) {
			t.Errorf("Expected email '%s' to be invalid", email)
		}
	}
}

func TestValidator_ValidateMessageBody(t *testing.T) {
	v := NewValidator()
	if v.ValidateMessageBody("body", "   \t\n  ") {
		t.Error("Expected whitespace-only body to fail")
	}

	v = NewValidator()
	if !v.ValidateMessageBody("body", "hello") {
		t.Error("Expected non-empty body to pass")
	}

	v = NewValidator()
	if v.ValidateMessageBody("body", strings.Repeat("a", 10001)) {
		t.Error("Expected over-long body to fail")
	}
}

func TestValidator_ValidateRoomName_RuneCount(t *testing.T) {
	// Length limits count runes, not bytes
	v := NewValidator()
	if !v.ValidateRoomName("name", strings.Repeat("討", 200)) {
		t.Error("Expected 200-rune multibyte name to pass")
	}

	v = NewValidator()
	if v.ValidateRoomName("name", strings.Repeat("討", 201)) {
		t.Error("Expected 201-rune name to fail")
	}
}

func TestValidateUUID(t *testing.T) {
	if !ValidateUUID("550e8400-e29b-41d4-a716-446655440000") {
		t.Error("Expected valid UUID to pass")
	}

	invalid := []string{"", "not-a-uuid", "550e8400e29b41d4a716446655440000"}
	for _, s := range invalid {
		if ValidateUUID(s) {
			t.Errorf("Expected '%s' to be invalid", s)
		}
	}
}

func TestValidationErrors_Error(t *testing.T) {
	v := NewValidator()
	v.AddError("name", "此欄位為必填")
	v.AddError("body", "訊息內容不能為空")

	msg := v.Errors().Error()
	if !strings.Contains(msg, "name") || !strings.Contains(msg, "body") {
		t.Errorf("Expected combined error message to mention both fields, got '%s'", msg)
	}
}
