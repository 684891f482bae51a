package auth_test

import (
	"strings"
	"testing"

	"github.com/raiyan37/finance-tracker/internal/auth"
)

func TestIssueAndParseToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := auth.IssueToken(42)
	if err != nil {
		t.Fatalf("ошибка выдачи токена: %v", err)
	}

	userID, err := auth.ParseToken(token)
	if err != nil {
		t.Fatalf("ошибка разбора токена: %v", err)
	}
	if userID != 42 {
		t.Errorf("user_id из токена: получили %d, хотели 42", userID)
	}
}

func TestParseTamperedToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := auth.IssueToken(42)
	if err != nil {
		t.Fatalf("ошибка выдачи токена: %v", err)
	}

	tampered := token[:len(token)-2] + "xx"
	if _, err := auth.ParseToken(tampered); err == nil {
		t.Error("подмененный токен не должен проходить проверку")
	}
}

func TestParseTokenWithWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "first-secret")
	token, err := auth.IssueToken(7)
	if err != nil {
		t.Fatalf("ошибка выдачи токена: %v", err)
	}

	t.Setenv("JWT_SECRET", "second-secret")
	if _, err := auth.ParseToken(token); err == nil {
		t.Error("токен с другим секретом не должен проходить проверку")
	}
}

func TestParseGarbage(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	if _, err := auth.ParseToken(strings.Repeat("a", 30)); err == nil {
		t.Error("мусорная строка не должна разбираться как токен")
	}
}
