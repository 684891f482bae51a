package auth

import (
	"context"
	"fmt"
	"os"

	"google.golang.org/api/idtoken"
)

// VerifyGoogleToken проверяет ID-токен Google против GOOGLE_CLIENT_ID
// и возвращает email и имя пользователя
func VerifyGoogleToken(ctx context.Context, rawToken string) (email, name string, err error) {
	payload, err := idtoken.Validate(ctx, rawToken, os.Getenv("GOOGLE_CLIENT_ID"))
	if err != nil {
		return "", "", fmt.Errorf("недействительный токен Google: %v", err)
	}

	email, _ = payload.Claims["email"].(string)
	if email == "" {
		return "", "", fmt.Errorf("токен Google не содержит email")
	}
	name, _ = payload.Claims["name"].(string)
	if name == "" {
		name = email
	}
	return email, name, nil
}
