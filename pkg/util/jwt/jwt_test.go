package jwt

import (
	"testing"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	Init("test-secret-at-least-32-characters", 30, 24)

	token, err := GenerateAccessToken(7)
	if err != nil {
		t.Fatal(err)
	}

	claims, err := ParseToken(token)
	if err != nil {
		t.Fatal(err)
	}
	if claims.UserID != 7 {
		t.Errorf("UserID = %d, want 7", claims.UserID)
	}
	if claims.Subject != "access_token" {
		t.Errorf("Subject = %q, want access_token", claims.Subject)
	}
	if claims.TokenID != "" {
		t.Errorf("Access Token 不应携带 TokenID, got %q", claims.TokenID)
	}
}

func TestRefreshTokenCarriesTokenID(t *testing.T) {
	Init("test-secret-at-least-32-characters", 30, 24)

	token, tokenID, err := GenerateRefreshToken(7)
	if err != nil {
		t.Fatal(err)
	}
	if tokenID == "" {
		t.Fatal("应生成非空 TokenID")
	}

	claims, err := ParseToken(token)
	if err != nil {
		t.Fatal(err)
	}
	if claims.TokenID != tokenID {
		t.Errorf("TokenID = %q, want %q", claims.TokenID, tokenID)
	}
	if claims.Subject != "refresh_token" {
		t.Errorf("Subject = %q, want refresh_token", claims.Subject)
	}
}

func TestParseRejectsTamperedToken(t *testing.T) {
	Init("test-secret-at-least-32-characters", 30, 24)

	token, err := GenerateAccessToken(7)
	if err != nil {
		t.Fatal(err)
	}

	Init("another-secret-entirely-different-one", 30, 24)
	if _, err := ParseToken(token); err == nil {
		t.Error("换密钥后解析应失败")
	}
}
