package auth

import (
	"encoding/base64"
	"encoding/json"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/sunnatill0raimov/luxe/config"
	"github.com/sunnatill0raimov/luxe/errs"
)

// AdminUserID is the synthetic user ID carried by admin shortcut
// tokens. It never exists in the users table.
const AdminUserID = "admin-user-id"

// Identity is the authenticated principal attached to a request.
type Identity struct {
	UserID   string
	Username string
	IsAdmin  bool
}

// Claims are the signed JWT claims for registered users.
type Claims struct {
	jwt.RegisteredClaims
	UserID  string `json:"id"`
	IsAdmin bool   `json:"isAdmin"`
}

// adminToken is the unsigned base64 JSON blob fabricated by the admin
// shortcut. The middleware accepts it alongside signed JWTs.
type adminToken struct {
	ID      string `json:"id"`
	IsAdmin bool   `json:"isAdmin"`
}

// TokenService issues and verifies session tokens in both formats.
type TokenService struct {
	secret     []byte
	expiration time.Duration
}

func NewTokenService(cfg config.JWTConfig) *TokenService {
	return &TokenService{secret: []byte(cfg.Secret), expiration: cfg.Expiration}
}

// Issue signs a JWT for a registered user.
func (s *TokenService) Issue(userID string, isAdmin bool) (string, error) {
	now := time.Now()
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiration)),
		},
		UserID:  userID,
		IsAdmin: isAdmin,
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// FabricateAdminToken builds the unsigned admin shortcut token.
func FabricateAdminToken() string {
	blob, _ := json.Marshal(adminToken{ID: AdminUserID, IsAdmin: true})
	return base64.StdEncoding.EncodeToString(blob)
}

// Verify resolves a bearer token to an identity. The admin blob is
// checked first; anything else must be a valid signed JWT.
func (s *TokenService) Verify(token string) (*Identity, error) {
	if id, ok := decodeAdminToken(token); ok {
		return id, nil
	}

	parsed, err := jwt.ParseWithClaims(token, &Claims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errs.Auth("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, errs.Auth("Not authorized, token failed")
	}
	claims, ok := parsed.Claims.(*Claims)
	if !ok || claims.UserID == "" {
		return nil, errs.Auth("Not authorized, token failed")
	}
	return &Identity{UserID: claims.UserID, IsAdmin: claims.IsAdmin}, nil
}

func decodeAdminToken(token string) (*Identity, bool) {
	blob, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return nil, false
	}
	var t adminToken
	if err := json.Unmarshal(blob, &t); err != nil {
		return nil, false
	}
	if !t.IsAdmin || t.ID != AdminUserID {
		return nil, false
	}
	return &Identity{UserID: AdminUserID, Username: "Admin", IsAdmin: true}, true
}
