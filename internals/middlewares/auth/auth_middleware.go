// internals/middlewares/auth/auth_middleware.go
package auth

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"palhope_backend/internals/configs"
	helper "palhope_backend/internals/helpers"
)

// AuthMiddleware mewajibkan JWT valid, lalu menaruh user_id & userRole ke Locals.
func AuthMiddleware(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := helper.GetRawAccessToken(c)
		if tokenString == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Missing token")
		}
		if err := authenticate(c, db, tokenString); err != nil {
			return err
		}
		return c.Next()
	}
}

// OptionalAuthMiddleware: kalau ada token harus valid, kalau tidak ada
// request lanjut sebagai anonim (dipakai endpoint donasi publik).
func OptionalAuthMiddleware(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := helper.GetRawAccessToken(c)
		if tokenString == "" {
			return c.Next()
		}
		if err := authenticate(c, db, tokenString); err != nil {
			return err
		}
		return c.Next()
	}
}

func authenticate(c *fiber.Ctx, db *gorm.DB, tokenString string) error {
	secretKey := configs.JWTSecret
	if secretKey == "" {
		log.Println("[ERROR] JWT_SECRET kosong")
		return fiber.NewError(fiber.StatusInternalServerError, "Missing JWT Secret")
	}

	// Parse & verifikasi JWT
	claims := jwt.MapClaims{}
	parser := jwt.Parser{SkipClaimsValidation: true}
	if _, err := parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secretKey), nil
	}); err != nil {
		log.Println("[ERROR] Gagal parse token:", err)
		return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token parse error")
	}

	// Validasi exp (toleransi skew kecil)
	if err := validateTokenExpiry(claims, 30*time.Second); err != nil {
		log.Println("[ERROR] Exp validation:", err)
		return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token expired")
	}

	// Ambil user_id & pastikan user masih ada
	userID, err := extractUserID(claims)
	if err != nil {
		log.Println("[ERROR] user_id:", err)
		return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Invalid or missing user ID")
	}

	var role string
	if err := db.Table("users").
		Select("user_role").
		Where("user_id = ?", userID).
		Scan(&role).Error; err != nil || role == "" {
		if errors.Is(err, gorm.ErrRecordNotFound) || role == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - User not found")
		}
		log.Println("[ERROR] DB error saat cek user:", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Internal Server Error")
	}

	c.Locals("user_id", userID.String())
	c.Locals("userRole", role)
	helper.SetRawAccessTokenLocals(c, tokenString)
	return nil
}

func validateTokenExpiry(claims jwt.MapClaims, leeway time.Duration) error {
	expRaw, ok := claims["exp"]
	if !ok {
		return errors.New("exp claim tidak ada")
	}
	expFloat, ok := expRaw.(float64)
	if !ok {
		return errors.New("exp claim bukan angka")
	}
	expTime := time.Unix(int64(expFloat), 0)
	if time.Now().After(expTime.Add(leeway)) {
		return errors.New("token kadaluarsa")
	}
	return nil
}

func extractUserID(claims jwt.MapClaims) (uuid.UUID, error) {
	raw, ok := claims["user_id"]
	if !ok {
		return uuid.Nil, errors.New("user_id claim tidak ada")
	}
	s, ok := raw.(string)
	if !ok {
		return uuid.Nil, errors.New("user_id claim bukan string")
	}
	return uuid.Parse(s)
}
