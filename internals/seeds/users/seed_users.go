// 📁 internals/seeds/users/seed_users.go
package users

import (
	"encoding/json"
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"palhope_backend/internals/features/users/user/model"
)

type UserSeed struct {
	UserName string `json:"user_name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// SeedUsersFromJSON memuat akun awal (admin/demo) dari file JSON.
// Skip kalau email sudah ada, jadi aman dijalankan berulang.
func SeedUsersFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Membaca file user:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Printf("❌ Gagal membaca file JSON: %v", err)
		return
	}

	var inputs []UserSeed
	if err := json.Unmarshal(file, &inputs); err != nil {
		log.Printf("❌ Gagal decode JSON: %v", err)
		return
	}

	for _, data := range inputs {
		var existing model.UserModel
		err := db.Where("user_email = ?", data.Email).First(&existing).Error
		if err == nil {
			log.Printf("⏭️ User %s sudah ada, skip", data.Email)
			continue
		}
		if err != gorm.ErrRecordNotFound {
			log.Printf("❌ Gagal cek user %s: %v", data.Email, err)
			continue
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(data.Password), bcrypt.DefaultCost)
		if err != nil {
			log.Printf("❌ Gagal hash password %s: %v", data.Email, err)
			continue
		}

		user := model.UserModel{
			UserName:     data.UserName,
			UserEmail:    data.Email,
			UserPassword: string(hashed),
			UserRole:     data.Role,
		}
		user.SetDefaultValues()

		if err := db.Create(&user).Error; err != nil {
			log.Printf("❌ Gagal seed user %s: %v", data.Email, err)
			continue
		}
		log.Printf("✅ User %s (%s) berhasil di-seed", data.Email, user.UserRole)
	}
}
