// 📁 internals/features/donations/rewards/rewards.go
//
// Reward engine: murni hitung-hitungan, tanpa side effect.
// Nominal dipegang sebagai integer (minor unit) supaya tidak ada drift float.
package rewards

// TokensPerUnit: tiap 1 unit donasi = 10 token virtual.
const TokensPerUnit = 10

// TokensForAmount menghitung token yang didapat dari satu donasi.
func TokensForAmount(amount int64) int64 {
	return amount * TokensPerUnit
}

// BadgeType satu entri katalog badge (immutable, dimuat sekali).
type BadgeType struct {
	Name        string
	Threshold   int64 // total kumulatif token minimum
	Description string
}

// BadgeCatalog: katalog statis ambang badge. Urutan tidak berpengaruh,
// semua entri yang memenuhi syarat dievaluasi setiap kali token berubah.
var BadgeCatalog = []BadgeType{
	{Name: "Silver Contributor", Threshold: 100, Description: "The user donated 10$ in total!"},
	{Name: "Bronze Contributor", Threshold: 5000, Description: "The user donated 500$ in total!"},
}

// BadgesEarned mengembalikan subset katalog dengan threshold <= totalTokens.
func BadgesEarned(totalTokens int64) []BadgeType {
	var earned []BadgeType
	for _, bt := range BadgeCatalog {
		if totalTokens >= bt.Threshold {
			earned = append(earned, bt)
		}
	}
	return earned
}

// badgePics: lookup statis nama badge → URL gambar.
var badgePics = map[string]string{
	"Bronze Contributor": "https://www.shutterstock.com/image-illustration/golden-seal-ribbons-isolated-on-600nw-1556748107.jpg",
	"Silver Contributor": "https://st.depositphotos.com/1575949/1824/v/950/depositphotos_18244417-stock-illustration-silver-prize-ribbon.jpg",
}

// BadgePictureURL mengembalikan URL gambar badge, fallback "No Badge"
// untuk nama yang tidak dikenal.
func BadgePictureURL(badgeName string) string {
	if pic, ok := badgePics[badgeName]; ok {
		return pic
	}
	return "No Badge"
}
