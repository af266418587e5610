// 📁 internals/features/shop/model/shop_item_model.go
package model

// Tipe item kosmetik shop.
const (
	TypeFont       = "font"
	TypePicture    = "picture"
	TypeBackground = "background"
	TypeBorder     = "border"
)

// ShopItem item kosmetik yang bisa ditukar dengan token.
// Katalog statis dan immutable: id dirujuk dari user_purchased_items,
// jadi jangan pernah mengubah id/harga item lama, cukup tambah item baru.
type ShopItem struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Type    string   `json:"type"`
	Options []string `json:"options"`
	Price   int64    `json:"price"`
}

var shopItems = []ShopItem{
	{ID: "1", Name: "Font 1", Type: TypeFont, Options: []string{"bright", "sunlight", "bold"}, Price: 500},
	{ID: "2", Name: "Font 2", Type: TypeFont, Options: []string{"italic", "script", "handwritten"}, Price: 1000},
	{ID: "3", Name: "Profile Picture 1", Type: TypePicture, Options: []string{
		"https://encrypted-tbn0.gstatic.com/images?q=tbn:ANd9GcQWLHshlGc0PZMvu5I2pY4FYcNsVgkpGQ16uEfOvb2FS0nbG4XmYU8vFd1ibaNrbGugSd0&usqp=CAU",
		"https://wallpapers.com/images/hd/instagram-profile-pictures-zjif3vdfrrxa00q6.jpg",
		"https://i3.wp.com/wallpapers.com/images/hd/cute-girl-vector-art-profile-picture-jhbu3wt713zj2bti.jpg",
		"https://image.lexica.art/full_jpg/7515495b-982d-44d2-9931-5a8bbbf27532",
	}, Price: 400},
	{ID: "4", Name: "Profile Picture 2", Type: TypePicture, Options: []string{
		"https://i.pinimg.com/736x/2d/e3/db/2de3db0ebe9bbfd5125e59aaae82134e.jpg",
		"https://dp.profilepics.in/profile_pictures/amazing/amazing_profile_pictures_266.jpg",
		"https://qph.cf2.quoracdn.net/main-qimg-428113a0fc91a5dd9a59d3ea8a7c12ef-lq",
	}, Price: 300},
	{ID: "5", Name: "Background 1", Type: TypeBackground, Options: []string{
		"https://c4.wallpaperflare.com/wallpaper/486/221/268/spots-rainbow-background-light-wallpaper-thumb.jpg",
		"https://img.freepik.com/free-vector/hand-painted-watercolor-pastel-sky-background_23-2148902771.jpg",
		"https://wallpapergod.com/images/hd/background-2560X1600-wallpaper-qdhu8vmv2imefsky.jpeg",
	}, Price: 250},
	{ID: "6", Name: "Border 1", Type: TypeBorder, Options: []string{"gold", "bright blue", "shadow"}, Price: 150},
}

// AllItems mengembalikan salinan katalog.
func AllItems() []ShopItem {
	out := make([]ShopItem, len(shopItems))
	copy(out, shopItems)
	return out
}

// ItemsByType filter katalog per tipe.
func ItemsByType(itemType string) []ShopItem {
	var out []ShopItem
	for _, item := range shopItems {
		if item.Type == itemType {
			out = append(out, item)
		}
	}
	return out
}

// FindItem cari item berdasarkan id. nil kalau tidak ada.
func FindItem(itemID string) *ShopItem {
	for i := range shopItems {
		if shopItems[i].ID == itemID {
			return &shopItems[i]
		}
	}
	return nil
}

// IsValidType cek tipe item dikenal.
func IsValidType(itemType string) bool {
	switch itemType {
	case TypeFont, TypePicture, TypeBackground, TypeBorder:
		return true
	}
	return false
}
