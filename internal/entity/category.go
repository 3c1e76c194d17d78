package entity

// ProtectedCategoryName is the catch-all category. It can never be deleted and
// is the clamp target for unrecognized categories coming out of the parser.
const ProtectedCategoryName = "Lainnya"

// DefaultCategories seeds a fresh installation. List order is significant:
// categories keep their insertion order everywhere they are shown.
func DefaultCategories() []string {
	return []string{
		"Makanan & Minuman",
		"Transportasi",
		"Belanja",
		"Tagihan & Pulsa",
		"Hiburan",
		"Gaji & Bonus",
		"Kesehatan",
		"Pendidikan",
		ProtectedCategoryName,
	}
}
