package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractAmount(t *testing.T) {
	ne := NewNumberExtractor()

	tests := []struct {
		text        string
		wantAmount  float64
		wantMatched string
	}{
		{"Makan siang 30rb dompet jajan", 30000, "unit"},
		{"bayar kos 2jt", 2000000, "unit"},
		{"gajian masuk 5JT utama", 5000000, "unit"},
		{"jajan 15 ribu", 15000, "unit"},
		{"topup 20 rebu", 20000, "unit"},
		{"parkir 2k", 2000, "unit"},
		{"belanja 1,5jt di toko", 1500000, "unit"},
		{"bayar listrik 250.000", 250000, "numeric"},
		{"transfer 1.250.000 ke rekening", 1250000, "numeric"},
		{"beli pulsa 50000", 50000, "numeric"},
		{"ongkos lima puluh ribu", 50000, "words"},
		{"bayar dua juta", 2000000, "words"},
		{"halo apa kabar", 0, "none"},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			amount, matched := ne.ExtractAmount(tt.text)
			assert.Equal(t, tt.wantAmount, amount)
			assert.Equal(t, tt.wantMatched, matched)
		})
	}
}

func TestExtractType(t *testing.T) {
	ne := NewNumberExtractor()

	assert.Equal(t, "income", ne.ExtractType("Gajian masuk 5jt Utama"))
	assert.Equal(t, "income", ne.ExtractType("terima bonus 500rb"))
	assert.Equal(t, "expense", ne.ExtractType("bayar makan siang 30rb"))
	assert.Equal(t, "expense", ne.ExtractType("30rb"))
}

func TestExtractWallet(t *testing.T) {
	ne := NewNumberExtractor()

	assert.Equal(t, "jajan", ne.ExtractWallet("Makan siang 30rb dompet jajan"))
	assert.Equal(t, "BCA", ne.ExtractWallet("transfer 1jt rekening BCA"))
	assert.Equal(t, "Snacks", ne.ExtractWallet("Lunch 30rb Snacks wallet"))
	assert.Empty(t, ne.ExtractWallet("beli kopi 20rb"))
}

func TestExtractDescription(t *testing.T) {
	ne := NewNumberExtractor()

	assert.Equal(t, "makan siang", ne.ExtractDescription("Makan siang 30rb dompet jajan"))
	assert.Equal(t, "Transaksi", ne.ExtractDescription("30rb"))
}

func TestLocalParserParse(t *testing.T) {
	parser := NewLocalParser()
	categories := []string{"Makanan & Minuman", "Transportasi", "Lainnya"}

	t.Run("successful extraction", func(t *testing.T) {
		draft := parser.Parse("Makan siang 30rb dompet jajan", categories)

		assert.True(t, draft.Success)
		assert.Equal(t, float64(30000), draft.Amount)
		assert.Equal(t, "expense", draft.Type)
		assert.Equal(t, "jajan", draft.Wallet)
		assert.Equal(t, "Makanan & Minuman", draft.Category)
	})

	t.Run("no amount means failure", func(t *testing.T) {
		draft := parser.Parse("halo apa kabar", categories)

		assert.False(t, draft.Success)
		assert.Zero(t, draft.Amount)
	})
}

func TestMatchCategory(t *testing.T) {
	categories := []string{"Makanan & Minuman", "Transportasi", "Lainnya"}

	tests := []struct {
		hint string
		want string
	}{
		{"transportasi", "Transportasi"},
		{"tránsportasí", "Transportasi"},
		{"makanan", "Makanan & Minuman"},
		{"transportasy", "Transportasi"},
		{"sewa apartemen", "Lainnya"},
		{"", "Lainnya"},
	}

	for _, tt := range tests {
		t.Run(tt.hint, func(t *testing.T) {
			assert.Equal(t, tt.want, MatchCategory(tt.hint, categories))
		})
	}
}
