package gemini

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/api/googleapi"
)

func TestMakeDraft(t *testing.T) {
	t.Run("well-formed payload", func(t *testing.T) {
		raw := `{"amount":30000,"type":"expense","category":"Makanan & Minuman","wallet":"Jajan","description":"Makan siang"}`
		draft := makeDraft(raw, "Makan siang 30rb dompet jajan")

		assert.True(t, draft.Success)
		assert.Equal(t, float64(30000), draft.Amount)
		assert.Equal(t, "Jajan", draft.Wallet)
	})

	t.Run("zero amount fails the draft", func(t *testing.T) {
		draft := makeDraft(`{"amount":0,"type":"expense"}`, "halo")

		assert.False(t, draft.Success)
		assert.Equal(t, "Lainnya", draft.Category)
		assert.Equal(t, "Utama", draft.Wallet)
	})

	t.Run("missing fields fall back to defaults", func(t *testing.T) {
		draft := makeDraft(`{"amount":15000}`, "jajan 15rb")

		assert.True(t, draft.Success)
		assert.Equal(t, "expense", draft.Type)
		assert.Equal(t, "Utama", draft.Wallet)
		assert.Equal(t, "jajan 15rb", draft.Description)
	})

	t.Run("non-JSON payload fails the draft", func(t *testing.T) {
		draft := makeDraft("not json", "apa saja")

		assert.False(t, draft.Success)
		assert.Equal(t, "Gagal memproses", draft.Description)
	})
}

func TestIsCredentialError(t *testing.T) {
	assert.True(t, isCredentialError(&googleapi.Error{Code: 400}))
	assert.True(t, isCredentialError(&googleapi.Error{Code: 403}))
	assert.False(t, isCredentialError(&googleapi.Error{Code: 500}))
	assert.True(t, isCredentialError(errors.New("API key not valid")))
	assert.False(t, isCredentialError(errors.New("connection refused")))
}
