package gemini

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/google/generative-ai-go/genai"
	jsoniter "github.com/json-iterator/go"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	"duitai/pkg/nlp"
	"duitai/pkg/response"
)

// ErrInvalidAPIKey signals that the remote service rejected the credential.
// It is kept distinct from a generic parse failure so the caller can prompt
// for credential reconfiguration instead of a retry hint.
var ErrInvalidAPIKey = response.NewError(401, "invalid or unauthorized AI credential")

const defaultModelName = "gemini-2.0-flash"

type IGemini interface {
	ParseFinancialInput(ctx context.Context, apiKey, text string, categories []string) (nlp.Draft, error)
}

type geminiClient struct {
	modelName string
}

// NewGeminiClient builds the remote parser. The credential is passed per call
// because the user can reconfigure it at runtime; only the model name is fixed
// at startup.
func NewGeminiClient() IGemini {
	modelName := os.Getenv("GEMINI_MODEL_NAME")
	if modelName == "" {
		modelName = defaultModelName
	}

	return &geminiClient{
		modelName: modelName,
	}
}

func (g *geminiClient) ParseFinancialInput(ctx context.Context, apiKey, text string, categories []string) (nlp.Draft, error) {
	if apiKey == "" {
		return nlp.Draft{}, ErrInvalidAPIKey
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nlp.Draft{}, err
	}
	defer client.Close()

	model := client.GenerativeModel(g.modelName)
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(systemInstruction(categories))},
	}
	model.GenerationConfig = genai.GenerationConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   draftSchema(),
	}

	res, err := model.GenerateContent(ctx, genai.Text(text))
	if err != nil {
		if isCredentialError(err) {
			return nlp.Draft{}, ErrInvalidAPIKey
		}
		return nlp.Draft{}, err
	}

	if len(res.Candidates) == 0 || len(res.Candidates[0].Content.Parts) == 0 {
		return nlp.Draft{}, errors.New("no response from Gemini API")
	}

	raw, ok := res.Candidates[0].Content.Parts[0].(genai.Text)
	if !ok {
		return nlp.Draft{}, errors.New("unexpected response format from Gemini API")
	}

	return makeDraft(string(raw), text), nil
}

func systemInstruction(categories []string) string {
	return fmt.Sprintf(`Anda adalah asisten keuangan pintar. Tugas Anda adalah mengekstrak detail transaksi dari input pengguna dalam Bahasa Indonesia.

Aturan Ekstraksi:
1. Nilai Angka: "30rb" -> 30000, "2jt" -> 2000000.
2. Tipe: "pemasukan" (income) atau "pengeluaran" (expense).
3. Kategori: Pilih satu dari daftar berikut: %s. Jika tidak ada yang cocok, gunakan "Lainnya".
4. Dompet: Ekstrak nama dompet jika disebutkan (contoh: "dompet jajan", "rekening", "cash"). Jika TIDAK disebutkan, gunakan "Utama".
5. Deskripsi: Buat deskripsi singkat.

Hasilkan output dalam format JSON.`, strings.Join(categories, ", "))
}

func draftSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"amount":      {Type: genai.TypeNumber, Description: "Nilai angka transaksi"},
			"type":        {Type: genai.TypeString, Description: "'income' atau 'expense'"},
			"category":    {Type: genai.TypeString, Description: "Kategori transaksi"},
			"wallet":      {Type: genai.TypeString, Description: "Nama dompet yang digunakan"},
			"description": {Type: genai.TypeString, Description: "Deskripsi singkat"},
		},
		Required: []string{"amount", "type", "category", "wallet", "description"},
	}
}

// makeDraft maps the model's JSON onto a draft, filling defaults for missing
// fields. A zero or absent amount marks the draft as failed.
func makeDraft(raw, userInput string) nlp.Draft {
	var payload struct {
		Amount      float64 `json:"amount"`
		Type        string  `json:"type"`
		Category    string  `json:"category"`
		Wallet      string  `json:"wallet"`
		Description string  `json:"description"`
	}

	if err := jsoniter.Unmarshal([]byte(raw), &payload); err != nil {
		return nlp.Draft{
			Type:        "expense",
			Category:    "Lainnya",
			Wallet:      "Utama",
			Description: "Gagal memproses",
			Success:     false,
		}
	}

	draft := nlp.Draft{
		Amount:      payload.Amount,
		Type:        payload.Type,
		Category:    payload.Category,
		Wallet:      payload.Wallet,
		Description: payload.Description,
		Success:     payload.Amount > 0,
	}

	if draft.Type == "" {
		draft.Type = "expense"
	}
	if draft.Category == "" {
		draft.Category = "Lainnya"
	}
	if draft.Wallet == "" {
		draft.Wallet = "Utama"
	}
	if draft.Description == "" {
		draft.Description = userInput
	}

	return draft
}

func isCredentialError(err error) bool {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		return apiErr.Code == 400 || apiErr.Code == 403
	}

	return strings.Contains(strings.ToLower(err.Error()), "api key")
}
