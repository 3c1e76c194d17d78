package nlp

// Draft is a structured transaction candidate extracted from free text. It is
// not yet a persisted transaction: the state controller still resolves the
// wallet reference and clamps the category before recording it.
type Draft struct {
	Amount      float64 `json:"amount"`
	Type        string  `json:"type"`
	Category    string  `json:"category"`
	Wallet      string  `json:"wallet"`
	Description string  `json:"description"`
	Success     bool    `json:"success"`
}

// IParser turns one chat utterance plus the list of valid categories into a
// transaction draft. A Draft with Success=false means the text could not be
// understood as a transaction; it is not an error condition.
type IParser interface {
	Parse(text string, categories []string) Draft
}
