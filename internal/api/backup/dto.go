package backup

type ImportResponse struct {
	Message string `json:"message"`
}
