package upload

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

type UploadResponse struct {
	ImageURL string `json:"image_url"`
}
