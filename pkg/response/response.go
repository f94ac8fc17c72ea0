package response

type ErrorResponse struct {
	Error string `json:"error"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type DeletedResponse struct {
	Deleted int64 `json:"deleted"`
}
