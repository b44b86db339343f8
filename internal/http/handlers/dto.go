package handlers

// ProductRequest is the validated create/update payload. Price is a
// pointer so a missing field can be told apart from an explicit zero.
// Description is store-only and not settable through this API.
type ProductRequest struct {
	Name     string   `json:"name"`
	Price    *float64 `json:"price"`
	ImageURL string   `json:"image_url"`
}

type ProductResponse struct {
	Id          int     `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Price       float64 `json:"price"`
	ImageURL    string  `json:"image_url"`
}

type MessageResult struct {
	Message string `json:"message"`
}

type ValidationErrorsResult struct {
	Errors []ProductValidationError `json:"errors"`
}

type CredentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResult struct {
	Token string `json:"token"`
}

type RegisterResult struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

type UserResponse struct {
	Id       int    `json:"id"`
	Username string `json:"username"`
}
