package request

type CreateFeedbackRequest struct {
	UserID  string `json:"user_id" validate:"required,uuid4"`
	Message string `json:"message" validate:"required"`
	// Rating is a pointer so an explicit 0 still passes required.
	// Any integer is accepted; there is no range check.
	Rating *int `json:"rating" validate:"required"`
}
