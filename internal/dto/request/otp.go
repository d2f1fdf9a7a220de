package request

type RequestOTPRequest struct {
	Phone string `json:"phone" validate:"required"`
}
