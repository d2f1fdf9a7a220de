package response

type OTPResponse struct {
	Message string `json:"message"`
	OTP     string `json:"otp"`
}
