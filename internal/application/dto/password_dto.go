package dto

// ForgotPasswordRequest entrada para solicitar un código de restablecimiento.
type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

// VerifyOTPRequest entrada para validar el código recibido por correo.
type VerifyOTPRequest struct {
	Email string `json:"email"`
	OTP   string `json:"otp"`
}

// ResetPasswordRequest entrada para establecer la nueva contraseña tras el OTP.
type ResetPasswordRequest struct {
	Email           string `json:"email"`
	NewPassword     string `json:"new_password"`
	ConfirmPassword string `json:"confirm_password"`
}

// UpdatePasswordRequest entrada para cambio de contraseña autenticado.
type UpdatePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}
