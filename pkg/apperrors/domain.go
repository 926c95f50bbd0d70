package apperrors

import "net/http"

// Domain error factories. Services return these; handlers only translate
// them through HandleError.

// --- users ---

func UserNotFound() *AppError {
	return New(CodeNotFound, "user", "User not found", http.StatusNotFound)
}

func EmailAlreadyRegistered() *AppError {
	return New(CodeAlreadyExists, "user", "An account with this email already exists", http.StatusConflict)
}

func InvalidCredentials() *AppError {
	return New(CodeInvalidCredentials, "auth", "Invalid email or password", http.StatusUnauthorized)
}

// --- companies ---

func CompanyNotFound() *AppError {
	return New(CodeNotFound, "company", "Company not found", http.StatusNotFound)
}

// --- jobs ---

func JobNotFound() *AppError {
	return New(CodeNotFound, "job", "Job not found", http.StatusNotFound)
}

// --- applications ---

func ApplicationNotFound() *AppError {
	return New(CodeNotFound, "application", "Application not found", http.StatusNotFound)
}

func DuplicateApplication() *AppError {
	return New(CodeConflict, "application", "You have already applied for this job", http.StatusConflict)
}

// --- messages ---

func MessageNotFound() *AppError {
	return New(CodeNotFound, "message", "Message not found", http.StatusNotFound)
}

// --- notifications ---

func NotificationNotFound() *AppError {
	return New(CodeNotFound, "notification", "Notification not found", http.StatusNotFound)
}

// --- advertisements ---

func AdvertisementNotFound() *AppError {
	return New(CodeNotFound, "advertisement", "Advertisement not found", http.StatusNotFound)
}

func InvalidAdMedia(message string) *AppError {
	return New(CodeValidationFailed, "advertisement", message, http.StatusBadRequest)
}
