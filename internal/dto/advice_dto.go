// FILE: internal/dto/advice_dto.go
package dto

// AdviceRequest asks the AI for heart-health guidance. Question is optional
// for the nutrition endpoint, where the recent diary drives the prompt.
type AdviceRequest struct {
	Question string `json:"question,omitempty" validate:"omitempty,max=2000"`
}

type AdviceResponse struct {
	Advice string `json:"advice"`
	Cached bool   `json:"cached"`
}

// MealPhotoAnalysisResponse is returned by the photo endpoint. The image is
// uploaded as multipart form data, so there is no JSON request DTO for it.
type MealPhotoAnalysisResponse struct {
	Analysis string `json:"analysis"`
}
