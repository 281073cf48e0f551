package entity

type FeedbackRequest struct {
	Type    string `json:"type" validate:"omitempty,max=50"`
	Message string `json:"message" validate:"max=5000"`
	Rating  string `json:"rating" validate:"omitempty,max=50"`
}

type LikedFeatures struct {
	Visuals      bool `json:"visuals"`
	Cards        bool `json:"cards"`
	Celebrations bool `json:"celebrations"`
}

// CartoonFeedbackRequest mirrors the child feedback form field names.
type CartoonFeedbackRequest struct {
	ChildName          string        `json:"childName" validate:"required,max=100"`
	Age                string        `json:"age" validate:"required,max=10"`
	Learning           string        `json:"learning" validate:"omitempty,oneof=Focus Memory Both"`
	EasyToUse          string        `json:"easyToUse" validate:"omitempty,oneof=Yes No"`
	LikedFeatures      LikedFeatures `json:"likedFeatures"`
	AdditionalFeedback string        `json:"additionalFeedback" validate:"max=5000"`
}

type FeedbackResponse struct {
	ID uint `json:"id"`
}
