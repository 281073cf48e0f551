package domain

var (
	SCORE_SAVE_SUCCESS            = "Score saved"
	SCORE_SAVE_FAILED             = "Failed to save score"
	SCORE_LIST_SUCCESS            = "Scores retrieved"
	SCORE_LIST_FAILED             = "Failed to read scores"
	SCORE_EXPORT_FAILED           = "Failed to export scores"
	REPORT_GET_SUCCESS            = "Progress report generated"
	REPORT_GET_FAILED             = "Failed to generate progress report"
	FEEDBACK_SAVE_SUCCESS         = "Feedback received"
	FEEDBACK_SAVE_FAILED          = "Failed to save feedback"
	CARTOON_FEEDBACK_SAVE_SUCCESS = "Cartoon feedback saved"
	CARTOON_FEEDBACK_SAVE_FAILED  = "Failed to save cartoon feedback"
)
