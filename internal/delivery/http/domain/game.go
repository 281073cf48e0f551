package domain

var (
	STATUS_SUCCESS = "Mathplay Backend is running"

	TOPIC_LIST_SUCCESS = "Topics retrieved"
	TOPIC_LIST_FAILED  = "Failed to retrieve topics"

	QUESTION_GENERATE_SUCCESS = "Questions generated"
	QUESTION_GENERATE_FAILED  = "Failed to generate questions"

	GAME_START_SUCCESS      = "Game started"
	GAME_START_FAILED       = "Failed to start game"
	GAME_GET_SUCCESS        = "Game state retrieved"
	GAME_GET_FAILED         = "Failed to retrieve game state"
	GAME_ANSWER_SUCCESS     = "Answer submitted"
	GAME_ANSWER_IGNORED     = "Answer ignored while feedback is showing"
	GAME_ANSWER_FAILED      = "Failed to submit answer"
	GAME_TAP_SUCCESS        = "Mark toggled"
	GAME_TAP_FAILED         = "Failed to toggle mark"
	GAME_DIFFICULTY_SUCCESS = "Difficulty changed"
	GAME_DIFFICULTY_FAILED  = "Failed to change difficulty"
	GAME_TOPIC_SUCCESS      = "Topic changed"
	GAME_TOPIC_FAILED       = "Failed to change topic"
	GAME_END_SUCCESS        = "Game ended"
	GAME_END_FAILED         = "Failed to end game"
)
