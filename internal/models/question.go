package models

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

type Question struct {
	ID                 string     `json:"id" bson:"_id"`
	Module             string     `json:"module" bson:"module"`
	Text               string     `json:"question_text" bson:"question_text"`
	Options            []string   `json:"options" bson:"options"`
	CorrectOptionIndex int        `json:"correct_option_index" bson:"correct_option_index"`
	Difficulty         Difficulty `json:"difficulty" bson:"difficulty"`
	CreatedBy          string     `json:"created_by,omitempty" bson:"created_by,omitempty"`
}
