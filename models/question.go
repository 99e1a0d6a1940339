package models

// AllSubjects is the synthetic subject that pools every other subject's questions.
const AllSubjects = "all"

// Question is an immutable catalog entry. ID is its 1-based position within a subject.
type Question struct {
	ID           int      `json:"id" yaml:"-"`
	Prompt       string   `json:"prompt" yaml:"prompt"`
	Options      []string `json:"options" yaml:"options"`
	CorrectIndex int      `json:"correct_index" yaml:"correct"`
	Explanation  string   `json:"explanation" yaml:"explanation"`
}

// SubjectInfo describes one catalog subject for listings
type SubjectInfo struct {
	Subject       string `json:"subject"`
	QuestionCount int    `json:"question_count"`
}
