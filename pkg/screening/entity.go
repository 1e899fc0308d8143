package screening

import "errors"

// Input validation errors surfaced to the serving layer as 4xx responses.
var (
	ErrTextTooShort = errors.New("could not extract sufficient text from resume")
)

// MinTextLength is the minimum extracted-text size the pipeline accepts.
const MinTextLength = 50

// CategoryProb pairs one category with its classifier probability.
type CategoryProb struct {
	Category string
	Prob     float64
}

// Recommendation is one ranked role suggestion. MatchedSkills and
// MissingSkills are display previews capped at 5 entries; MissingSkills is
// populated for the top-ranked recommendation only.
type Recommendation struct {
	Role          string   `json:"role"`
	Confidence    float64  `json:"confidence"`
	SkillMatch    float64  `json:"skill_match"`
	MatchedSkills []string `json:"matched_skills"`
	MissingSkills []string `json:"missing_skills"`
}

// BestFit is the role maximizing the 70/30 blend of model confidence and
// skill match across the ranked candidates.
type BestFit struct {
	Role          string  `json:"role"`
	CombinedScore float64 `json:"combined_score"`
	Reason        string  `json:"reason"`
}

// JobLink is one external search URL for a role.
type JobLink struct {
	Site string `json:"site"`
	URL  string `json:"url"`
}

// JobOpportunities groups search links per recommended role.
type JobOpportunities struct {
	Role  string    `json:"role"`
	Links []JobLink `json:"links"`
}

// InterviewPrep carries the question bank for one recommended role:
// a static per-role set plus up to three questions derived from the
// candidate's matched skills.
type InterviewPrep struct {
	Role      string   `json:"role"`
	Questions []string `json:"questions"`
}

// Result is the full screening payload. It is assembled per request and
// either fully populated or not returned at all.
type Result struct {
	PrimaryRole       string             `json:"primary_role"`
	PrimaryConfidence float64            `json:"primary_confidence"`
	Recommendations   []Recommendation   `json:"recommendations"`
	ExtractedSkills   []string           `json:"extracted_skills"`
	BestFitRole       BestFit            `json:"best_fit_role"`
	JobOpportunities  []JobOpportunities `json:"job_opportunities"`
	InterviewPrep     []InterviewPrep    `json:"interview_prep"`
}
