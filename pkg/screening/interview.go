package screening

import "fmt"

// maximum number of skill-derived questions appended per role
const skillQuestionLimit = 3

// Static question bank per role. Roles without an entry fall back to the
// generic set.
var interviewQuestions = map[string][]string{
	"Data Science": {
		"How do you handle missing or imbalanced data in a dataset?",
		"Explain the bias-variance tradeoff with an example from your work.",
		"Walk us through a model you shipped: metrics, validation, monitoring.",
	},
	"Data Scientist": {
		"How do you decide between a simple interpretable model and a complex one?",
		"Describe an A/B test you designed and what you learned from it.",
		"How do you communicate uncertain results to non-technical stakeholders?",
	},
	"Machine Learning Engineer": {
		"How do you detect and handle training/serving skew?",
		"Describe your approach to versioning datasets and models.",
		"What does your feature pipeline look like in production?",
	},
	"Python Developer": {
		"How do generators differ from lists, and when do you reach for them?",
		"How do you structure a Python service for testability?",
		"What tools do you use for profiling and dependency management?",
	},
	"Java Developer": {
		"Explain the JVM memory model and a GC issue you have debugged.",
		"How does Spring dependency injection work under the hood?",
		"When would you choose composition over inheritance?",
	},
	"DevOps Engineer": {
		"Walk us through a CI/CD pipeline you built end to end.",
		"How do you manage secrets across environments?",
		"Describe an incident you handled and what changed afterwards.",
	},
	"Full Stack Developer": {
		"How do you keep API contracts stable between frontend and backend?",
		"Describe how you approach state management in a large frontend.",
		"How do you decide what runs server-side versus client-side?",
	},
	"Frontend Developer": {
		"How do you measure and improve page load performance?",
		"Explain how you make a component library accessible.",
		"What is your approach to cross-browser testing?",
	},
	"Backend Developer": {
		"How do you design an API for backwards compatibility?",
		"Describe a time you diagnosed a production latency regression.",
		"When do you choose eventual consistency over transactions?",
	},
	"Cloud Engineer": {
		"How do you design a multi-region failover strategy?",
		"Compare managed Kubernetes offerings you have used.",
		"How do you keep cloud costs observable and under control?",
	},
	"Business Analyst": {
		"How do you turn a vague stakeholder request into requirements?",
		"Describe a dashboard you built that changed a decision.",
		"How do you validate data quality before reporting on it?",
	},
	"Testing": {
		"How do you decide what to automate versus test manually?",
		"Describe your approach to flaky test triage.",
		"How do you test an API without access to its source?",
	},
}

var genericQuestions = []string{
	"Walk us through the project you are most proud of.",
	"How do you prioritize when everything is urgent?",
	"Describe a time you disagreed with a teammate and how it resolved.",
}

// interviewPrepFor assembles the question list for a role: its static bank
// (or the generic fallback) plus up to three questions derived from the
// candidate's matched skills.
func interviewPrepFor(role string, matchedSkills []string) InterviewPrep {
	base, ok := interviewQuestions[role]
	if !ok {
		base = genericQuestions
	}
	questions := make([]string, 0, len(base)+skillQuestionLimit)
	questions = append(questions, base...)
	for i, skill := range matchedSkills {
		if i == skillQuestionLimit {
			break
		}
		questions = append(questions, fmt.Sprintf("Tell us about a project where you applied %s.", skill))
	}
	return InterviewPrep{Role: role, Questions: questions}
}
