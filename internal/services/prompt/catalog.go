// Package prompt is the catalog of analysis instructions.
//
// The catalog maps (role, analysis type) to a fixed natural-language
// directive plus a sampling temperature. It is pure data — adding a new
// combination means adding a table entry, not a branch. The instruction
// text is provider-agnostic: the same directive is sent verbatim to
// whichever provider adapter executes it.
package prompt

import (
	"errors"
	"fmt"

	"github.com/docuwise/pdf-insights-api/internal/models"
)

// ErrUnsupportedCombination is returned for any (role, analysis type)
// pair outside the catalog, e.g. role=student with analysis=resume.
var ErrUnsupportedCombination = errors.New("unsupported role/analysis combination")

// ErrUnknownRole is returned when the role itself is not in the catalog.
var ErrUnknownRole = errors.New("unknown role")

// entry holds the static policy for one (role, analysis type) pair.
type entry struct {
	instruction string
	temperature float32
}

// catalog is the full table of valid combinations.
//
// Temperatures are fixed per analysis type: extraction tasks (tables,
// legal review) run cold for determinism, creative summarization runs
// warmer. They are policy, not user-configurable knobs.
var catalog = map[models.Role]map[models.AnalysisType]entry{
	models.RoleStudent: {
		models.AnalysisSummary: {temperature: 0.7, instruction: `As an educational assistant, create a clear and concise summary of the following text.
Focus on the main ideas and key points. Format the summary with:
- Main points in bullet points
- Important concepts in bold
- Examples or supporting details as sub-bullets`},
		models.AnalysisQuestions: {temperature: 0.7, instruction: `As an educational expert, create a comprehensive set of questions based on the following text.
Generate:
- 5 multiple choice questions
- 3 short answer questions
- 2 essay/discussion questions

Format each question with:
- Clear question text
- For MCQs: 4 options with the correct answer marked
- For other questions: sample answer or key points to include`},
		models.AnalysisNotes: {temperature: 0.7, instruction: `As a study guide creator, convert the following text into organized study notes.
Include:
- Main topics and subtopics
- Key definitions
- Important concepts
- Examples or illustrations
- Bullet points for easy reading`},
	},
	models.RoleRecruiter: {
		models.AnalysisResume: {temperature: 0.5, instruction: resumeInstruction},
		// The "summary" analysis for recruiters is a job-description match.
		// When no job description is supplied it falls back to plain resume
		// parsing — see PromptFor.
		models.AnalysisSummary: {temperature: 0.5, instruction: `As a recruitment matcher, analyze this resume against the job description.
Evaluate:
- Skills match percentage
- Required qualifications met
- Experience relevance
- Potential gaps
- Overall fit score (0-100)

Job Description: %s`},
	},
	models.RoleAnalyst: {
		models.AnalysisTables: {temperature: 0.3, instruction: `As a data analyst, extract and format tables from this text.
For each table:
- Identify headers
- Organize data in rows and columns
- Add any relevant notes about the data

Present in a clean, structured format.`},
		models.AnalysisFinancial: {temperature: 0.4, instruction: `As a financial analyst, analyze this financial document and provide:
- Key financial metrics
- Important ratios
- Trends and patterns
- Notable changes or anomalies
- Risk factors

Format with clear sections and explanations.`},
	},
	models.RoleLegal: {
		models.AnalysisLegal: {temperature: 0.3, instruction: `As a legal analyst, review this legal document and provide:
- Document type and purpose
- Key clauses and terms
- Potential risks or issues
- Important dates and deadlines
- Recommendations or concerns

Format with clear sections and legal context.`},
	},
	models.RoleGeneral: {
		models.AnalysisTopics: {temperature: 0.6, instruction: `As a content analyzer, identify and categorize the main topics in this text.
Provide:
- Main themes
- Subtopics
- Key concepts
- Related terms
- Topic hierarchy

Format with clear categorization and relationships.`},
		models.AnalysisSimplify: {temperature: 0.7, instruction: `As a content simplifier, rewrite this text for a %s audience.
Make it:
- Easy to understand
- Clear and concise
- Well-structured
- Engaging
- Accessible`},
	},
}

// resumeInstruction is shared by recruiter/resume and the no-job-description
// fallback of recruiter/summary.
const resumeInstruction = `As a recruitment specialist, analyze this resume/CV and extract key information:
- Personal Information
- Skills and Expertise
- Work Experience
- Education
- Key Achievements
- Technical Proficiencies

Present the information in a structured format with clear sections.`

// PromptFor resolves the instruction text for a (role, analysis type) pair.
// It is total over the catalog's valid pairs and returns
// ErrUnsupportedCombination for everything else.
//
// additionalContext feeds the two context-sensitive entries:
//   - recruiter/summary: the job description to match against. When empty,
//     the instruction silently falls back to resume parsing (kept from the
//     original product behavior even though it may surprise users).
//   - general/simplify: the target audience, defaulting to "general".
func PromptFor(role models.Role, analysisType models.AnalysisType, additionalContext string) (string, error) {
	byType, ok := catalog[role]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownRole, role)
	}
	e, ok := byType[analysisType]
	if !ok {
		return "", fmt.Errorf("%w: %s/%s", ErrUnsupportedCombination, role, analysisType)
	}

	switch {
	case role == models.RoleRecruiter && analysisType == models.AnalysisSummary:
		if additionalContext == "" {
			return resumeInstruction, nil
		}
		return fmt.Sprintf(e.instruction, additionalContext), nil

	case role == models.RoleGeneral && analysisType == models.AnalysisSimplify:
		audience := additionalContext
		if audience == "" {
			audience = "general"
		}
		return fmt.Sprintf(e.instruction, audience), nil

	default:
		return e.instruction, nil
	}
}

// TemperatureFor returns the fixed sampling temperature for a valid pair.
func TemperatureFor(role models.Role, analysisType models.AnalysisType) (float32, error) {
	byType, ok := catalog[role]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownRole, role)
	}
	e, ok := byType[analysisType]
	if !ok {
		return 0, fmt.Errorf("%w: %s/%s", ErrUnsupportedCombination, role, analysisType)
	}
	return e.temperature, nil
}

// Combinations returns every valid (role, analysis type) pair.
// Used by validation and tests; order is unspecified.
func Combinations() map[models.Role][]models.AnalysisType {
	out := make(map[models.Role][]models.AnalysisType, len(catalog))
	for role, byType := range catalog {
		for analysisType := range byType {
			out[role] = append(out[role], analysisType)
		}
	}
	return out
}
