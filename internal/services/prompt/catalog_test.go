// catalog_test.go — Unit tests for the prompt catalog.
//
// Go Pattern: Table-driven tests are the standard Go testing pattern.
// You define a slice of test cases (each with a name, inputs, and expected
// outputs), then loop through them.
package prompt

import (
	"errors"
	"strings"
	"testing"

	"github.com/docuwise/pdf-insights-api/internal/models"
)

// TestPromptFor_ValidPairs verifies that every valid (role, analysis type)
// combination resolves to a non-empty instruction.
func TestPromptFor_ValidPairs(t *testing.T) {
	valid := map[models.Role][]models.AnalysisType{
		models.RoleStudent:   {models.AnalysisSummary, models.AnalysisQuestions, models.AnalysisNotes},
		models.RoleRecruiter: {models.AnalysisResume, models.AnalysisSummary},
		models.RoleAnalyst:   {models.AnalysisTables, models.AnalysisFinancial},
		models.RoleLegal:     {models.AnalysisLegal},
		models.RoleGeneral:   {models.AnalysisTopics, models.AnalysisSimplify},
	}

	for role, types := range valid {
		for _, analysisType := range types {
			t.Run(string(role)+"/"+string(analysisType), func(t *testing.T) {
				instruction, err := PromptFor(role, analysisType, "")
				if err != nil {
					t.Fatalf("PromptFor(%s, %s) returned error: %v", role, analysisType, err)
				}
				if instruction == "" {
					t.Errorf("PromptFor(%s, %s) returned empty instruction", role, analysisType)
				}
			})
		}
	}
}

// TestPromptFor_InvalidPairs verifies that every pairing outside a role's
// allowed set fails with ErrUnsupportedCombination.
func TestPromptFor_InvalidPairs(t *testing.T) {
	allTypes := []models.AnalysisType{
		models.AnalysisSummary, models.AnalysisQuestions, models.AnalysisNotes,
		models.AnalysisResume, models.AnalysisTables, models.AnalysisFinancial,
		models.AnalysisLegal, models.AnalysisTopics, models.AnalysisSimplify,
	}

	for role, allowed := range Combinations() {
		allowedSet := make(map[models.AnalysisType]bool, len(allowed))
		for _, at := range allowed {
			allowedSet[at] = true
		}

		for _, analysisType := range allTypes {
			if allowedSet[analysisType] {
				continue
			}
			t.Run(string(role)+"/"+string(analysisType), func(t *testing.T) {
				_, err := PromptFor(role, analysisType, "")
				if !errors.Is(err, ErrUnsupportedCombination) {
					t.Errorf("PromptFor(%s, %s) error = %v, want ErrUnsupportedCombination", role, analysisType, err)
				}
			})
		}
	}
}

// TestPromptFor_UnknownRole verifies that a role outside the catalog is
// rejected with its own error.
func TestPromptFor_UnknownRole(t *testing.T) {
	_, err := PromptFor("astronaut", models.AnalysisSummary, "")
	if !errors.Is(err, ErrUnknownRole) {
		t.Errorf("PromptFor(astronaut, summary) error = %v, want ErrUnknownRole", err)
	}
}

// TestPromptFor_StudentSummary verifies the educational framing of the
// student summary instruction.
func TestPromptFor_StudentSummary(t *testing.T) {
	instruction, err := PromptFor(models.RoleStudent, models.AnalysisSummary, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(instruction, "educational assistant") {
		t.Errorf("student summary instruction missing %q framing:\n%s", "educational assistant", instruction)
	}
}

// TestPromptFor_RecruiterSummaryFallback verifies the job-description
// handling: with a description the match instruction embeds it, without
// one the catalog falls back to plain resume parsing.
func TestPromptFor_RecruiterSummaryFallback(t *testing.T) {
	t.Run("with job description", func(t *testing.T) {
		jd := "Senior Go engineer, 5+ years, Postgres experience"
		instruction, err := PromptFor(models.RoleRecruiter, models.AnalysisSummary, jd)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(instruction, jd) {
			t.Errorf("instruction does not embed the job description:\n%s", instruction)
		}
		if !strings.Contains(instruction, "recruitment matcher") {
			t.Errorf("instruction is not the matcher directive:\n%s", instruction)
		}
	})

	t.Run("without job description falls back to resume parsing", func(t *testing.T) {
		instruction, err := PromptFor(models.RoleRecruiter, models.AnalysisSummary, "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(instruction, "recruitment specialist") {
			t.Errorf("fallback is not the resume-parsing directive:\n%s", instruction)
		}

		resume, err := PromptFor(models.RoleRecruiter, models.AnalysisResume, "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if instruction != resume {
			t.Error("recruiter summary without context should equal the resume instruction")
		}
	})
}

// TestPromptFor_SimplifyAudience verifies the target-audience default.
func TestPromptFor_SimplifyAudience(t *testing.T) {
	tests := []struct {
		name    string
		context string
		want    string
	}{
		{"default audience", "", "for a general audience"},
		{"explicit audience", "middle school", "for a middle school audience"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			instruction, err := PromptFor(models.RoleGeneral, models.AnalysisSimplify, tt.context)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !strings.Contains(instruction, tt.want) {
				t.Errorf("instruction missing %q:\n%s", tt.want, instruction)
			}
		})
	}
}

// TestTemperatureFor verifies the static temperature policy: extraction
// tasks run cold, creative summarization runs warmer.
func TestTemperatureFor(t *testing.T) {
	tests := []struct {
		role         models.Role
		analysisType models.AnalysisType
		want         float32
	}{
		{models.RoleStudent, models.AnalysisSummary, 0.7},
		{models.RoleStudent, models.AnalysisQuestions, 0.7},
		{models.RoleStudent, models.AnalysisNotes, 0.7},
		{models.RoleRecruiter, models.AnalysisResume, 0.5},
		{models.RoleRecruiter, models.AnalysisSummary, 0.5},
		{models.RoleAnalyst, models.AnalysisTables, 0.3},
		{models.RoleAnalyst, models.AnalysisFinancial, 0.4},
		{models.RoleLegal, models.AnalysisLegal, 0.3},
		{models.RoleGeneral, models.AnalysisTopics, 0.6},
		{models.RoleGeneral, models.AnalysisSimplify, 0.7},
	}

	for _, tt := range tests {
		t.Run(string(tt.role)+"/"+string(tt.analysisType), func(t *testing.T) {
			got, err := TemperatureFor(tt.role, tt.analysisType)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("TemperatureFor(%s, %s) = %v, want %v", tt.role, tt.analysisType, got, tt.want)
			}
		})
	}

	t.Run("invalid pair", func(t *testing.T) {
		_, err := TemperatureFor(models.RoleLegal, models.AnalysisTables)
		if !errors.Is(err, ErrUnsupportedCombination) {
			t.Errorf("error = %v, want ErrUnsupportedCombination", err)
		}
	})
}
