package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fullParams() map[string]string {
	return map[string]string{
		ParamResumeText:     "John Doe\nSoftware Engineer\n5 years of Go experience",
		ParamTargetJob:      "Data Scientist",
		ParamJobDescription: "We are hiring a Data Scientist with Python and SQL skills.",
		ParamNotes:          "I prefer remote roles.",
	}
}

func TestTaskByID(t *testing.T) {
	for _, id := range []string{
		"general-feedback", "ats-feedback", "enhance", "roadmap",
		"opportunity", "market-trends", "cover-letter",
	} {
		def, ok := TaskByID(id)
		assert.True(t, ok, "task %s should exist", id)
		assert.Equal(t, id, string(def.ID))
		assert.NotEmpty(t, def.Template)
		assert.Contains(t, def.RequiredParams, ParamResumeText,
			"every task needs the resume text")
	}

	_, ok := TaskByID("salary-negotiation")
	assert.False(t, ok)
}

func TestAllTasks_StableOrder(t *testing.T) {
	first := AllTasks()
	second := AllTasks()

	require.Len(t, first, 7)
	assert.Equal(t, first, second)
}

func TestRenderPrompt_AllTasksRender(t *testing.T) {
	for _, def := range AllTasks() {
		t.Run(string(def.ID), func(t *testing.T) {
			rendered, err := RenderPrompt(def, fullParams())
			require.NoError(t, err)

			assert.NotContains(t, rendered, "{{.",
				"all placeholders should be substituted")
			assert.Contains(t, rendered, fullParams()[ParamResumeText])
		})
	}
}

func TestRenderPrompt_Deterministic(t *testing.T) {
	def, ok := TaskByID("roadmap")
	require.True(t, ok)

	first, err := RenderPrompt(def, fullParams())
	require.NoError(t, err)
	second, err := RenderPrompt(def, fullParams())
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestRenderPrompt_MissingRequiredParameter(t *testing.T) {
	for _, def := range AllTasks() {
		for _, required := range def.RequiredParams {
			t.Run(string(def.ID)+"/"+required, func(t *testing.T) {
				params := fullParams()
				delete(params, required)

				_, err := RenderPrompt(def, params)

				var missing *MissingParameterError
				require.ErrorAs(t, err, &missing)
				assert.Equal(t, required, missing.Name)
			})
		}
	}
}

func TestRenderPrompt_OptionalParameterDefaultsToEmpty(t *testing.T) {
	def, ok := TaskByID("roadmap")
	require.True(t, ok)

	params := fullParams()
	delete(params, ParamNotes)

	rendered, err := RenderPrompt(def, params)
	require.NoError(t, err)

	assert.NotContains(t, rendered, "{{.notes}}")
	assert.NotContains(t, rendered, "I prefer remote roles.")
}

func TestRenderPrompt_ValuesInsertedVerbatim(t *testing.T) {
	def, ok := TaskByID("general-feedback")
	require.True(t, ok)

	params := map[string]string{
		ParamResumeText: "contains {{.resume_text}} and | pipes | and **markdown**",
	}

	rendered, err := RenderPrompt(def, params)
	require.NoError(t, err)

	// No escaping: delimiter-like text in a value is inserted as-is.
	assert.Contains(t, rendered, "contains {{.resume_text}} and | pipes | and **markdown**")
}

func TestTaskTemplates_CarryParserMarkers(t *testing.T) {
	scoreTasks := []string{"general-feedback", "ats-feedback", "opportunity"}
	for _, id := range scoreTasks {
		def, ok := TaskByID(id)
		require.True(t, ok)
		assert.True(t, def.HasScore)
		assert.Contains(t, def.Template, "[score]/100",
			"score tasks must instruct the model to emit the pattern the parser reads")
	}

	trends, ok := TaskByID("market-trends")
	require.True(t, ok)
	assert.True(t, trends.HasTrend)
	assert.Contains(t, trends.Template, "| Year | Demand (%) |")
}

func TestTaskCatalog_Artifacts(t *testing.T) {
	downloadable := map[string]bool{}
	for _, def := range AllTasks() {
		downloadable[string(def.ID)] = def.Downloadable
	}

	assert.True(t, downloadable["enhance"])
	assert.True(t, downloadable["cover-letter"])
	assert.False(t, downloadable["general-feedback"])
}

func TestTaskCatalog_LowVarianceMatchesParsedTasks(t *testing.T) {
	for _, def := range AllTasks() {
		if def.HasScore || def.HasTrend {
			assert.True(t, def.LowVariance,
				"%s feeds the signal parser and should ask for low-variance output", def.ID)
		}
	}
}

func TestRenderPrompt_ResumeAtEnd(t *testing.T) {
	// The original prompt layout puts the resume between --- fences at
	// the end; keep instructions ahead of the pasted document.
	def, ok := TaskByID("general-feedback")
	require.True(t, ok)

	rendered, err := RenderPrompt(def, fullParams())
	require.NoError(t, err)

	instructionIdx := strings.Index(rendered, "strict but fair hiring manager")
	resumeIdx := strings.Index(rendered, fullParams()[ParamResumeText])
	assert.Less(t, instructionIdx, resumeIdx)
}
