package services

import (
	"fmt"
	"sort"
	"strings"
)

// PromptTask identifies one of the fixed analysis operations.
type PromptTask string

const (
	TaskGeneralFeedback PromptTask = "general-feedback"
	TaskATSFeedback     PromptTask = "ats-feedback"
	TaskEnhance         PromptTask = "enhance"
	TaskRoadmap         PromptTask = "roadmap"
	TaskOpportunity     PromptTask = "opportunity"
	TaskMarketTrends    PromptTask = "market-trends"
	TaskCoverLetter     PromptTask = "cover-letter"
)

// Parameter names accepted by the task templates.
const (
	ParamResumeText     = "resume_text"
	ParamTargetJob      = "target_job"
	ParamJobDescription = "job_description"
	ParamNotes          = "notes"
)

// TaskDefinition binds a task to its fixed template and parameter sets.
// LowVariance tasks ask the model for lower-temperature output because
// their responses feed the signal parser.
type TaskDefinition struct {
	ID             PromptTask
	Label          string
	Template       string
	RequiredParams []string
	OptionalParams []string
	HasScore       bool
	HasTrend       bool
	Downloadable   bool
	LowVariance    bool
}

const generalFeedbackTemplate = `You are a strict but fair hiring manager. Analyze the following resume text.
Provide a 'Resume Score' out of 100, formatted exactly as: Resume Score: [score]/100
Then, give bullet-pointed feedback on:
- Clarity and Impact: Are the achievements quantified?
- Formatting: Is it easy to read?
- Biased Language: Flag any non-inclusive language and suggest alternatives.

Format the entire response in Markdown. Do not add any conversational wrapper.
---
Resume Text:
{{.resume_text}}
---`

const atsFeedbackTemplate = `You are an Applicant Tracking System (ATS) simulator. Compare the resume below against the job description and report how well it would pass automated screening.
Provide an 'ATS Score' out of 100, formatted exactly as: ATS Score: [score]/100
Then, give bullet-pointed feedback on:
- Keyword Match: Which required keywords from the job description are present or missing?
- Section Structure: Are standard sections (Experience, Education, Skills) detectable?
- Formatting Risks: Tables, graphics, or layouts that ATS parsers mishandle.

Format the entire response in Markdown. Do not add any conversational wrapper.
---
Job Description:
{{.job_description}}
---
Resume Text:
{{.resume_text}}
---`

const enhanceTemplate = `You are an expert resume writer. Rewrite the resume below to be clearer and more impactful: quantify achievements, use strong action verbs, and remove filler.
Preserve all factual content. Do not invent experience, employers, or dates.
If a target role is given, emphasize the experience most relevant to it. Target role: {{.target_job}}

Return ONLY the rewritten resume in Markdown. No commentary before or after.
---
Resume Text:
{{.resume_text}}
---`

const roadmapTemplate = `You are a senior career coach. Based on the resume below, build a practical career roadmap toward the target role of "{{.target_job}}".
Structure the response as:
1. **Gap Analysis:** Skills and experience the candidate is missing for the target role.
2. **6-Month Plan:** Concrete milestones with suggested courses, certifications, or projects.
3. **12-Month Plan:** Larger milestones and the roles to apply for along the way.

Take these personal notes from the candidate into account: {{.notes}}

Format the entire response in Markdown. Keep it under 500 words.
---
Resume Text:
{{.resume_text}}
---`

const opportunityTemplate = `Based on the resume below, analyze the candidate's fit for the target role of "{{.target_job}}".
Then, suggest and score three career opportunities:
1. **Obvious Fit:** The most direct career path that matches the resume.
2. **Related Fit:** A similar role in a different industry or a slightly different function.
3. **Wildcard Fit:** An unexpected but high-potential role that leverages the candidate's unique skills.
For each, provide an 'Opportunity Score' formatted exactly as: Opportunity Score: [score]/100, and a one-sentence justification.

Format the entire response in Markdown.
---
Resume Text:
{{.resume_text}}
---`

const marketTrendsTemplate = `You are a labor-market analyst. Based on the resume below and the target role of "{{.target_job}}", report the market demand for this role.
First, output a Markdown table with exactly these columns: | Year | Demand (%) |
Include one row per year for the last five years and a projection for next year, where Demand (%) is the share of job postings in the candidate's field.
After the table, add a short Markdown summary (under 150 words) of where demand is heading and which of the candidate's skills are rising or declining in value.

Output Markdown only. Do not add any conversational wrapper.
---
Resume Text:
{{.resume_text}}
---`

const coverLetterTemplate = `You are a professional cover letter writer. Write a compelling cover letter for the role of "{{.target_job}}" using the resume and job description below.
Match the candidate's strongest achievements to the job's requirements. Keep it under 350 words, in a confident but not arrogant tone.
Take these personal notes from the candidate into account: {{.notes}}

Return ONLY the cover letter body in Markdown. No commentary before or after.
---
Job Description:
{{.job_description}}
---
Resume Text:
{{.resume_text}}
---`

// taskCatalog is the closed task set. Lookups go through TaskByID so the
// map itself stays private.
var taskCatalog = map[PromptTask]TaskDefinition{
	TaskGeneralFeedback: {
		ID:             TaskGeneralFeedback,
		Label:          "General Feedback",
		Template:       generalFeedbackTemplate,
		RequiredParams: []string{ParamResumeText},
		HasScore:       true,
		LowVariance:    true,
	},
	TaskATSFeedback: {
		ID:             TaskATSFeedback,
		Label:          "ATS Screening",
		Template:       atsFeedbackTemplate,
		RequiredParams: []string{ParamResumeText, ParamJobDescription},
		HasScore:       true,
		LowVariance:    true,
	},
	TaskEnhance: {
		ID:             TaskEnhance,
		Label:          "Enhanced Resume",
		Template:       enhanceTemplate,
		RequiredParams: []string{ParamResumeText},
		OptionalParams: []string{ParamTargetJob},
		Downloadable:   true,
	},
	TaskRoadmap: {
		ID:             TaskRoadmap,
		Label:          "Career Roadmap",
		Template:       roadmapTemplate,
		RequiredParams: []string{ParamResumeText, ParamTargetJob},
		OptionalParams: []string{ParamNotes},
	},
	TaskOpportunity: {
		ID:             TaskOpportunity,
		Label:          "Opportunity Score",
		Template:       opportunityTemplate,
		RequiredParams: []string{ParamResumeText, ParamTargetJob},
		HasScore:       true,
		LowVariance:    true,
	},
	TaskMarketTrends: {
		ID:             TaskMarketTrends,
		Label:          "Market Trends",
		Template:       marketTrendsTemplate,
		RequiredParams: []string{ParamResumeText, ParamTargetJob},
		HasTrend:       true,
		LowVariance:    true,
	},
	TaskCoverLetter: {
		ID:             TaskCoverLetter,
		Label:          "Cover Letter",
		Template:       coverLetterTemplate,
		RequiredParams: []string{ParamResumeText, ParamTargetJob, ParamJobDescription},
		OptionalParams: []string{ParamNotes},
		Downloadable:   true,
	},
}

// TaskByID resolves a task identifier against the closed task set.
func TaskByID(id string) (TaskDefinition, bool) {
	def, ok := taskCatalog[PromptTask(id)]
	return def, ok
}

// AllTasks returns the task catalog in a stable order.
func AllTasks() []TaskDefinition {
	defs := make([]TaskDefinition, 0, len(taskCatalog))
	for _, def := range taskCatalog {
		defs = append(defs, def)
	}
	sort.Slice(defs, func(i, j int) bool { return defs[i].ID < defs[j].ID })
	return defs
}

// RenderPrompt substitutes the task's parameters into its template.
// Values are inserted verbatim; rendering the same inputs always yields
// the same string. A missing required parameter fails before any
// substitution happens.
func RenderPrompt(task TaskDefinition, params map[string]string) (string, error) {
	for _, name := range task.RequiredParams {
		if _, ok := params[name]; !ok {
			return "", &MissingParameterError{Name: name}
		}
	}

	rendered := task.Template
	for _, name := range task.RequiredParams {
		rendered = strings.ReplaceAll(rendered, placeholder(name), params[name])
	}
	for _, name := range task.OptionalParams {
		rendered = strings.ReplaceAll(rendered, placeholder(name), params[name])
	}
	return rendered, nil
}

func placeholder(name string) string {
	return fmt.Sprintf("{{.%s}}", name)
}
