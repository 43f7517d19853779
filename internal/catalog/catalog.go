// Package catalog holds the keyword and pattern catalogues that drive field
// extraction and keyword-overlap scoring. The catalogues are data, compiled
// once at package load; extraction and matching code iterates over them
// instead of embedding patterns inline.
package catalog

import "regexp"

// ResumeSkillPatterns match technology names in lower-cased resume text,
// grouped by category (languages, web, databases, cloud/devops, data
// science, office/productivity).
var ResumeSkillPatterns = compileAll(
	`(?i)\b(?:python|java|javascript|c\+\+|c#|php|ruby|go|rust|swift|kotlin|scala|r|matlab)\b`,
	`(?i)\b(?:html|css|react|angular|vue|node\.?js|express|django|flask|spring|laravel)\b`,
	`(?i)\b(?:mysql|postgresql|mongodb|redis|elasticsearch|oracle|sql\s*server|sqlite)\b`,
	`(?i)\b(?:aws|azure|gcp|docker|kubernetes|jenkins|git|github|gitlab|terraform)\b`,
	`(?i)\b(?:pandas|numpy|scikit-learn|tensorflow|pytorch|keras|spark|hadoop|tableau|power\s*bi)\b`,
	`(?i)\b(?:linux|windows|macos|agile|scrum|jira|confluence|slack|microsoft\s*office)\b`,
)

// MatchSkillPatterns is the narrower pattern set used by keyword-overlap
// scoring. It intentionally differs from ResumeSkillPatterns.
var MatchSkillPatterns = compileAll(
	`(?i)\b(?:python|java|javascript|c\+\+|c#|php|ruby|go|rust|swift|kotlin)\b`,
	`(?i)\b(?:react|angular|vue|node\.?js|django|flask|spring|laravel)\b`,
	`(?i)\b(?:mysql|postgresql|mongodb|redis|elasticsearch|oracle)\b`,
	`(?i)\b(?:aws|azure|gcp|docker|kubernetes|jenkins|git|github)\b`,
)

// SkillKeywords are matched by plain substring containment against
// lower-cased text during keyword-overlap scoring.
var SkillKeywords = []string{
	"python", "java", "javascript", "react", "angular", "vue", "node.js",
	"django", "flask", "spring", "mysql", "postgresql", "mongodb",
	"aws", "azure", "docker", "kubernetes", "git", "machine learning",
	"data science", "artificial intelligence", "deep learning",
}

// EducationKeywords drive sentence collection during resume field extraction.
var EducationKeywords = []string{
	"bachelor", "master", "phd", "doctorate", "degree", "diploma", "certificate",
	"b.tech", "b.e", "m.tech", "m.e", "mba", "mca", "bca", "b.sc", "m.sc",
	"engineering", "computer science", "information technology", "software",
	"university", "college", "institute", "school",
}

// ExperienceKeywords drive sentence collection during resume field extraction.
var ExperienceKeywords = []string{
	"experience", "worked", "developed", "managed", "led", "created", "designed",
	"implemented", "built", "maintained", "optimized", "collaborated", "achieved",
	"years", "months", "intern", "internship", "trainee", "junior", "senior",
	"lead", "manager", "developer", "engineer", "analyst", "consultant",
}

// MatchExperienceKeywords is the shorter list used for experience-overlap
// scoring between a job description and a resume.
var MatchExperienceKeywords = []string{
	"experience", "years", "worked", "developed", "managed", "led",
	"created", "designed", "implemented", "built", "maintained",
}

// MatchEducationKeywords is the shorter list used for education-overlap
// scoring between a job description and a resume.
var MatchEducationKeywords = []string{
	"degree", "bachelor", "master", "phd", "university", "college",
	"engineering", "computer science", "information technology",
}

// DegreePatterns match degree abbreviations and their spelled-out forms.
var DegreePatterns = compileAll(
	`(?i)b\.?tech|bachelor of technology`,
	`(?i)m\.?tech|master of technology`,
	`(?i)b\.?e\.?|bachelor of engineering`,
	`(?i)m\.?e\.?|master of engineering`,
	`(?i)mba|master of business administration`,
	`(?i)mca|master of computer applications`,
	`(?i)bca|bachelor of computer applications`,
	`(?i)b\.?sc|bachelor of science`,
	`(?i)m\.?sc|master of science`,
	`(?i)phd|doctorate`,
)

// JobTitlePatterns match common job titles in resume text.
var JobTitlePatterns = compileAll(
	`(?i)(?:software|web|mobile|data|ml|ai)\s+(?:engineer|developer|analyst|scientist)`,
	`(?i)(?:senior|junior|lead|principal)\s+(?:engineer|developer|analyst)`,
	`(?i)(?:project|product|technical)\s+(?:manager|lead)`,
	`(?i)(?:full\s*stack|front\s*end|back\s*end)\s+developer`,
	`(?i)(?:data|business|system)\s+analyst`,
)

// Contact patterns run against the original-case text. Email matching is
// case-sensitive on purpose; profile URLs are not.
var (
	EmailPattern    = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	PhonePattern    = regexp.MustCompile(`(?:\+?1[-.\s]?)?\(?[0-9]{3}\)?[-.\s]?[0-9]{3}[-.\s]?[0-9]{4}`)
	LinkedInPattern = regexp.MustCompile(`(?i)linkedin\.com/in/[\w-]+`)
	GitHubPattern   = regexp.MustCompile(`(?i)github\.com/[\w-]+`)
)

// YearsOfExperiencePatterns are tried in order against lower-cased resume
// text; the first pattern whose capture group parses as an integer wins.
var YearsOfExperiencePatterns = compileAll(
	`(?i)(\d+)\s*(?:\+)?\s*years?\s+(?:of\s+)?experience`,
	`(?i)experience\s+(?:of\s+)?(\d+)\s*(?:\+)?\s*years?`,
	`(?i)(\d+)\s*(?:\+)?\s*yrs?\s+(?:of\s+)?(?:exp|experience)`,
	`(?i)(?:exp|experience)\s+(?:of\s+)?(\d+)\s*(?:\+)?\s*yrs?`,
)

// RequiredYearsPattern extracts the required years of experience from a job
// description ("3+ years of experience"). Only the first match is used.
var RequiredYearsPattern = regexp.MustCompile(`(?i)(\d+)\s*(?:\+)?\s*years?\s+(?:of\s+)?experience`)

// TokenNormalization rewrites a token variant to its canonical form before
// embedding. The rewrites are applied in order.
type TokenNormalization struct {
	From string
	To   string
}

// TokenNormalizations is the fixed normalization table applied by text
// preprocessing.
var TokenNormalizations = []TokenNormalization{
	{"c++", "cpp"},
	{"c#", "csharp"},
	{".net", "dotnet"},
	{"node.js", "nodejs"},
	{"react.js", "react"},
	{"vue.js", "vue"},
}

func compileAll(patterns ...string) []*regexp.Regexp {
	compiled := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		compiled = append(compiled, regexp.MustCompile(p))
	}
	return compiled
}
