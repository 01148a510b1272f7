// Package catalog holds the static role and keyword reference data consumed by
// the scoring, insights, and matcher packages. The tables are initialized at
// process start and are read-only afterwards; callers must not modify returned
// slices in place.
package catalog

import (
	"sort"
	"strings"
)

// Role describes the hiring requirements and market metadata for one role.
type Role struct {
	Name          string
	CoreSkills    []string
	Frameworks    []string
	DailyTasks    []string
	TechStack     string
	SalaryRange   string
	GrowthOutlook string
	KeyEmployers  []string
}

var roles = []Role{
	{
		Name:          "Backend Developer",
		CoreSkills:    []string{"python", "java", "sql", "rest api", "microservices", "git"},
		Frameworks:    []string{"django", "spring", "flask", "postgresql", "redis", "docker"},
		DailyTasks:    []string{"Design and implement APIs", "Optimize database queries", "Review code and mentor peers", "Debug production incidents"},
		TechStack:     "Python/Java services, PostgreSQL, Redis, Docker, REST/gRPC APIs",
		SalaryRange:   "$95,000 - $165,000",
		GrowthOutlook: "Strong demand",
		KeyEmployers:  []string{"Stripe", "Shopify", "Atlassian", "Square"},
	},
	{
		Name:          "Cloud Architect",
		CoreSkills:    []string{"aws", "azure", "networking", "security", "terraform", "architecture"},
		Frameworks:    []string{"cloudformation", "kubernetes", "lambda", "iam", "vpc"},
		DailyTasks:    []string{"Design cloud topologies", "Set governance and cost policies", "Review migration plans", "Harden security posture"},
		TechStack:     "AWS/Azure, Terraform, Kubernetes, serverless, zero-trust networking",
		SalaryRange:   "$140,000 - $210,000",
		GrowthOutlook: "High demand",
		KeyEmployers:  []string{"Amazon", "Microsoft", "Accenture", "Capital One"},
	},
	{
		Name:          "Data Analyst",
		CoreSkills:    []string{"sql", "excel", "python", "statistics", "data visualization"},
		Frameworks:    []string{"tableau", "power bi", "pandas", "looker", "dbt"},
		DailyTasks:    []string{"Build dashboards and reports", "Clean and reconcile datasets", "Answer ad-hoc business questions", "Present findings to stakeholders"},
		TechStack:     "SQL warehouses, Python/pandas, Tableau or Power BI, dbt pipelines",
		SalaryRange:   "$70,000 - $115,000",
		GrowthOutlook: "Steady demand",
		KeyEmployers:  []string{"Deloitte", "Airbnb", "Spotify", "JPMorgan Chase"},
	},
	{
		Name:          "Data Scientist",
		CoreSkills:    []string{"python", "machine learning", "statistics", "sql", "data visualization"},
		Frameworks:    []string{"pandas", "scikit-learn", "tensorflow", "pytorch", "jupyter"},
		DailyTasks:    []string{"Frame business problems as models", "Build and validate ML models", "Run experiments and A/B tests", "Communicate results to stakeholders"},
		TechStack:     "Python, Jupyter, scikit-learn/TensorFlow, SQL warehouses, Spark",
		SalaryRange:   "$110,000 - $180,000",
		GrowthOutlook: "Very high demand",
		KeyEmployers:  []string{"Google", "Meta", "Netflix", "OpenAI"},
	},
	{
		Name:          "DevOps Engineer",
		CoreSkills:    []string{"linux", "docker", "kubernetes", "ci/cd", "aws", "scripting"},
		Frameworks:    []string{"terraform", "jenkins", "ansible", "prometheus", "helm"},
		DailyTasks:    []string{"Automate build and deploy pipelines", "Manage cloud infrastructure", "Monitor reliability and alerts", "Respond to incidents"},
		TechStack:     "Kubernetes on AWS/GCP, Terraform, GitHub Actions, Prometheus/Grafana",
		SalaryRange:   "$105,000 - $175,000",
		GrowthOutlook: "High demand",
		KeyEmployers:  []string{"Amazon", "HashiCorp", "Datadog", "Cloudflare"},
	},
	{
		Name:          "Frontend Developer",
		CoreSkills:    []string{"javascript", "typescript", "html", "css", "react", "responsive design"},
		Frameworks:    []string{"react", "next.js", "vue", "tailwind", "webpack", "jest"},
		DailyTasks:    []string{"Build accessible UI components", "Translate designs into code", "Optimize page performance", "Write component tests"},
		TechStack:     "TypeScript, React/Next.js, CSS-in-JS or Tailwind, Jest/Playwright",
		SalaryRange:   "$85,000 - $150,000",
		GrowthOutlook: "Steady demand",
		KeyEmployers:  []string{"Vercel", "Airbnb", "Figma", "Adobe"},
	},
	{
		Name:          "Full Stack Developer",
		CoreSkills:    []string{"javascript", "python", "sql", "react", "rest api", "git"},
		Frameworks:    []string{"node.js", "express", "react", "django", "mongodb", "docker"},
		DailyTasks:    []string{"Ship features across the stack", "Model data and design APIs", "Maintain CI pipelines", "Triage bugs end to end"},
		TechStack:     "TypeScript/Node or Python backends, React frontends, SQL + MongoDB",
		SalaryRange:   "$90,000 - $160,000",
		GrowthOutlook: "Strong demand",
		KeyEmployers:  []string{"Shopify", "GitLab", "Squarespace", "Intuit"},
	},
	{
		Name:          "Machine Learning Engineer",
		CoreSkills:    []string{"python", "machine learning", "deep learning", "sql", "mlops"},
		Frameworks:    []string{"pytorch", "tensorflow", "scikit-learn", "mlflow", "airflow", "docker"},
		DailyTasks:    []string{"Productionize research models", "Build training and serving pipelines", "Monitor model drift", "Optimize inference latency"},
		TechStack:     "Python, PyTorch/TensorFlow, MLflow, Airflow, GPU clusters, Kubernetes",
		SalaryRange:   "$130,000 - $200,000",
		GrowthOutlook: "Very high demand",
		KeyEmployers:  []string{"OpenAI", "NVIDIA", "Google", "Anthropic"},
	},
	{
		Name:          "Software Engineer",
		CoreSkills:    []string{"python", "java", "data structures", "algorithms", "sql", "git"},
		Frameworks:    []string{"spring", "django", "react", "docker", "kubernetes"},
		DailyTasks:    []string{"Implement and test features", "Participate in design reviews", "Debug and profile services", "Collaborate across teams"},
		TechStack:     "JVM or Python services, relational databases, containers, cloud deploys",
		SalaryRange:   "$100,000 - $170,000",
		GrowthOutlook: "Strong demand",
		KeyEmployers:  []string{"Google", "Microsoft", "Amazon", "Apple"},
	},
}

// genericKeywords is the role-independent ATS vocabulary used when no target
// role is set. It also seeds the skill vocabulary for extraction.
var genericKeywords = []string{
	"agile", "api", "automation", "aws", "azure", "c++", "c#", "ci/cd", "cloud",
	"css", "data analysis", "database", "docker", "gcp", "git", "go", "graphql",
	"html", "java", "javascript", "kubernetes", "linux", "machine learning",
	"microservices", "mongodb", "node.js", "php", "postgresql", "python", "react",
	"redis", "rest api", "ruby", "rust", "scrum", "security", "sql", "swift",
	"terraform", "testing", "typescript",
}

// actionVerbs signal ownership and impact in experience bullets.
var actionVerbs = []string{
	"achieved", "architected", "automated", "built", "created", "delivered",
	"designed", "developed", "drove", "engineered", "implemented", "improved",
	"increased", "launched", "led", "managed", "optimized", "reduced", "scaled",
	"shipped", "spearheaded", "streamlined",
}

// weakPhrases are passive constructions ATS-savvy reviewers penalize.
var weakPhrases = []string{
	"responsible for", "worked on", "helped with", "assisted in",
	"participated in", "involved in", "duties included",
}

// advancedKeywords indicate technical sophistication beyond tool listings.
var advancedKeywords = []string{
	"architecture", "ci/cd", "distributed systems", "event-driven", "kafka",
	"kubernetes", "machine learning", "microservices", "observability",
	"scalability", "sharding", "terraform",
}

// Roles returns all catalog entries ordered by role name.
func Roles() []Role {
	out := make([]Role, len(roles))
	copy(out, roles)
	return out
}

// Lookup finds a role by name. Matching is case-insensitive and tolerates
// underscore or hyphen separators ("machine_learning_engineer").
func Lookup(name string) (Role, bool) {
	want := NormalizeRoleName(name)
	if want == "" {
		return Role{}, false
	}
	for _, r := range roles {
		if NormalizeRoleName(r.Name) == want {
			return r, true
		}
	}
	return Role{}, false
}

// NormalizeRoleName lowercases a role name and collapses separator variants.
func NormalizeRoleName(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = strings.ReplaceAll(s, "_", " ")
	s = strings.ReplaceAll(s, "-", " ")
	return strings.Join(strings.Fields(s), " ")
}

// GenericKeywords returns the role-independent ATS keyword list.
func GenericKeywords() []string {
	out := make([]string, len(genericKeywords))
	copy(out, genericKeywords)
	return out
}

// ActionVerbs returns the strong action verb list.
func ActionVerbs() []string {
	out := make([]string, len(actionVerbs))
	copy(out, actionVerbs)
	return out
}

// WeakPhrases returns phrases that mark weak experience descriptions.
func WeakPhrases() []string {
	out := make([]string, len(weakPhrases))
	copy(out, weakPhrases)
	return out
}

// AdvancedKeywords returns terms that mark deeper technical sophistication.
func AdvancedKeywords() []string {
	out := make([]string, len(advancedKeywords))
	copy(out, advancedKeywords)
	return out
}

// SkillVocabulary returns the deduplicated union of the generic keywords and
// every role's core skills and frameworks, sorted ascending. This is the
// vocabulary the section extractor matches resumes against.
func SkillVocabulary() []string {
	seen := make(map[string]bool, 128)
	add := func(items []string) {
		for _, item := range items {
			key := strings.ToLower(strings.TrimSpace(item))
			if key != "" {
				seen[key] = true
			}
		}
	}
	add(genericKeywords)
	for _, r := range roles {
		add(r.CoreSkills)
		add(r.Frameworks)
	}
	out := make([]string, 0, len(seen))
	for k := range seen {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
