package config

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"

	"alfredoptarigan/ats-screener/internal/models"
)

var ErrProfileNotFound = errors.New("job profile not found")

// Catalog is the read-only screening configuration shared by every request.
type Catalog struct {
	Vocabulary models.SkillVocabulary
	Profiles   []models.JobProfile
	Categories []models.SkillCategory
	Weights    models.ScoreWeights
}

type catalogFile struct {
	Vocabulary []string               `mapstructure:"vocabulary"`
	Categories []models.SkillCategory `mapstructure:"categories"`
	Profiles   []models.JobProfile    `mapstructure:"profiles"`
	Weights    *models.ScoreWeights   `mapstructure:"weights"`
}

// LoadCatalog returns the built-in catalog when path is empty. Otherwise every
// section present in the file (yaml, json or toml) replaces the built-in one.
func LoadCatalog(path string) (*Catalog, error) {
	catalog := DefaultCatalog()
	if path == "" {
		return catalog, nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	var file catalogFile
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &file,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create catalog decoder: %w", err)
	}
	if err := decoder.Decode(v.AllSettings()); err != nil {
		return nil, fmt.Errorf("failed to decode catalog file: %w", err)
	}

	if len(file.Vocabulary) > 0 {
		catalog.Vocabulary = models.NewSkillVocabulary(file.Vocabulary...)
	}
	if len(file.Categories) > 0 {
		catalog.Categories = file.Categories
	}
	if len(file.Profiles) > 0 {
		catalog.Profiles = file.Profiles
	}
	if file.Weights != nil {
		catalog.Weights = *file.Weights
	}

	if err := catalog.Validate(); err != nil {
		return nil, fmt.Errorf("invalid catalog %s: %w", path, err)
	}

	return catalog, nil
}

func (c *Catalog) Validate() error {
	if len(c.Profiles) == 0 {
		return errors.New("at least one job profile is required")
	}

	seen := make(map[string]string, len(c.Profiles))
	for _, p := range c.Profiles {
		slug := p.Slug()
		if slug == "" {
			return fmt.Errorf("job profile %q has no usable name", p.Name)
		}
		if other, ok := seen[slug]; ok {
			return fmt.Errorf("job profiles %q and %q share the key %q", other, p.Name, slug)
		}
		if p.MinExperienceYears < 0 {
			return fmt.Errorf("job profile %q: negative minimum experience", p.Name)
		}
		seen[slug] = p.Name
	}

	return ValidateWeights(c.Weights)
}

// ValidateWeights requires both weights in [0,1] and a sum of 1 so the
// blended score stays within [0,100].
func ValidateWeights(w models.ScoreWeights) error {
	if w.Required < 0 || w.Required > 1 || w.Preferred < 0 || w.Preferred > 1 {
		return fmt.Errorf("score weights must be within [0,1], got %.2f/%.2f", w.Required, w.Preferred)
	}
	if math.Abs(w.Required+w.Preferred-1) > 1e-6 {
		return fmt.Errorf("score weights must sum to 1, got %.4f", w.Required+w.Preferred)
	}
	return nil
}

// FindProfile looks a profile up by slug or by case-insensitive name.
func (c *Catalog) FindProfile(key string) (models.JobProfile, error) {
	key = strings.TrimSpace(key)
	slug := models.Slugify(key)
	for _, p := range c.Profiles {
		if strings.EqualFold(p.Name, key) || (slug != "" && p.Slug() == slug) {
			return p, nil
		}
	}
	return models.JobProfile{}, fmt.Errorf("%w: %s", ErrProfileNotFound, key)
}

// DefaultProfile is the first profile of the catalog.
func (c *Catalog) DefaultProfile() models.JobProfile {
	return c.Profiles[0]
}

func DefaultCatalog() *Catalog {
	return &Catalog{
		Vocabulary: models.NewSkillVocabulary(defaultSkills...),
		Profiles:   cloneProfiles(defaultProfiles),
		Categories: cloneCategories(defaultCategories),
		Weights:    models.DefaultScoreWeights,
	}
}

func cloneProfiles(in []models.JobProfile) []models.JobProfile {
	out := make([]models.JobProfile, len(in))
	for i, p := range in {
		p.RequiredSkills = append([]string(nil), p.RequiredSkills...)
		p.PreferredSkills = append([]string(nil), p.PreferredSkills...)
		out[i] = p
	}
	return out
}

func cloneCategories(in []models.SkillCategory) []models.SkillCategory {
	out := make([]models.SkillCategory, len(in))
	for i, c := range in {
		c.Skills = append([]string(nil), c.Skills...)
		out[i] = c
	}
	return out
}

var defaultProfiles = []models.JobProfile{
	{
		Name:               "Senior Python Developer",
		RequiredSkills:     []string{"Python", "Django", "Flask", "REST API", "PostgreSQL", "Docker", "Git", "AWS"},
		PreferredSkills:    []string{"Machine Learning", "Kubernetes", "Redis", "Celery", "FastAPI", "Microservices"},
		MinExperienceYears: 5,
		Description:        "Looking for a senior Python developer with strong backend development skills",
	},
	{
		Name:               "Data Scientist",
		RequiredSkills:     []string{"Python", "Machine Learning", "Deep Learning", "TensorFlow", "PyTorch", "Pandas", "NumPy", "SQL"},
		PreferredSkills:    []string{"NLP", "Computer Vision", "Spark", "Hadoop", "AWS", "Docker", "MLOps"},
		MinExperienceYears: 3,
		Description:        "Seeking a data scientist with expertise in ML/DL and statistical analysis",
	},
	{
		Name:               "Full Stack Developer",
		RequiredSkills:     []string{"JavaScript", "React", "Node.js", "HTML", "CSS", "MongoDB", "Express", "Git"},
		PreferredSkills:    []string{"TypeScript", "Next.js", "GraphQL", "Docker", "AWS", "Redux", "Webpack"},
		MinExperienceYears: 4,
		Description:        "Need a full stack developer proficient in modern web technologies",
	},
	{
		Name:               "DevOps Engineer",
		RequiredSkills:     []string{"Docker", "Kubernetes", "CI/CD", "Jenkins", "AWS", "Linux", "Terraform", "Ansible"},
		PreferredSkills:    []string{"Python", "Bash", "Prometheus", "Grafana", "ELK Stack", "GitOps", "ArgoCD"},
		MinExperienceYears: 4,
		Description:        "Looking for a DevOps engineer to manage cloud infrastructure",
	},
}

var defaultCategories = []models.SkillCategory{
	{Name: "Languages", Skills: []string{"Python", "Java", "JavaScript", "TypeScript", "C++", "C#", "Ruby", "Go", "Rust", "Swift", "Kotlin", "PHP", "R"}},
	{Name: "Frameworks", Skills: []string{"React", "Angular", "Vue.js", "Django", "Flask", "Spring Boot", "Express", "FastAPI", "Next.js"}},
	{Name: "Databases", Skills: []string{"MySQL", "PostgreSQL", "MongoDB", "Redis", "Elasticsearch", "Cassandra", "Oracle", "SQL Server"}},
	{Name: "Cloud/DevOps", Skills: []string{"AWS", "Azure", "GCP", "Docker", "Kubernetes", "Jenkins", "Terraform", "Ansible"}},
	{Name: "Data Science", Skills: []string{"Machine Learning", "Deep Learning", "TensorFlow", "PyTorch", "Pandas", "NumPy", "NLP"}},
}

var defaultSkills = []string{
	// Programming languages
	"Python", "Java", "JavaScript", "TypeScript", "C++", "C#", "Ruby", "Go", "Rust", "Swift", "Kotlin",
	"PHP", "R", "MATLAB", "Scala", "Perl", "Objective-C", "Dart", "Julia", "Elixir", "Clojure",

	// Web
	"HTML", "CSS", "React", "Angular", "Vue.js", "Node.js", "Express", "Django", "Flask", "FastAPI",
	"Spring Boot", "Ruby on Rails", "ASP.NET", "Laravel", "Next.js", "Nuxt.js", "Gatsby", "Redux",
	"GraphQL", "REST API", "SOAP", "WebSockets", "jQuery", "Bootstrap", "Tailwind CSS", "Sass",

	// Databases
	"MySQL", "PostgreSQL", "MongoDB", "Redis", "Elasticsearch", "Cassandra", "Oracle", "SQL Server",
	"SQLite", "DynamoDB", "Neo4j", "CouchDB", "MariaDB", "Firestore", "RDS", "DocumentDB",

	// Cloud & DevOps
	"AWS", "Azure", "GCP", "Docker", "Kubernetes", "Jenkins", "GitLab CI", "GitHub Actions",
	"Terraform", "Ansible", "Puppet", "Chef", "CloudFormation", "CircleCI", "Travis CI",
	"Prometheus", "Grafana", "ELK Stack", "Datadog", "New Relic", "Nginx", "Apache",

	// Data science & ML
	"Machine Learning", "Deep Learning", "TensorFlow", "PyTorch", "Keras", "Scikit-learn",
	"Pandas", "NumPy", "Matplotlib", "Seaborn", "Jupyter", "NLP", "Computer Vision",
	"Spark", "Hadoop", "Tableau", "Power BI", "Statistics", "Data Mining", "MLOps",

	// Other
	"Git", "Linux", "Windows Server", "Agile", "Scrum", "JIRA", "Confluence", "Microservices",
	"API Development", "Unit Testing", "Integration Testing", "CI/CD", "DevOps", "Cloud Computing",
	"Cybersecurity", "Blockchain", "IoT", "AR/VR", "Mobile Development", "Android", "iOS",
}
