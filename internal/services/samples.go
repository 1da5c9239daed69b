package services

import (
	"strings"

	"alfredoptarigan/ats-screener/internal/models"
)

type Sample struct {
	Title string
	Text  string
}

func (s Sample) Slug() string {
	return models.Slugify(s.Title)
}

func (s Sample) Filename() string {
	return SampleFilename(s.Title)
}

// SampleFilename turns "Python Developer" into "Python_Developer_Resume.txt".
func SampleFilename(title string) string {
	return strings.ReplaceAll(title, " ", "_") + "_Resume.txt"
}

func Samples() []Sample {
	out := make([]Sample, len(samples))
	copy(out, samples)
	return out
}

// FindSample matches by slug or case-insensitive title.
func FindSample(key string) (Sample, bool) {
	slug := models.Slugify(key)
	for _, s := range samples {
		if strings.EqualFold(s.Title, strings.TrimSpace(key)) || (slug != "" && s.Slug() == slug) {
			return s, true
		}
	}
	return Sample{}, false
}

var samples = []Sample{
	{Title: "Python Developer", Text: samplePythonDeveloper},
	{Title: "Data Scientist", Text: sampleDataScientist},
	{Title: "Full Stack Developer", Text: sampleFullStackDeveloper},
	{Title: "DevOps Engineer", Text: sampleDevOpsEngineer},
}

const samplePythonDeveloper = `John Doe
Email: john.doe@email.com | Phone: (555) 123-4567 | LinkedIn: linkedin.com/in/johndoe

PROFESSIONAL SUMMARY
Experienced Python Developer with 6+ years of experience in building scalable web applications and APIs.
Proficient in Django, Flask, and FastAPI frameworks. Strong background in PostgreSQL, Docker, and AWS cloud services.

TECHNICAL SKILLS
Languages: Python, JavaScript, SQL, Bash
Frameworks: Django, Flask, FastAPI, React
Databases: PostgreSQL, MySQL, MongoDB, Redis
Tools: Docker, Kubernetes, Git, Jenkins, Terraform
Cloud: AWS (EC2, S3, RDS, Lambda), GCP

PROFESSIONAL EXPERIENCE
Senior Python Developer | Tech Corp | 2020-Present
• Developed RESTful APIs using FastAPI serving 1M+ requests daily
• Implemented microservices architecture using Docker and Kubernetes
• Optimized database queries reducing response time by 40%

Python Developer | StartupXYZ | 2018-2020
• Built web applications using Django and PostgreSQL
• Integrated machine learning models for recommendation system
• Implemented CI/CD pipelines using Jenkins and GitHub Actions

EDUCATION
Bachelor of Science in Computer Science | University of Technology | 2018
`

const sampleDataScientist = `Sarah Johnson
Email: sarah.j@email.com | Phone: (555) 987-6543 | GitHub: github.com/sarahj

PROFESSIONAL SUMMARY
Data Scientist with 4 years of experience in machine learning, deep learning, and statistical analysis.
Expertise in Python, TensorFlow, and PyTorch. Proven track record in NLP and computer vision projects.

TECHNICAL SKILLS
Programming: Python, R, SQL, Scala
ML/DL: TensorFlow, PyTorch, Keras, Scikit-learn
Data Tools: Pandas, NumPy, Matplotlib, Seaborn, Jupyter
Big Data: Spark, Hadoop, Hive
Cloud: AWS SageMaker, Azure ML
Specializations: NLP, Computer Vision, MLOps

PROFESSIONAL EXPERIENCE
Data Scientist | AI Solutions Inc. | 2021-Present
• Developed deep learning models for image classification achieving 95% accuracy
• Built NLP pipeline for sentiment analysis processing 100K+ documents daily
• Implemented MLOps practices reducing model deployment time by 60%

Junior Data Scientist | DataCorp | 2020-2021
• Created machine learning models for customer churn prediction
• Performed statistical analysis on large datasets using Pandas and NumPy
• Visualized insights using Tableau and Power BI

EDUCATION
Master of Science in Data Science | Data University | 2020
Bachelor of Science in Statistics | Stats College | 2018
`

const sampleFullStackDeveloper = `Michael Chen
Email: m.chen@email.com | Portfolio: michaelchen.dev

PROFESSIONAL SUMMARY
Full Stack Developer with 5 years of experience in modern web development.
Expert in JavaScript, React, Node.js, and MongoDB. Passionate about creating responsive and user-friendly applications.

TECHNICAL SKILLS
Frontend: JavaScript, TypeScript, React, Redux, Next.js, HTML, CSS, Tailwind CSS
Backend: Node.js, Express, GraphQL, REST API
Databases: MongoDB, PostgreSQL, Redis
Tools: Git, Docker, Webpack, Jest, CI/CD
Cloud: AWS, Vercel, Netlify

PROFESSIONAL EXPERIENCE
Senior Full Stack Developer | WebTech Solutions | 2021-Present
• Led development of e-commerce platform using React and Node.js
• Implemented GraphQL API reducing data over-fetching by 50%
• Mentored junior developers and conducted code reviews

Full Stack Developer | Digital Agency | 2019-2021
• Built responsive web applications using React and Express
• Integrated third-party APIs and payment gateways
• Optimized application performance improving load times by 35%

EDUCATION
Bachelor of Science in Computer Science | Tech University | 2019
`

const sampleDevOpsEngineer = `Priya Natarajan
Email: priya.n@email.com | GitHub: github.com/priyan

PROFESSIONAL SUMMARY
DevOps Engineer with 5 years of experience automating cloud infrastructure and delivery pipelines.
Hands-on with Docker, Kubernetes, Terraform, and AWS. Comfortable owning on-call for production Linux fleets.

TECHNICAL SKILLS
Containers: Docker, Kubernetes, Helm
Infrastructure as Code: Terraform, Ansible, CloudFormation
CI/CD: Jenkins, GitLab CI, GitHub Actions, ArgoCD
Monitoring: Prometheus, Grafana, Datadog
Scripting: Python, Bash, Go
Cloud: AWS, GCP

PROFESSIONAL EXPERIENCE
Senior DevOps Engineer | CloudScale | 2022-Present
• Migrated 40 services to Kubernetes with zero-downtime rollouts
• Built Terraform modules shared by 12 product teams
• Cut CI/CD pipeline duration by 45% with Jenkins agent autoscaling

Systems Engineer | HostWorks | 2019-2022
• Managed Linux servers and Nginx load balancers for 200+ sites
• Automated server provisioning with Ansible playbooks
• Introduced Prometheus alerting and Grafana dashboards

EDUCATION
Bachelor of Engineering in Information Technology | State Institute | 2019
`
