package cv

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"talentscope/internal/model"
)

// Pools for synthetic Barcelona tech-scene profiles.
var (
	firstNames = []string{
		"Alex", "Maria", "David", "Sofia", "Carlos", "Elena", "Miguel", "Laura",
		"Pablo", "Ana", "Jorge", "Carmen", "Luis", "Isabel", "Antonio", "Marta",
		"Francisco", "Cristina", "Manuel", "Beatriz",
	}
	lastNames = []string{
		"Garcia", "Rodriguez", "Gonzalez", "Fernandez", "Lopez", "Martinez",
		"Sanchez", "Perez", "Gomez", "Martin", "Jimenez", "Ruiz", "Hernandez",
		"Diaz", "Moreno", "Alvarez", "Romero", "Alonso", "Gutierrez", "Navarro",
	}
	techRoles = []string{
		"Senior Software Engineer", "Frontend Developer", "Backend Developer",
		"Full Stack Developer", "DevOps Engineer", "Data Scientist",
		"Product Manager", "UX Designer", "Mobile Developer", "Cloud Architect",
		"Tech Lead", "Engineering Manager", "Data Engineer",
		"Machine Learning Engineer", "QA Engineer",
	}
	techSkills = []string{
		"JavaScript", "TypeScript", "React", "Vue.js", "Angular", "Node.js",
		"Python", "Java", "Go", "PHP", "Docker", "Kubernetes", "AWS", "Azure",
		"GCP", "MongoDB", "PostgreSQL", "MySQL", "Redis", "GraphQL",
		"REST APIs", "Microservices", "CI/CD", "Git", "Agile", "Scrum",
	}
	designSkills = []string{
		"Figma", "Sketch", "Adobe Creative Suite", "UI/UX Design",
		"Prototyping", "User Research", "Wireframing", "Design Systems",
	}
	businessSkills = []string{
		"Project Management", "Agile", "Scrum", "Leadership",
		"Strategic Planning", "Business Analysis", "Data Analysis",
		"Marketing", "Communication", "Negotiation",
	}
	companies = []string{
		"Glovo", "Typeform", "Wallapop", "Factorial", "TravelPerk", "Holded",
		"Kantox", "Carto", "King Digital Entertainment", "Vueling", "Mango",
		"CaixaBank", "Telefonica",
	}
	universities = []string{
		"Universitat Politecnica de Catalunya", "Universitat de Barcelona",
		"Universitat Autonoma de Barcelona", "Universitat Pompeu Fabra",
		"ESADE Business School", "IE University",
	}
	degrees = []string{"Bachelor", "Master", "PhD"}
)

// Generate produces one synthetic candidate profile.
func Generate() *model.Candidate {
	c := model.NewCandidate(model.SourceGenerated)

	firstName := pick(firstNames)
	lastName := pick(lastNames)
	c.Name = firstName + " " + lastName
	c.Role = pick(techRoles)
	c.ExperienceYears = 1 + rand.Intn(10)
	c.Email = strings.ToLower(firstName) + "." + strings.ToLower(lastName) + "@email.com"
	c.Phone = fmt.Sprintf("+34 %d %d %d", 600+rand.Intn(300), 100+rand.Intn(900), 100+rand.Intn(900))
	c.Location = "Barcelona, Spain"
	c.Skills = skillsForRole(c.Role)
	c.Experience = experienceTimeline(c.Role, c.ExperienceYears)
	for _, exp := range c.Experience {
		c.Companies = append(c.Companies, exp.Company)
	}

	university := pick(universities)
	degree := pick(degrees)
	c.Education = []model.Education{{
		Degree: degree + " in Computer Science",
		School: university,
		Year:   "2015 - 2019",
	}}
	c.Languages = []string{"Spanish (Native)", "English (Fluent)", "Catalan (Native)"}
	c.Certifications = []string{"AWS Certified", "Scrum Master Certified"}
	c.Summary = fmt.Sprintf(
		"Experienced %s with %d years of expertise in %s. Passionate about delivering high-quality solutions in Barcelona's tech ecosystem.",
		strings.ToLower(c.Role), c.ExperienceYears, strings.Join(headOf(c.Skills, 3), ", "))

	// Composed full text doubles as the fallback search target.
	c.RawContent = fmt.Sprintf(
		"%s is a %s with %d years of experience. Skills: %s. Studied at %s (%s). Previously worked at %s.",
		c.Name, c.Role, c.ExperienceYears, strings.Join(c.Skills, ", "),
		university, degree, strings.Join(c.Companies, ", "))

	return c
}

func skillsForRole(role string) []string {
	var pool []string
	switch {
	case strings.Contains(role, "Developer") || strings.Contains(role, "Engineer") || strings.Contains(role, "Architect"):
		pool = techSkills
	case strings.Contains(role, "Designer"):
		pool = designSkills
	default:
		pool = businessSkills
	}
	count := 4 + rand.Intn(5)
	if count > len(pool) {
		count = len(pool)
	}
	picked := append([]string(nil), pool...)
	rand.Shuffle(len(picked), func(i, j int) { picked[i], picked[j] = picked[j], picked[i] })
	return picked[:count]
}

// experienceTimeline splits the total experience across 1-4 year stints,
// most recent first.
func experienceTimeline(role string, years int) []model.Experience {
	entries := []model.Experience{}
	currentYear := time.Now().Year()
	remaining := years

	for remaining > 0 {
		stint := 1 + rand.Intn(4)
		if stint > remaining {
			stint = remaining
		}
		company := pick(companies)
		start := currentYear - remaining
		end := "Present"
		if remaining != stint {
			end = fmt.Sprintf("%d", start+stint)
		}
		entries = append([]model.Experience{{
			Position:    role,
			Company:     company,
			Duration:    fmt.Sprintf("%d - %s", start, end),
			Location:    "Barcelona, Spain",
			Description: fmt.Sprintf("Led development projects and collaborated with cross-functional teams at %s.", company),
		}}, entries...)
		remaining -= stint
	}
	return entries
}

func pick(pool []string) string {
	return pool[rand.Intn(len(pool))]
}

func headOf(items []string, n int) []string {
	if len(items) < n {
		return items
	}
	return items[:n]
}
