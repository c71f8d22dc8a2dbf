// Package models holds the hardcoded portfolio content rendered on the
// public pages. Projects, skills and the career timeline are sample data;
// the editable profile fields live in the profile package instead.
package models

type Project struct {
	ID           int      `json:"id"`
	Title        string   `json:"title"`
	Category     string   `json:"category"`
	Description  string   `json:"description"`
	Image        string   `json:"image"`
	Color        string   `json:"color"`
	Technologies []string `json:"technologies"`
	Featured     bool     `json:"featured"`
}

type Skill struct {
	Name  string `json:"name"`
	Level int    `json:"level"`
	Color string `json:"color"`
}

type TimelineEntry struct {
	Year        string `json:"year"`
	Title       string `json:"title"`
	Company     string `json:"company"`
	Description string `json:"description"`
}

var Projects = []Project{
	{
		ID:           1,
		Title:        "Neural Canvas",
		Category:     "AI Art",
		Description:  "Generative art platform using GANs to create unique digital masterpieces",
		Image:        "project1.jpg",
		Color:        "#FF6B6B",
		Technologies: []string{"Python", "TensorFlow", "React"},
		Featured:     true,
	},
	{
		ID:           2,
		Title:        "EcoVision",
		Category:     "Sustainability",
		Description:  "Real-time environmental monitoring system using satellite imagery",
		Image:        "project2.jpg",
		Color:        "#4ECDC4",
		Technologies: []string{"Python", "Computer Vision", "AWS"},
		Featured:     true,
	},
	{
		ID:           3,
		Title:        "Quantum Chat",
		Category:     "Communication",
		Description:  "End-to-end encrypted messaging with quantum-resistant algorithms",
		Image:        "project3.jpg",
		Color:        "#45B7D1",
		Technologies: []string{"Python", "WebSockets", "Cryptography"},
		Featured:     true,
	},
	{
		ID:           4,
		Title:        "VR Studio",
		Category:     "Virtual Reality",
		Description:  "Collaborative VR environment for 3D design and prototyping",
		Image:        "project4.jpg",
		Color:        "#96CEB4",
		Technologies: []string{"Unity", "Python", "WebXR"},
		Featured:     false,
	},
	{
		ID:           5,
		Title:        "HealthSync",
		Category:     "Health Tech",
		Description:  "AI-powered personal health assistant and analytics platform",
		Image:        "project5.jpg",
		Color:        "#FFEAA7",
		Technologies: []string{"Python", "Machine Learning", "Flutter"},
		Featured:     false,
	},
	{
		ID:           6,
		Title:        "SmartGrid",
		Category:     "IoT",
		Description:  "Intelligent energy distribution system for smart cities",
		Image:        "project6.jpg",
		Color:        "#DDA0DD",
		Technologies: []string{"Python", "IoT", "Blockchain"},
		Featured:     false,
	},
}

var Skills = []Skill{
	{Name: "Python", Level: 95, Color: "#3776AB"},
	{Name: "Machine Learning", Level: 88, Color: "#FF6B6B"},
	{Name: "React", Level: 85, Color: "#61DAFB"},
	{Name: "Cloud Architecture", Level: 82, Color: "#FFA07A"},
	{Name: "UI/UX Design", Level: 78, Color: "#9B59B6"},
	{Name: "DevOps", Level: 75, Color: "#3498DB"},
}

var Timeline = []TimelineEntry{
	{Year: "2024", Title: "Senior AI Engineer", Company: "Tech Innovations Inc.", Description: "Leading AI research and development team"},
	{Year: "2022", Title: "Full Stack Developer", Company: "Digital Solutions", Description: "Developed scalable web applications"},
	{Year: "2020", Title: "ML Engineer", Company: "DataTech", Description: "Built ML models for predictive analytics"},
	{Year: "2018", Title: "CS Graduate", Company: "University of Technology", Description: "Bachelor's in Computer Science"},
}

// ProjectByID looks a project up in the hardcoded list.
func ProjectByID(id int) (Project, bool) {
	for _, p := range Projects {
		if p.ID == id {
			return p, true
		}
	}
	return Project{}, false
}
