package portfolio

const (
	DefaultProfileID  = "default"
	DefaultDomainName = "Software Engineer"
)

// DefaultProfile returns a fresh copy of the built-in "Software Engineer"
// persona. Callers may mutate the result freely.
func DefaultProfile() DomainProfile {
	return DomainProfile{
		ID:         DefaultProfileID,
		DomainName: DefaultDomainName,
		IsActive:   true,
		Profile:    DefaultProfileData(),
		Projects: []Project{
			{
				ID:          1,
				Title:       "E-Commerce Platform",
				Description: "A full-featured e-commerce platform with cart, checkout, and payment integration.",
				Image:       "/projects/ecommerce.jpg",
				Tags:        []string{"Next.js", "Node.js", "PostgreSQL", "Stripe"},
				LiveURL:     "https://example.com",
				GithubURL:   "https://github.com/example/ecommerce",
				Featured:    true,
			},
			{
				ID:          2,
				Title:       "Task Management App",
				Description: "A collaborative task management application with real-time updates.",
				Image:       "/projects/taskapp.jpg",
				Tags:        []string{"React", "Go", "Tailwind CSS"},
				LiveURL:     "https://example.com",
				GithubURL:   "https://github.com/example/taskapp",
				Featured:    true,
			},
		},
		Experience: []Experience{
			{
				ID:       1,
				Role:     "Senior Full Stack Developer",
				Company:  "Tech Company",
				Location: "Remote",
				Duration: "2023 - Present",
				Description: []string{
					"Led development of a microservices architecture serving 1M+ users",
					"Mentored junior developers and conducted code reviews",
				},
				Technologies: []string{"React", "Go", "AWS", "Docker"},
			},
		},
		Education: []Education{
			{
				ID:          1,
				Degree:      "Bachelor of Technology in Computer Science",
				Institution: "Institute of Technology",
				Location:    "Remote",
				Duration:    "2015 - 2019",
				Description: "Specialized in Software Engineering",
				GPA:         "8.5/10",
			},
		},
		Skills: []Skill{
			{
				Category: "Frontend",
				Items:    []SkillItem{{Name: "React", Level: 90}, {Name: "Next.js", Level: 85}, {Name: "TypeScript", Level: 80}},
			},
			{
				Category: "Backend",
				Items:    []SkillItem{{Name: "Go", Level: 85}, {Name: "Python", Level: 75}},
			},
		},
		Testimonials: []Testimonial{
			{
				ID:      1,
				Name:    "Jordan Lee",
				Role:    "CEO, TechStartup",
				Image:   "https://i.pravatar.cc/150?img=1",
				Content: "Delivered an exceptional web application, on time and with great attention to detail.",
				Rating:  5,
			},
		},
		BlogPosts:         []BlogPost{},
		Certifications:    DefaultCertifications(),
		CustomStats:       DefaultStats(),
		CustomSections:    []CustomSection{},
		SectionVisibility: AllSectionsVisible(),
		SectionOrder:      DefaultSectionOrder(),
		SEO:               DefaultSEO(),
		CustomLinks:       []CustomLink{},
		Theme:             DefaultTheme(),
	}
}

func DefaultProfileData() ProfileData {
	return ProfileData{
		Name:      "Alex Morgan",
		Title:     "Full Stack Developer",
		Tagline:   "Building digital experiences that matter",
		Bio:       "I'm a Full Stack Developer building modern web and mobile applications. I like turning complex problems into simple, intuitive products.",
		Email:     "hello@example.com",
		Phone:     "+1 555 0100",
		Location:  "Remote",
		ResumeURL: "/resume.pdf",
		Avatar:    "/avatar.png",
		Social: SocialLinks{
			GitHub:    "https://github.com/example",
			LinkedIn:  "https://linkedin.com/in/example",
			Twitter:   "https://twitter.com/example",
			Instagram: "https://instagram.com/example",
		},
		Roles:               []string{"Full Stack Developer", "React Expert", "Go Developer", "Mobile App Developer"},
		Greeting:            "Hello, I'm",
		HeroButtonPrimary:   "View My Work",
		HeroButtonSecondary: "Download CV",
		AvailabilityText:    "Available for work",
		HireMeText:          "Hire Me",
		AboutTitle:          "About Me",
		SkillsTitle:         "Skills",
		ProjectsTitle:       "My Projects",
		ExperienceTitle:     "Experience",
		EducationTitle:      "Education",
		ContactTitle:        "Get In Touch",
		BlogTitle:           "Blog",
		TestimonialsTitle:   "What People Say",
		FooterText:          "© Alex Morgan. All rights reserved.",
	}
}

func DefaultCertifications() []Certification {
	return []Certification{
		{ID: 1, Name: "AWS Certified Solutions Architect", Issuer: "Amazon Web Services", Date: "2023", URL: "https://aws.amazon.com/certification"},
		{ID: 2, Name: "Google Cloud Professional Developer", Issuer: "Google", Date: "2022", URL: "https://cloud.google.com/certification"},
	}
}

func DefaultStats() []StatItem {
	return []StatItem{
		{ID: 1, Icon: "Code2", Value: 50, Suffix: "+", Label: "Projects Completed", Color: "from-purple-500 to-indigo-500"},
		{ID: 2, Icon: "Users", Value: 30, Suffix: "+", Label: "Happy Clients", Color: "from-indigo-500 to-cyan-500"},
		{ID: 3, Icon: "Briefcase", Value: 5, Suffix: "+", Label: "Years Experience", Color: "from-cyan-500 to-emerald-500"},
		{ID: 4, Icon: "Coffee", Value: 1000, Suffix: "+", Label: "Cups of Coffee", Color: "from-emerald-500 to-yellow-500"},
		{ID: 5, Icon: "Trophy", Value: 15, Suffix: "+", Label: "Awards Won", Color: "from-yellow-500 to-orange-500"},
		{ID: 6, Icon: "Rocket", Value: 99, Suffix: "%", Label: "Client Satisfaction", Color: "from-orange-500 to-red-500"},
	}
}

func DefaultSEO() SEOSettings {
	return SEOSettings{
		MetaTitle:       "Alex Morgan - Full Stack Developer",
		MetaDescription: "Portfolio of Alex Morgan, a Full Stack Developer specializing in web and mobile applications.",
		Keywords:        []string{"developer", "full stack", "react", "go", "portfolio"},
		OGImage:         "/og-image.png",
	}
}

// DefaultDocument is the single-profile document used on first start and by reset.
func DefaultDocument() AllProfilesData {
	return AllProfilesData{
		SchemaVersion:   CurrentSchemaVersion,
		Profiles:        []DomainProfile{DefaultProfile()},
		ActiveProfileID: DefaultProfileID,
	}
}
