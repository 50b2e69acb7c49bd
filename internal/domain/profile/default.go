package profile

// DefaultImage is the bundled placeholder shipped with the app.
const DefaultImage = "asset://profile.png"

// Default is the profile seeded into an empty store on first load.
func Default() *Profile {
	return &Profile{
		Name:  "Chauhan",
		Title: "Aspiring React Native Developer",
		Bio: "A passionate and driven individual seeking opportunities to leverage skills in mobile development. " +
			"Eager to contribute to innovative projects and grow within a dynamic team. " +
			"My goal is to build intuitive and impactful mobile experiences.",
		Education: []Education{
			{
				ID:          "edu1",
				Institution: "Lakehead University",
				Degree:      "M.Sc. in Computer Science",
				Period:      "2024 - 2025",
				Details:     "Relevant coursework: Mobile App Development, Data Structures & Algorithms, Web Technologies. Dean's List 2020, 2021.",
			},
			{
				ID:          "edu2",
				Institution: "Online Coding Bootcamp",
				Degree:      "Full-Stack Web Development Certificate",
				Period:      "2022",
				Details:     "Intensive program covering React, Node.js, Express, and MongoDB.",
			},
		},
		Skills: []Skill{
			{ID: "1", Name: "React Native", Proficiency: "Intermediate", Icon: "logo-react"},
			{ID: "2", Name: "JavaScript (ES6+)", Proficiency: "Intermediate", Icon: "logo-javascript"},
			{ID: "3", Name: "Expo CLI", Proficiency: "Intermediate", Icon: "flash"},
		},
		Projects: []Project{
			{
				ID:              "1",
				Title:           "My Personal Portfolio App",
				Description:     "Developed this React Native application to showcase my skills and projects.",
				LongDescription: "This very application serves as a testament to my React Native abilities.",
				Technologies:    []string{"React Native", "Expo", "JavaScript", "React Navigation", "Context API"},
				Image:           DefaultImage,
				ValueAdded:      "Demonstrates initiative, React Native fundamentals and attention to user experience.",
			},
		},
		Testimonials: []Testimonial{
			{
				ID:       "test1",
				Quote:    "A highly motivated and quick learner.",
				Author:   "Dr. Jane Smith",
				Relation: "Professor, State University",
			},
		},
		Certificates: []Certificate{
			{
				ID:          "cert1",
				Name:        "React Native Nanodegree",
				Issuer:      "Udacity",
				Date:        "March 2023",
				Description: "Completed an intensive program covering advanced React Native concepts, state management with Redux, and native module integration. Built several portfolio-worthy applications.",
				VerifyURL:   "https://confirm.udacity.com/PQRXYZ123",
			},
		},
		ContactInfo: ContactInfo{
			Email:     "group2@gmail.com",
			Phone:     "+1234567890",
			LinkedIn:  "https://linkedin.com/in/group2",
			GitHub:    "https://github.com/group2",
			ResumeURL: "https://www.example.com/resumes/group2_resume.pdf",
		},
	}
}
