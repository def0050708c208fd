// Package seed provides the demo directory the application starts with.
package seed

import "github.com/noah-isme/skillswap/internal/models"

const avatarBase = "https://images.unsplash.com/"

func avatar(photo string) string {
	return avatarBase + photo + "?w=64&h=64&fit=crop&crop=face"
}

func skill(id, name string, level models.SkillLevel, category string) models.Skill {
	return models.Skill{ID: id, Name: name, Level: level, Category: category}
}

// Users returns a fresh copy of the demo directory. The admin account offers nothing and wants nothing.
func Users() []models.User {
	return []models.User{
		{
			ID:          "1",
			Name:        "Sarah Chen",
			Email:       "sarah.chen@email.com",
			Location:    "San Francisco, CA",
			Avatar:      avatar("photo-1494790108755-2616b612b786"),
			Bio:         "Passionate developer and designer with 5+ years of experience. Love teaching and learning new technologies!",
			Rating:      4.9,
			ReviewCount: 23,
			OfferedSkills: models.SkillSet{
				skill("1", "React", models.SkillLevelExpert, "Technology"),
				skill("2", "TypeScript", models.SkillLevelAdvanced, "Technology"),
				skill("3", "UI/UX Design", models.SkillLevelIntermediate, "Creative"),
			},
			WantedSkills: models.SkillSet{
				skill("4", "Spanish", models.SkillLevelBeginner, "Languages"),
				skill("5", "Photography", models.SkillLevelBeginner, "Creative"),
			},
			Availability: "Weekends",
			JoinedDate:   "2023-01-15",
		},
		{
			ID:          "2",
			Name:        "Marcus Johnson",
			Email:       "marcus.j@email.com",
			Location:    "Austin, TX",
			Avatar:      avatar("photo-1507003211169-0a1dd7228f2d"),
			Bio:         "Professional musician and audio engineer. Love sharing music knowledge and learning tech skills.",
			Rating:      4.8,
			ReviewCount: 15,
			OfferedSkills: models.SkillSet{
				skill("6", "Guitar", models.SkillLevelExpert, "Music"),
				skill("7", "Music Theory", models.SkillLevelAdvanced, "Music"),
				skill("8", "Audio Production", models.SkillLevelExpert, "Music"),
			},
			WantedSkills: models.SkillSet{
				skill("9", "Python", models.SkillLevelBeginner, "Technology"),
				skill("10", "Machine Learning", models.SkillLevelBeginner, "Technology"),
			},
			Availability: "Evenings",
			JoinedDate:   "2023-03-20",
		},
		{
			ID:          "3",
			Name:        "Emma Rodriguez",
			Email:       "emma.r@email.com",
			Location:    "New York, NY",
			Avatar:      avatar("photo-1438761681033-6461ffad8d80"),
			Bio:         "Trilingual translator and language enthusiast. Passionate about connecting cultures through language.",
			Rating:      5.0,
			ReviewCount: 31,
			OfferedSkills: models.SkillSet{
				skill("11", "French", models.SkillLevelExpert, "Languages"),
				skill("12", "Italian", models.SkillLevelAdvanced, "Languages"),
				skill("13", "Translation", models.SkillLevelExpert, "Languages"),
			},
			WantedSkills: models.SkillSet{
				skill("14", "Digital Marketing", models.SkillLevelIntermediate, "Business"),
				skill("15", "SEO", models.SkillLevelBeginner, "Business"),
			},
			Availability: "Flexible",
			JoinedDate:   "2022-11-10",
		},
		{
			ID:          "4",
			Name:        "David Kim",
			Email:       "david.kim@email.com",
			Location:    "Seattle, WA",
			Avatar:      avatar("photo-1472099645785-5658abf4ff4e"),
			Bio:         "Professional photographer specializing in portraits and landscapes. Always eager to learn new creative skills.",
			Rating:      4.7,
			ReviewCount: 18,
			OfferedSkills: models.SkillSet{
				skill("16", "Photography", models.SkillLevelExpert, "Creative"),
				skill("17", "Lightroom", models.SkillLevelAdvanced, "Creative"),
				skill("18", "Drone Operation", models.SkillLevelIntermediate, "Creative"),
			},
			WantedSkills: models.SkillSet{
				skill("19", "Video Editing", models.SkillLevelBeginner, "Creative"),
				skill("20", "Motion Graphics", models.SkillLevelBeginner, "Creative"),
			},
			Availability: "Weekends",
			JoinedDate:   "2023-05-08",
		},
		{
			ID:           "admin",
			Name:         "SkillSwap Admin",
			Email:        "admin@skillswap.com",
			Location:     "Remote",
			Bio:          "Platform administrator.",
			Availability: "Weekdays",
			JoinedDate:   "2022-01-01",
		},
	}
}

// CatalogSkills returns the platform skill catalog admins start with.
func CatalogSkills() []models.CatalogSkill {
	return []models.CatalogSkill{
		{ID: "1", Name: "React Development", Category: "Frontend", Description: "Modern React development with hooks and context", Popularity: 95, UserCount: 234, AverageRating: 4.8, Active: true},
		{ID: "2", Name: "UI/UX Design", Category: "Design", Description: "User interface and experience design", Popularity: 87, UserCount: 156, AverageRating: 4.6, Active: true},
		{ID: "3", Name: "Python Programming", Category: "Backend", Description: "Python development and automation", Popularity: 92, UserCount: 198, AverageRating: 4.7, Active: true},
		{ID: "4", Name: "Digital Marketing", Category: "Marketing", Description: "Online marketing strategies and tools", Popularity: 78, UserCount: 89, AverageRating: 4.3, Active: false},
	}
}
