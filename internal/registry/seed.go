package registry

import "example.com/activities/internal/domain"

// seedCatalog is the fixed activity table loaded at process start.
// Activities are never created or deleted at runtime.
func seedCatalog() []domain.Activity {
	return []domain.Activity{
		{
			Name:            "Chess Club",
			Description:     "Learn strategies and compete in chess tournaments",
			Schedule:        "Fridays, 3:30 PM - 5:00 PM",
			MaxParticipants: 12,
			Participants:    []string{"michael@mergington.edu", "daniel@mergington.edu"},
		},
		{
			Name:            "Programming Class",
			Description:     "Learn programming fundamentals and build software projects",
			Schedule:        "Tuesdays and Thursdays, 3:30 PM - 4:30 PM",
			MaxParticipants: 20,
			Participants:    []string{"emma@mergington.edu", "sophia@mergington.edu"},
		},
		{
			Name:            "Gym Class",
			Description:     "Physical education and sports activities",
			Schedule:        "Mondays, Wednesdays, Fridays, 2:00 PM - 3:00 PM",
			MaxParticipants: 30,
			Participants:    []string{"john@mergington.edu", "olivia@mergington.edu"},
		},
		{
			Name:            "Tennis Club",
			Description:     "Learn tennis skills and compete in friendly matches",
			Schedule:        "Tuesdays and Thursdays, 4:00 PM - 5:30 PM",
			MaxParticipants: 16,
			Participants:    []string{"alex@mergington.edu"},
		},
		{
			Name:            "Basketball Team",
			Description:     "Join our competitive basketball team for practice and games",
			Schedule:        "Mondays and Wednesdays, 4:00 PM - 5:30 PM",
			MaxParticipants: 15,
			Participants:    []string{"james@mergington.edu", "maya@mergington.edu"},
		},
		{
			Name:            "Drama Club",
			Description:     "Perform in theatrical productions and develop acting skills",
			Schedule:        "Thursdays and Saturdays, 2:00 PM - 4:00 PM",
			MaxParticipants: 25,
			Participants:    []string{"isabella@mergington.edu"},
		},
		{
			Name:            "Painting Studio",
			Description:     "Explore visual arts through painting and drawing techniques",
			Schedule:        "Wednesdays, 3:30 PM - 5:00 PM",
			MaxParticipants: 18,
			Participants:    []string{"noah@mergington.edu", "ava@mergington.edu"},
		},
		{
			Name:            "Debate Team",
			Description:     "Develop public speaking and argumentation skills through competitive debate",
			Schedule:        "Mondays, 4:00 PM - 5:30 PM",
			MaxParticipants: 14,
			Participants:    []string{"lucas@mergington.edu"},
		},
		{
			Name:            "Science Club",
			Description:     "Conduct experiments and explore scientific concepts through hands-on activities",
			Schedule:        "Fridays, 3:30 PM - 4:30 PM",
			MaxParticipants: 20,
			Participants:    []string{"harper@mergington.edu", "ethan@mergington.edu"},
		},
	}
}
