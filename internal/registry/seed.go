package registry

// Default returns the activities the service starts with.
func Default() map[string]Activity {
	return map[string]Activity{
		"Chess Club": {
			Description:     "Learn strategies and compete in chess tournaments",
			Schedule:        "Fridays, 3:30 PM - 5:00 PM",
			MaxParticipants: 12,
			Participants:    []string{"michael@mergington.edu", "daniel@mergington.edu"},
		},
		"Programming Class": {
			Description:     "Learn programming fundamentals and build software projects",
			Schedule:        "Tuesdays and Thursdays, 3:30 PM - 4:30 PM",
			MaxParticipants: 20,
			Participants:    []string{"emma@mergington.edu", "sophia@mergington.edu"},
		},
		"Gym Class": {
			Description:     "Physical education and sports activities",
			Schedule:        "Mondays, Wednesdays, Fridays, 2:00 PM - 3:00 PM",
			MaxParticipants: 30,
			Participants:    []string{"john@mergington.edu", "olivia@mergington.edu"},
		},
		"Basketball Team": {
			Description:     "Practice drills and compete in inter-school basketball games",
			Schedule:        "Mondays and Wednesdays, 4:00 PM - 5:30 PM",
			MaxParticipants: 15,
			Participants:    []string{"james@mergington.edu"},
		},
		"Soccer Club": {
			Description:     "Train and play friendly soccer matches",
			Schedule:        "Tuesdays and Thursdays, 4:00 PM - 5:30 PM",
			MaxParticipants: 22,
			Participants:    []string{"lucas@mergington.edu", "mia@mergington.edu"},
		},
		"Art Club": {
			Description:     "Explore painting, drawing and sculpture",
			Schedule:        "Wednesdays, 3:30 PM - 5:00 PM",
			MaxParticipants: 18,
			Participants:    []string{"ava@mergington.edu"},
		},
		"Drama Club": {
			Description:     "Act, direct and produce school theater performances",
			Schedule:        "Thursdays, 3:30 PM - 5:30 PM",
			MaxParticipants: 25,
			Participants:    []string{"ella@mergington.edu", "noah@mergington.edu"},
		},
		"Debate Team": {
			Description:     "Build argumentation skills and compete in debate tournaments",
			Schedule:        "Fridays, 3:30 PM - 5:00 PM",
			MaxParticipants: 16,
			Participants:    []string{"liam@mergington.edu"},
		},
		"Math Club": {
			Description:     "Solve challenging problems and prepare for math competitions",
			Schedule:        "Tuesdays, 3:30 PM - 4:30 PM",
			MaxParticipants: 10,
			Participants:    []string{"isabella@mergington.edu", "ethan@mergington.edu"},
		},
	}
}
