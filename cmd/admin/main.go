package main

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"mentorgo/backend/internal/config"
	"mentorgo/backend/internal/matching"
	"mentorgo/backend/internal/models"
	"mentorgo/backend/internal/storage"

	"github.com/lib/pq"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	cfg := config.Load()

	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	storageSvc := storage.NewStorageService(db, nil) // No redis needed for admin CLI

	if len(os.Args) < 2 {
		fmt.Println("Usage: admin <command> [args]")
		fmt.Println("Commands:")
		fmt.Println("  seed                       insert demo students and mentors")
		fmt.Println("  score <studentID> <mentorID>  print the compatibility score")
		fmt.Println("  matches <userID>           list a user's matches")
		os.Exit(1)
	}

	switch os.Args[1] {
	case "seed":
		seed(db)

	case "score":
		if len(os.Args) < 4 {
			log.Fatal("usage: admin score <studentID> <mentorID>")
		}
		studentID := parseID(os.Args[2])
		mentorID := parseID(os.Args[3])

		student, err := storageSvc.GetUserByID(studentID)
		if err != nil {
			log.Fatalf("student %d: %v", studentID, err)
		}
		mentor, err := storageSvc.GetUserByID(mentorID)
		if err != nil {
			log.Fatalf("mentor %d: %v", mentorID, err)
		}
		fmt.Printf("score(%d, %d) = %.0f\n", studentID, mentorID, matching.Score(student, mentor))

	case "matches":
		if len(os.Args) < 3 {
			log.Fatal("usage: admin matches <userID>")
		}
		matches, err := storageSvc.GetMatchesForUser(parseID(os.Args[2]))
		if err != nil {
			log.Fatalf("failed to list matches: %v", err)
		}
		for _, m := range matches {
			fmt.Printf("%d\tstudent=%d mentor=%d status=%s score=%.0f created=%s\n",
				m.ID, m.StudentID, m.MentorID, m.Status, m.MatchScore, m.CreatedAt.Format("2006-01-02 15:04"))
		}

	default:
		log.Fatalf("unknown command %q", os.Args[1])
	}
}

func parseID(s string) uint {
	id, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		log.Fatalf("invalid id %q", s)
	}
	return uint(id)
}

func seed(db *gorm.DB) {
	users := []models.User{
		{
			Email: "alice@student.edu", UserType: models.RoleStudent,
			FirstName: "Alice", LastName: "Nguyen", Major: "Computer Science",
			CareerInterests: pq.StringArray{"backend engineering", "distributed systems", "fintech"},
			Skills:          pq.StringArray{"go", "sql", "docker"},
		},
		{
			Email: "bob@student.edu", UserType: models.RoleStudent,
			FirstName: "Bob", LastName: "Keller", Major: "Economics",
			CareerInterests: pq.StringArray{"product management", "fintech"},
			Skills:          pq.StringArray{"excel", "sql"},
		},
		{
			Email: "carol@mentor.io", UserType: models.RoleMentor,
			FirstName: "Carol", LastName: "Diaz", Major: "Computer Science",
			Industry: "fintech", CurrentPosition: "Staff Engineer", Company: "LedgerWorks",
			YearsOfExperience: 12,
			ExpertiseAreas:    pq.StringArray{"backend engineering", "distributed systems"},
			Skills:            pq.StringArray{"go", "sql", "kubernetes"},
		},
		{
			Email: "dan@mentor.io", UserType: models.RoleMentor,
			FirstName: "Dan", LastName: "Okafor", Major: "Business Administration",
			Industry: "consulting", CurrentPosition: "Engagement Manager", Company: "Northway",
			YearsOfExperience: 8,
			ExpertiseAreas:    pq.StringArray{"product management", "strategy"},
			Skills:            pq.StringArray{"excel", "presentations"},
		},
	}

	if err := db.AutoMigrate(&models.User{}, &models.Match{}, &models.Message{}, &models.CallRequest{}); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	for i := range users {
		if err := db.Where("email = ?", users[i].Email).FirstOrCreate(&users[i]).Error; err != nil {
			log.Fatalf("failed to seed user %s: %v", users[i].Email, err)
		}
		fmt.Printf("seeded %s (%d, %s)\n", users[i].Email, users[i].ID, users[i].UserType)
	}
}
