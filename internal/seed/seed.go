// Package seed provides database seeding utilities for development and testing.
package seed

import (
	_ "embed"
	"fmt"
	"log"
	"math/rand"
	"strings"
	"time"

	"matchday/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

//go:embed fixtures.yaml
var fixturesYAML []byte

// Options configuration for the seeder
type Options struct {
	NumUsers    int
	ShouldClean bool
}

// fixtures is the shape of fixtures.yaml.
type fixtures struct {
	Games []struct {
		GameID   int    `yaml:"game_id"`
		Opponent string `yaml:"opponent"`
		Airport  string `yaml:"airport"`
	} `yaml:"games"`
	Airlines []string `yaml:"airlines"`
}

// Run populates the database with fake users, friend requests, flights and
// attendance records for development. All seeded users share the password
// "SeededPassword1".
func Run(db *gorm.DB, opts Options) error {
	if opts.NumUsers <= 0 {
		opts.NumUsers = 20
	}

	var fx fixtures
	if err := yaml.Unmarshal(fixturesYAML, &fx); err != nil {
		return fmt.Errorf("parse fixtures: %w", err)
	}
	if len(fx.Games) == 0 || len(fx.Airlines) == 0 {
		return fmt.Errorf("fixtures.yaml must define games and airlines")
	}

	if opts.ShouldClean {
		log.Println("Cleaning existing seed data...")
		for _, table := range []string{"attendances", "flights", "friend_requests", "profiles", "users"} {
			if err := db.Exec("DELETE FROM " + table).Error; err != nil {
				return fmt.Errorf("clean %s: %w", table, err)
			}
		}
	}

	gofakeit.Seed(time.Now().UnixNano())

	hash, err := bcrypt.GenerateFromPassword([]byte("SeededPassword1"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	users := make([]*models.User, 0, opts.NumUsers)
	for i := 0; i < opts.NumUsers; i++ {
		first := gofakeit.FirstName()
		last := gofakeit.LastName()
		username := strings.ToLower(fmt.Sprintf("%s_%s%d", first, last, rand.Intn(1000)))

		user := &models.User{
			Username: username,
			Email:    fmt.Sprintf("%s@%s", username, gofakeit.DomainName()),
			Password: string(hash),
			IsActive: true,
			Profile: models.Profile{
				FirstName: first,
				LastName:  last,
			},
		}
		if err := db.Create(user).Error; err != nil {
			return fmt.Errorf("seed user %q: %w", username, err)
		}
		users = append(users, user)
	}
	log.Printf("Seeded %d users", len(users))

	// Friend requests: each user sends a few, roughly half get accepted.
	requests := 0
	for _, u := range users {
		for n := 0; n < 3; n++ {
			target := users[rand.Intn(len(users))]
			if target.ID == u.ID {
				continue
			}
			req := &models.FriendRequest{
				FromUserID: u.ID,
				ToUserID:   target.ID,
				Status:     models.FriendRequestStatusPending,
			}
			if rand.Intn(2) == 0 {
				req.Status = models.FriendRequestStatusAccepted
			}
			// Duplicate ordered pairs violate the unique index; skip them.
			if err := db.Create(req).Error; err != nil {
				continue
			}
			requests++
		}
	}
	log.Printf("Seeded %d friend requests", requests)

	// Flights and attendance against the fixture games.
	flights, attendances := 0, 0
	for _, u := range users {
		game := fx.Games[rand.Intn(len(fx.Games))]
		departure := time.Now().AddDate(0, 0, 1+rand.Intn(60))

		flight := &models.Flight{
			UserID:           u.ID,
			GameID:           game.GameID,
			Airline:          fx.Airlines[rand.Intn(len(fx.Airlines))],
			DepartureAirport: "DUB",
			ArrivalAirport:   game.Airport,
			DepartureDate:    departure.Format("2006-01-02"),
			DepartureTime:    fmt.Sprintf("%02d:%02d", 6+rand.Intn(14), 15*rand.Intn(4)),
			IsActive:         true,
		}
		if rand.Intn(2) == 0 {
			ret := departure.AddDate(0, 0, 1).Format("2006-01-02")
			retTime := "21:30"
			flight.IsReturn = true
			flight.ReturnDate = &ret
			flight.ReturnTime = &retTime
		}
		if err := db.Create(flight).Error; err != nil {
			return fmt.Errorf("seed flight: %w", err)
		}
		flights++

		if err := db.Create(&models.Attendance{UserID: u.ID, GameID: game.GameID}).Error; err != nil {
			return fmt.Errorf("seed attendance: %w", err)
		}
		attendances++
	}
	log.Printf("Seeded %d flights and %d attendance records", flights, attendances)

	return nil
}
