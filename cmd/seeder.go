package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
	gormPostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with sample data",
	Long:  `Seed the database with sample data for development and testing purposes.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(".")
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}

		sqlxDB, err := initDB(cfg.Database)
		if err != nil {
			log.Fatalf("failed to init db: %v", err)
		}

		db, err := gorm.Open(gormPostgres.New(gormPostgres.Config{Conn: sqlxDB.DB}), &gorm.Config{})
		if err != nil {
			log.Fatalf("failed to init orm: %v", err)
		}

		if clearData {
			for _, table := range []string{"leaves", "schedules", "leave_types", "users"} {
				if err := db.Exec(fmt.Sprintf("DELETE FROM %s", table)).Error; err != nil {
					log.Fatalf("failed to clear table %s: %v", table, err)
				}
			}
			fmt.Println("Cleared existing data")
		}

		password := "password"
		hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)

		managerEmail := "manager@mail.com"
		managerID := seedUser(db, managerEmail, "Maya Manager", string(hash), "manager", nil)

		associateEmail := "associate@mail.com"
		associateID := seedUser(db, associateEmail, "Arun Associate", string(hash), "associate", &managerID)

		// default pattern: Sunday and Saturday off, day shift
		var exists int
		row := db.Raw("SELECT 1 FROM schedules WHERE user_id = ?", associateID).Row()
		if err := row.Scan(&exists); err != nil {
			if err := db.Exec(
				"INSERT INTO schedules (user_id, weekoff_1, weekoff_2, shift_start, shift_end, created_at, updated_at) VALUES (?, 0, 6, '09:00', '18:00', now(), now())",
				associateID,
			).Error; err != nil {
				log.Fatalf("failed to insert schedule: %v", err)
			}
			fmt.Println("Seeded schedule for:", associateEmail)
		}

		leaveTypes := []struct {
			Name string
			Desc string
		}{
			{"Casual Leave", "Short-notice personal time off"},
			{"Sick Leave", "Illness or medical appointments"},
			{"Annual Leave", "Planned vacation days"},
			{"Optional Off", "Optional holiday"},
			{"HD CL", "Half-day casual leave"},
			{"HD SL", "Half-day sick leave"},
			{"Pre/Post Shift OT", "Overtime adjoining a shift"},
			{"6th Day OT", "Overtime on a sixth working day"},
		}

		for _, lt := range leaveTypes {
			var id int64
			row := db.Raw("SELECT id FROM leave_types WHERE name = ?", lt.Name).Row()
			if err := row.Scan(&id); err != nil {
				if err := db.Exec(
					"INSERT INTO leave_types (name, description, is_active, created_at, updated_at) VALUES (?, ?, true, now(), now())",
					lt.Name, lt.Desc,
				).Error; err != nil {
					log.Fatalf("failed to insert leave type %s: %v", lt.Name, err)
				}
			}
		}
		fmt.Println("Seeded leave types")
	},
}

func seedUser(db *gorm.DB, email, fullName, passwordHash, role string, managerID *int64) int64 {
	var id int64
	row := db.Raw("SELECT id FROM users WHERE email = ?", email).Row()
	if err := row.Scan(&id); err == nil {
		fmt.Println("user already exists:", email)
		return id
	}

	if err := db.Exec(
		"INSERT INTO users (email, full_name, password_hash, role, manager_id, is_active, created_at, updated_at) VALUES (?, ?, ?, ?, ?, true, now(), now())",
		email, fullName, passwordHash, role, managerID,
	).Error; err != nil {
		log.Fatalf("failed to insert user %s: %v", email, err)
	}

	if err := db.Raw("SELECT id FROM users WHERE email = ?", email).Row().Scan(&id); err != nil {
		log.Fatalf("failed to lookup user id for %s: %v", email, err)
	}
	fmt.Println("Seeded user:", email)
	return id
}
