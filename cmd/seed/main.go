package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/madrasahq/school-hr-backend/internal/config"
	"github.com/madrasahq/school-hr-backend/internal/domain/absence"
	"github.com/madrasahq/school-hr-backend/internal/domain/employee"
	"github.com/madrasahq/school-hr-backend/internal/domain/user"
	"github.com/madrasahq/school-hr-backend/internal/pkg/database"
	"github.com/madrasahq/school-hr-backend/internal/repository/postgresql"
)

var firstNames = []string{"Ahmad", "Fatima", "Omar", "Layla", "Yusuf", "Maryam", "Khalid", "Noor", "Hassan", "Aisha"}
var lastNames = []string{"Al-Sayed", "Hamdan", "Nasser", "Qasem", "Barakat", "Haddad", "Suleiman", "Odeh"}
var subjects = []string{"Mathematics", "Science", "Arabic", "English", "History", "Physical Education"}

func main() {
	var email string
	var password string
	var n int

	flag.StringVar(&email, "email", "demo@school.test", "email of the seeded account")
	flag.StringVar(&password, "password", "password123", "password of the seeded account")
	flag.IntVar(&n, "n", 20, "number of employees to insert")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Pool.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	userRepo := postgresql.NewUserRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	absenceRepo := postgresql.NewAbsenceRepository(db)

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("failed to hash password", "error", err)
		os.Exit(1)
	}
	hashStr := string(hash)

	u, err := userRepo.Create(ctx, user.User{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: &hashStr,
	})
	if err != nil {
		logger.Error("failed to create user", "error", err)
		os.Exit(1)
	}
	logger.Info("seeded user", "email", u.Email)

	today := time.Now().UTC().Truncate(24 * time.Hour)

	for i := 0; i < n; i++ {
		name := fmt.Sprintf("%s %s", firstNames[rand.Intn(len(firstNames))], lastNames[rand.Intn(len(lastNames))])
		nationalID := fmt.Sprintf("%010d", rand.Int63n(10_000_000_000))
		code := fmt.Sprintf("T-%04d", i+1)
		subject := subjects[rand.Intn(len(subjects))]
		birth := today.AddDate(-25-rand.Intn(30), 0, -rand.Intn(365))

		emp, err := employeeRepo.Create(ctx, employee.Employee{
			ID:              uuid.New().String(),
			UserID:          u.ID,
			FullName:        name,
			TeacherCode:     &code,
			NationalID:      nationalID,
			BirthDate:       &birth,
			TeachingSubject: &subject,
		})
		if err != nil {
			logger.Error("failed to create employee", "error", err)
			continue
		}

		// Roughly a third of the roster gets a recent record.
		if rand.Intn(3) != 0 {
			continue
		}

		start := today.AddDate(0, 0, -rand.Intn(14))
		rec := absence.Record{
			ID:         uuid.New().String(),
			UserID:     u.ID,
			EmployeeID: emp.ID,
			Kind:       absence.KindAbsence,
			StartDate:  start,
		}
		if rand.Intn(2) == 0 {
			subtype := absence.LeaveSubtypes[rand.Intn(len(absence.LeaveSubtypes))]
			rec.Kind = absence.KindLeave
			rec.LeaveSubtype = &subtype
			end := start.AddDate(0, 0, rand.Intn(5))
			rec.EndDate = &end
		}
		if _, err := absenceRepo.Create(ctx, rec); err != nil {
			logger.Error("failed to create absence record", "error", err)
		}
	}

	logger.Info("seed complete", "employees", n)
}
