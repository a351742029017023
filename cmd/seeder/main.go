// Seeder populates the employees table with sample records for local
// development. Emails are generated, the rest is a fixed roster.
package main

import (
	"context"
	"log"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/tamathecxder/randomail"

	"github.com/Houeta/staffdesk/internal/config"
	"github.com/Houeta/staffdesk/internal/metrics"
	"github.com/Houeta/staffdesk/internal/models"
	"github.com/Houeta/staffdesk/internal/repository"
)

func main() {
	cfg := config.MustLoad()

	dbpool, dbErr := repository.NewDatabase(
		cfg.Postgres.Host, cfg.Postgres.Port, cfg.Postgres.User, cfg.Postgres.Password, cfg.Postgres.Dbname)
	if dbErr != nil {
		log.Fatalf("Failed to connect to DB: %v", dbErr)
	}
	defer dbpool.Close()

	repo := repository.NewEmployeeRepository(dbpool, metrics.NewMetrics(prometheus.NewRegistry()))

	roster := []models.Employee{
		{FirstName: "Alice", LastName: "Smith", Position: "Engineer", Department: "Engineering", Salary: 2400},
		{FirstName: "Bob", LastName: "Jones", Position: "QA Engineer", Department: "Engineering", Salary: 1900},
		{FirstName: "Carol", LastName: "White", Position: "Accountant", Department: "Finance", Salary: 2100},
		{FirstName: "Dan", LastName: "Brown", Position: "Recruiter", Department: "HR", Salary: 1700},
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	for _, employee := range roster {
		employee.Email = randomail.GenerateRandomEmail()
		identifier, err := repo.CreateEmployee(ctx, employee)
		if err != nil {
			log.Fatalf("Failed to seed employee %s %s: %v", employee.FirstName, employee.LastName, err)
		}
		log.Printf("Seeded employee %d: %s %s", identifier, employee.FirstName, employee.LastName)
	}

	log.Println("✅ Sample employees seeded successfully")
}
