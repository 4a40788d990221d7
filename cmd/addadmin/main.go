package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/ashuraya1989-cyber/assyrian-church/app/config"
	"github.com/ashuraya1989-cyber/assyrian-church/app/database"
	"github.com/ashuraya1989-cyber/assyrian-church/app/models"
)

func main() {
	email := flag.String("email", "", "email address for the new admin")
	password := flag.String("password", "", "password for the new admin")
	firstName := flag.String("first-name", "Admin", "first name")
	lastName := flag.String("last-name", "", "last name")
	role := flag.String("role", "admin", "role to assign (admin or treasurer)")
	flag.Parse()

	if *email == "" || *password == "" {
		fmt.Println("Usage: addadmin -email <email> -password <password> [-first-name <name>] [-last-name <name>] [-role admin|treasurer]")
		os.Exit(1)
	}

	// Initialize database connection
	config.Init()
	db := config.GetDB()
	defer db.Close()

	if err := database.RunMigrations(db); err != nil {
		fmt.Printf("Error running migrations: %v\n", err)
		os.Exit(1)
	}

	user := &models.User{
		FirstName: *firstName,
		LastName:  *lastName,
		Email:     *email,
		Password:  *password,
	}

	if err := database.CreateUser(db, user, *role); err != nil {
		fmt.Printf("Error creating user: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("User created successfully: %s %s (%s) with role %s\n", user.FirstName, user.LastName, user.Email, *role)
}
