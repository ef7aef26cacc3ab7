package db

import (
	"fmt"
	"log"

	"github.com/hsinyu-lin/trackdesk/internal/config"
	"github.com/hsinyu-lin/trackdesk/internal/domain/audit"
	"github.com/hsinyu-lin/trackdesk/internal/domain/comment"
	"github.com/hsinyu-lin/trackdesk/internal/domain/project"
	"github.com/hsinyu-lin/trackdesk/internal/domain/ticket"
	"github.com/hsinyu-lin/trackdesk/internal/domain/user"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Init() {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		config.DbHost,
		config.DbPort,
		config.DbUser,
		config.DbPassword,
		config.DbName,
	)

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to DB:", err)
	}

	if err := Migrate(DB); err != nil {
		log.Fatal("Failed to auto migrate:", err)
	}

	log.Println("Database connected and migrated")
}

// Migrate applies the schema for every persisted entity.
func Migrate(gdb *gorm.DB) error {
	return gdb.AutoMigrate(
		&user.User{},
		&project.Project{},
		&project.Member{},
		&ticket.Ticket{},
		&comment.Comment{},
		&audit.Log{},
	)
}

// InitWithGormDB lets tests inject an already-open connection.
func InitWithGormDB(gormDB *gorm.DB) {
	DB = gormDB
}
