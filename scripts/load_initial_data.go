package main

import (
	"cx-crm-backend/internal/config"
	"cx-crm-backend/internal/database"
	"cx-crm-backend/internal/database/models"
	"cx-crm-backend/internal/repository"
	"fmt"
	"io/fs"
	"log"
	"path/filepath"
	"strings"
	"time"

	"os"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match DB schema
type ClientData struct {
	Name    string `yaml:"name"`
	Email   string `yaml:"email,omitempty"`
	Company string `yaml:"company,omitempty"`
	Phone   string `yaml:"phone,omitempty"`
}

type UserData struct {
	Username  string `yaml:"username"`
	FirstName string `yaml:"first_name,omitempty"`
	LastName  string `yaml:"last_name,omitempty"`
	Email     string `yaml:"email,omitempty"`
}

type StageData struct {
	Name                 string `yaml:"name"`
	Description          string `yaml:"description,omitempty"`
	SortOrder            int    `yaml:"sort_order"`
	ExpectedDurationDays *int   `yaml:"expected_duration_days,omitempty"`
	IsDefault            bool   `yaml:"is_default,omitempty"`
}

type PipelineData struct {
	ClientName     string `yaml:"client_name"`
	StageName      string `yaml:"stage_name,omitempty"`
	Status         int    `yaml:"status,omitempty"`
	Notes          string `yaml:"notes,omitempty"`
	AccountManager string `yaml:"account_manager,omitempty"`
}

// File structures
type ClientsFile struct {
	Clients []ClientData `yaml:"clients"`
}

type UsersFile struct {
	Users []UserData `yaml:"users"`
}

type StagesFile struct {
	Stages []StageData `yaml:"stages"`
}

type PipelinesFile struct {
	Pipelines []PipelineData `yaml:"pipelines"`
}

func main() {
	log.Println("Loading initial data from YAML files...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Load data from YAML files
	if err := loadDataFromYAMLFiles(db, "scripts/data"); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("Initial data loaded successfully")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	// Suppress GORM logs including SQL queries and "record not found" during loading
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) error {
	// Load all data from YAML files
	clients, err := loadClients(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load clients: %w", err)
	}

	users, err := loadUsers(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load users: %w", err)
	}

	stages, err := loadStages(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load stages: %w", err)
	}

	pipelines, err := loadPipelines(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load pipelines: %w", err)
	}

	// Create clients first
	clientMap := make(map[string]*models.CxClient)
	clientCreated := 0
	for _, clientData := range clients {
		client, created, err := createClient(db, clientData)
		if err != nil {
			return fmt.Errorf("failed to create client %s: %w", clientData.Name, err)
		}
		clientMap[clientData.Name] = client
		if created {
			clientCreated++
		}
	}
	log.Printf("Clients: %d created, %d total", clientCreated, len(clients))

	// Create users
	userMap := make(map[string]*models.CxUser)
	userCreated := 0
	for _, userData := range users {
		user, created, err := createUser(db, userData)
		if err != nil {
			return fmt.Errorf("failed to create user %s: %w", userData.Username, err)
		}
		userMap[userData.Username] = user
		if created {
			userCreated++
		}
	}
	log.Printf("Users: %d created, %d total", userCreated, len(users))

	// Create stages
	stageMap := make(map[string]*models.PipelineStage)
	stageCreated := 0
	for _, stageData := range stages {
		stage, created, err := createStage(db, stageData)
		if err != nil {
			return fmt.Errorf("failed to create stage %s: %w", stageData.Name, err)
		}
		stageMap[stageData.Name] = stage
		if created {
			stageCreated++
		}
	}
	log.Printf("Stages: %d created, %d total", stageCreated, len(stages))

	// Create pipelines last so client, user and stage references resolve. Gone
	// through the repository so stage-assigned pipelines get their opening
	// transition and audit entry.
	pipelineRepo := repository.NewPipelineRepository(db)
	pipelineCreated := 0
	for _, pipelineData := range pipelines {
		created, err := createPipeline(db, pipelineRepo, pipelineData, clientMap, userMap, stageMap)
		if err != nil {
			log.Printf("Warning: failed to create pipeline for %s: %v", pipelineData.ClientName, err)
			continue // Continue with other pipelines
		}
		if created {
			pipelineCreated++
		}
	}
	log.Printf("Pipelines: %d created, %d total", pipelineCreated, len(pipelines))

	return nil
}

func loadClients(dataDir string) ([]ClientData, error) {
	var allClients []ClientData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "clients") {
			var file ClientsFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allClients = append(allClients, file.Clients...)
		}
		return nil
	})

	return allClients, err
}

func loadUsers(dataDir string) ([]UserData, error) {
	var allUsers []UserData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "users") {
			var file UsersFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allUsers = append(allUsers, file.Users...)
		}
		return nil
	})

	return allUsers, err
}

func loadStages(dataDir string) ([]StageData, error) {
	var allStages []StageData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "stages") {
			var file StagesFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allStages = append(allStages, file.Stages...)
		}
		return nil
	})

	return allStages, err
}

func loadPipelines(dataDir string) ([]PipelineData, error) {
	var allPipelines []PipelineData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "pipelines") {
			var file PipelinesFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allPipelines = append(allPipelines, file.Pipelines...)
		}
		return nil
	})

	return allPipelines, err
}

func createClient(db *gorm.DB, clientData ClientData) (*models.CxClient, bool, error) {
	var client models.CxClient
	if err := db.Where("name = ?", clientData.Name).First(&client).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			client = models.CxClient{
				Name:    clientData.Name,
				Email:   clientData.Email,
				Company: clientData.Company,
				Phone:   clientData.Phone,
			}

			if err := db.Create(&client).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create client: %w", err)
			}
			return &client, true, nil // created = true
		} else {
			return nil, false, fmt.Errorf("failed to query client: %w", err)
		}
	}

	return &client, false, nil // created = false (existing)
}

func createUser(db *gorm.DB, userData UserData) (*models.CxUser, bool, error) {
	var user models.CxUser
	if err := db.Where("username = ?", userData.Username).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			user = models.CxUser{
				Username:  userData.Username,
				FirstName: userData.FirstName,
				LastName:  userData.LastName,
				Email:     userData.Email,
			}

			if err := db.Create(&user).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create user: %w", err)
			}
			return &user, true, nil // created = true
		} else {
			return nil, false, fmt.Errorf("failed to query user: %w", err)
		}
	}

	return &user, false, nil // created = false (existing)
}

func createStage(db *gorm.DB, stageData StageData) (*models.PipelineStage, bool, error) {
	var stage models.PipelineStage
	if err := db.Where("name = ?", stageData.Name).First(&stage).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			stage = models.PipelineStage{
				Name:                 stageData.Name,
				Description:          stageData.Description,
				SortOrder:            stageData.SortOrder,
				IsDefault:            stageData.IsDefault,
				ExpectedDurationDays: stageData.ExpectedDurationDays,
			}

			if err := db.Create(&stage).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create stage: %w", err)
			}
			return &stage, true, nil // created = true
		} else {
			return nil, false, fmt.Errorf("failed to query stage: %w", err)
		}
	}

	return &stage, false, nil // created = false (existing)
}

func createPipeline(db *gorm.DB, repo *repository.PipelineRepository, pipelineData PipelineData, clientMap map[string]*models.CxClient, userMap map[string]*models.CxUser, stageMap map[string]*models.PipelineStage) (bool, error) {
	client := clientMap[pipelineData.ClientName]
	if client == nil {
		return false, fmt.Errorf("client %s not found", pipelineData.ClientName)
	}

	// One seeded pipeline per client; skip when it already exists
	var existing models.CxPipeline
	err := db.Where("client_id = ?", client.ID).First(&existing).Error
	if err == nil {
		return false, nil // created = false (existing)
	}
	if err != gorm.ErrRecordNotFound {
		return false, fmt.Errorf("failed to query pipeline: %w", err)
	}

	status := models.LegacyStatusLead
	if pipelineData.Status != 0 {
		status = models.LegacyStatus(pipelineData.Status)
		if !status.IsValid() {
			return false, fmt.Errorf("invalid legacy status %d", pipelineData.Status)
		}
	}

	pipeline := models.CxPipeline{
		ClientID: client.ID,
		Status:   status,
		Notes:    pipelineData.Notes,
	}

	if pipelineData.AccountManager != "" {
		manager := userMap[pipelineData.AccountManager]
		if manager == nil {
			return false, fmt.Errorf("account manager %s not found", pipelineData.AccountManager)
		}
		pipeline.AccountManagerID = &manager.ID
	}

	if pipelineData.StageName != "" {
		stage := stageMap[pipelineData.StageName]
		if stage == nil {
			return false, fmt.Errorf("stage %s not found", pipelineData.StageName)
		}
		pipeline.StageID = &stage.ID
	}

	if err := repo.Create(&pipeline, nil); err != nil {
		return false, fmt.Errorf("failed to create pipeline: %w", err)
	}
	return true, nil // created = true
}
