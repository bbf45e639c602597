package main

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"guard-console-backend/internal/config"
	"guard-console-backend/internal/database"
	"guard-console-backend/internal/database/models"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match DB schema
type AgencyData struct {
	Name         string                 `yaml:"name"`
	Title        string                 `yaml:"title"`
	Description  string                 `yaml:"description"`
	ContactEmail string                 `yaml:"contact_email,omitempty"`
	ContactPhone string                 `yaml:"contact_phone,omitempty"`
	Metadata     map[string]interface{} `yaml:"metadata,omitempty"`
}

type BranchData struct {
	Name        string                 `yaml:"name"`
	AgencyName  string                 `yaml:"agency_name"`
	Title       string                 `yaml:"title"`
	Description string                 `yaml:"description"`
	City        string                 `yaml:"city,omitempty"`
	Address     string                 `yaml:"address,omitempty"`
	Metadata    map[string]interface{} `yaml:"metadata,omitempty"`
}

type CheckpointData struct {
	Name        string                 `yaml:"name"`
	BranchName  string                 `yaml:"branch_name"`
	Title       string                 `yaml:"title"`
	Description string                 `yaml:"description"`
	Kind        string                 `yaml:"kind"`
	Metadata    map[string]interface{} `yaml:"metadata,omitempty"`
}

type GuardData struct {
	Name        string                 `yaml:"name"`
	Title       string                 `yaml:"title"`
	BadgeNumber string                 `yaml:"badge_number"`
	AgencyName  string                 `yaml:"agency_name,omitempty"`
	BranchName  string                 `yaml:"branch_name,omitempty"`
	Phone       string                 `yaml:"phone,omitempty"`
	Status      string                 `yaml:"status"`
	Metadata    map[string]interface{} `yaml:"metadata,omitempty"`
}

// File structures
type AgenciesFile struct {
	Agencies []AgencyData `yaml:"agencies"`
}

type BranchesFile struct {
	Branches []BranchData `yaml:"branches"`
}

type CheckpointsFile struct {
	Checkpoints []CheckpointData `yaml:"checkpoints"`
}

type GuardsFile struct {
	Guards []GuardData `yaml:"guards"`
}

func main() {
	log.Println("🚀 Loading initial data from YAML files...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := loadDataFromYAMLFiles(db, "scripts/data"); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("✅ Initial data loaded successfully!")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	// Suppress verbose GORM logging during data loading
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) error {
	agencies, err := loadAgencies(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load agencies: %w", err)
	}

	branches, err := loadBranches(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load branches: %w", err)
	}

	checkpoints, err := loadCheckpoints(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load checkpoints: %w", err)
	}

	guards, err := loadGuards(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load guards: %w", err)
	}

	// Create agencies first
	agencyMap := make(map[string]*models.Agency)
	agencyCreated := 0
	for _, agencyData := range agencies {
		agency, created, err := createAgency(db, agencyData)
		if err != nil {
			return fmt.Errorf("failed to create agency %s: %w", agencyData.Name, err)
		}
		agencyMap[agencyData.Name] = agency
		if created {
			agencyCreated++
		}
	}
	log.Printf("📋 Agencies: %d created, %d total", agencyCreated, len(agencies))

	// Create branches
	branchMap := make(map[string]*models.Branch)
	branchCreated := 0
	for _, branchData := range branches {
		branch, created, err := createBranch(db, branchData, agencyMap)
		if err != nil {
			return fmt.Errorf("failed to create branch %s: %w", branchData.Name, err)
		}
		branchMap[branchData.Name] = branch
		if created {
			branchCreated++
		}
	}
	log.Printf("📋 Branches: %d created, %d total", branchCreated, len(branches))

	// Create checkpoints
	checkpointCreated := 0
	for _, checkpointData := range checkpoints {
		_, created, err := createCheckpoint(db, checkpointData, branchMap)
		if err != nil {
			log.Printf("⚠️  Warning: failed to create checkpoint %s: %v", checkpointData.Name, err)
			continue
		}
		if created {
			checkpointCreated++
		}
	}
	log.Printf("📋 Checkpoints: %d created, %d total", checkpointCreated, len(checkpoints))

	// Create guards
	guardCreated := 0
	for _, guardData := range guards {
		_, created, err := createGuard(db, guardData, agencyMap, branchMap)
		if err != nil {
			log.Printf("⚠️  Warning: failed to create guard %s: %v", guardData.Name, err)
			continue
		}
		if created {
			guardCreated++
		}
	}
	log.Printf("📋 Guards: %d created, %d total", guardCreated, len(guards))

	return nil
}

func loadAgencies(dataDir string) ([]AgencyData, error) {
	var allAgencies []AgencyData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "agencies") {
			var file AgenciesFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allAgencies = append(allAgencies, file.Agencies...)
		}
		return nil
	})

	return allAgencies, err
}

func loadBranches(dataDir string) ([]BranchData, error) {
	var allBranches []BranchData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "branches") {
			var file BranchesFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allBranches = append(allBranches, file.Branches...)
		}
		return nil
	})

	return allBranches, err
}

func loadCheckpoints(dataDir string) ([]CheckpointData, error) {
	var allCheckpoints []CheckpointData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "checkpoints") {
			var file CheckpointsFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allCheckpoints = append(allCheckpoints, file.Checkpoints...)
		}
		return nil
	})

	return allCheckpoints, err
}

func loadGuards(dataDir string) ([]GuardData, error) {
	var allGuards []GuardData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "guards") {
			var file GuardsFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allGuards = append(allGuards, file.Guards...)
		}
		return nil
	})

	return allGuards, err
}

func createAgency(db *gorm.DB, agencyData AgencyData) (*models.Agency, bool, error) {
	var agency models.Agency
	if err := db.Where("name = ?", agencyData.Name).First(&agency).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			metadataJSON, _ := json.Marshal(agencyData.Metadata)

			agency = models.Agency{
				BaseModel: models.BaseModel{
					Name:        agencyData.Name,
					Title:       agencyData.Title,
					Description: agencyData.Description,
					Metadata:    metadataJSON,
				},
				ContactEmail: agencyData.ContactEmail,
				ContactPhone: agencyData.ContactPhone,
			}

			if err := db.Create(&agency).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create agency: %w", err)
			}
			return &agency, true, nil
		}
		return nil, false, fmt.Errorf("failed to query agency: %w", err)
	}

	return &agency, false, nil
}

func createBranch(db *gorm.DB, branchData BranchData, agencyMap map[string]*models.Agency) (*models.Branch, bool, error) {
	agency := agencyMap[branchData.AgencyName]
	if agency == nil {
		return nil, false, fmt.Errorf("agency %s not found for branch %s", branchData.AgencyName, branchData.Name)
	}

	var branch models.Branch
	if err := db.Where("name = ? AND agency_id = ?", branchData.Name, agency.ID).First(&branch).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			metadataJSON, _ := json.Marshal(branchData.Metadata)

			branch = models.Branch{
				BaseModel: models.BaseModel{
					Name:        branchData.Name,
					Title:       branchData.Title,
					Description: branchData.Description,
					Metadata:    metadataJSON,
				},
				AgencyID: &agency.ID,
				City:     branchData.City,
				Address:  branchData.Address,
			}

			if err := db.Create(&branch).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create branch: %w", err)
			}
			return &branch, true, nil
		}
		return nil, false, fmt.Errorf("failed to query branch: %w", err)
	}

	return &branch, false, nil
}

func createCheckpoint(db *gorm.DB, checkpointData CheckpointData, branchMap map[string]*models.Branch) (*models.Checkpoint, bool, error) {
	branch := branchMap[checkpointData.BranchName]
	if branch == nil {
		return nil, false, fmt.Errorf("branch %s not found for checkpoint %s", checkpointData.BranchName, checkpointData.Name)
	}

	var checkpoint models.Checkpoint
	if err := db.Where("name = ? AND branch_id = ?", checkpointData.Name, branch.ID).First(&checkpoint).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			metadataJSON, _ := json.Marshal(checkpointData.Metadata)

			kind := models.CheckpointKindGate
			if checkpointData.Kind != "" {
				kind = models.CheckpointKind(checkpointData.Kind)
			}

			checkpoint = models.Checkpoint{
				BaseModel: models.BaseModel{
					Name:        checkpointData.Name,
					Title:       checkpointData.Title,
					Description: checkpointData.Description,
					Metadata:    metadataJSON,
				},
				BranchID: branch.ID,
				Kind:     kind,
			}

			if err := db.Create(&checkpoint).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create checkpoint: %w", err)
			}
			return &checkpoint, true, nil
		}
		return nil, false, fmt.Errorf("failed to query checkpoint: %w", err)
	}

	return &checkpoint, false, nil
}

func createGuard(db *gorm.DB, guardData GuardData, agencyMap map[string]*models.Agency, branchMap map[string]*models.Branch) (*models.Guard, bool, error) {
	var agencyID *uuid.UUID
	if guardData.AgencyName != "" {
		if agency := agencyMap[guardData.AgencyName]; agency != nil {
			agencyID = &agency.ID
		}
	}

	var branchID *uuid.UUID
	if guardData.BranchName != "" {
		if branch := branchMap[guardData.BranchName]; branch != nil {
			branchID = &branch.ID
		} else {
			log.Printf("⚠️  Warning: branch %s not found for guard %s", guardData.BranchName, guardData.Name)
		}
	}

	var guard models.Guard
	if err := db.Where("badge_number = ?", guardData.BadgeNumber).First(&guard).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			metadataJSON, _ := json.Marshal(guardData.Metadata)

			status := models.GuardStatusActive
			if guardData.Status != "" {
				status = models.GuardStatus(guardData.Status)
			}

			guard = models.Guard{
				BaseModel: models.BaseModel{
					Name:     guardData.Name,
					Title:    guardData.Title,
					Metadata: metadataJSON,
				},
				AgencyID:    agencyID,
				BranchID:    branchID,
				BadgeNumber: guardData.BadgeNumber,
				Phone:       guardData.Phone,
				Status:      status,
			}

			if err := db.Create(&guard).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create guard: %w", err)
			}
			return &guard, true, nil
		}
		return nil, false, fmt.Errorf("failed to query guard: %w", err)
	}

	return &guard, false, nil
}
