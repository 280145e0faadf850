package records

import (
	"fmt"

	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Entity selects which record table a query targets.
type Entity string

const (
	EntityPet  Entity = "Pet"
	EntityFood Entity = "Food"
)

// Filterable columns per entity. Query parameters are matched against
// these instead of being interpolated as raw column names.
var (
	petFilterColumns = map[string]struct{}{
		"name": {}, "level": {}, "tier": {}, "pack": {}, "effect_trigger": {},
	}
	foodFilterColumns = map[string]struct{}{
		"name": {}, "tier": {}, "holdable": {},
	}
)

// Store handles record database connections and queries.
type Store struct {
	DB              *gorm.DB
	IsValid         bool
	ShouldSaveLocal bool
	Logger          zerolog.Logger
}

// NewStore creates a new record store.
func NewStore(log zerolog.Logger) *Store {
	return &Store{Logger: log}
}

// Connect establishes a database connection, falling back to SQLite if
// Postgres fails or the configured driver is sqlite.
func (s *Store) Connect() error {
	var err error

	if viper.GetString("db.driver") == "postgres" {
		s.DB, err = s.getPostgresDB()
		if err != nil {
			s.Logger.Error().Err(err).Msg("Failed to connect to Postgres DB, trying SQLite")
		}
	}

	if s.DB == nil {
		s.ShouldSaveLocal = true
		s.DB, err = s.getSqliteDB(viper.GetString("db.path"))
		if err != nil || s.DB == nil {
			s.IsValid = false
			return fmt.Errorf("failed to get local SQLite DB: %s", err)
		}
	}

	sqlDB, err := s.DB.DB()
	if err != nil {
		return fmt.Errorf("failed to access sql interface: %s", err)
	}
	if err = sqlDB.Ping(); err != nil {
		s.IsValid = false
		return fmt.Errorf("failed to validate connection: %s", err)
	}

	s.IsValid = true
	s.Logger.Info().Str("dialect", s.DB.Dialector.Name()).Msg("Connected to record database")
	return nil
}

// getPostgresDB returns a connection to the Postgres database.
func (s *Store) getPostgresDB() (*gorm.DB, error) {
	dsn := fmt.Sprintf(`host=%s port=%s user=%s password=%s dbname=%s sslmode=disable`,
		viper.GetString("db.host"),
		viper.GetString("db.port"),
		viper.GetString("db.username"),
		viper.GetString("db.password"),
		viper.GetString("db.database"),
	)

	s.Logger.Debug().Msgf("Connecting to Postgres DB at '%s'", dsn)

	return gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
}

// getSqliteDB returns a connection to a SQLite database.
// If path is empty, uses an in-memory database.
func (s *Store) getSqliteDB(path string) (*gorm.DB, error) {
	dsn := path
	if dsn == "" {
		dsn = "file::memory:?cache=shared"
		s.Logger.Info().Msg("Using in-memory SQLite record DB")
	} else {
		s.Logger.Info().Str("path", path).Msg("Using local SQLite record DB")
	}

	return gorm.Open(sqlite.Open(dsn), &gorm.Config{
		PrepareStmt:            true,
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
}

// Setup migrates the record tables and seeds them when empty.
func (s *Store) Setup() error {
	if err := s.DB.AutoMigrate(DatabaseModels...); err != nil {
		s.IsValid = false
		return fmt.Errorf("failed to migrate schema: %s", err)
	}

	var count int64
	if err := s.DB.Model(&PetRecord{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count pet records: %s", err)
	}
	if count == 0 {
		if err := s.seed(); err != nil {
			return fmt.Errorf("failed to seed records: %s", err)
		}
		s.Logger.Info().Msg("Seeded record database")
	}

	s.Logger.Info().Msg("Record database setup complete")
	return nil
}

// QueryPets returns pet records matching the given equality filters,
// one value per field. Unknown filter fields are rejected.
func (s *Store) QueryPets(filters map[string]string) ([]PetRecord, error) {
	tx, err := applyFilters(s.DB.Model(&PetRecord{}), filters, petFilterColumns)
	if err != nil {
		return nil, err
	}
	var recs []PetRecord
	if err := tx.Order("tier, name, level").Find(&recs).Error; err != nil {
		return nil, err
	}
	return recs, nil
}

// QueryFoods returns food records matching the given equality filters.
func (s *Store) QueryFoods(filters map[string]string) ([]FoodRecord, error) {
	tx, err := applyFilters(s.DB.Model(&FoodRecord{}), filters, foodFilterColumns)
	if err != nil {
		return nil, err
	}
	var recs []FoodRecord
	if err := tx.Order("tier, name").Find(&recs).Error; err != nil {
		return nil, err
	}
	return recs, nil
}

// applyFilters adds one equality condition per filter after validating
// the field name against the entity's column set.
func applyFilters(tx *gorm.DB, filters map[string]string, allowed map[string]struct{}) (*gorm.DB, error) {
	for field, value := range filters {
		if _, ok := allowed[field]; !ok {
			return nil, fmt.Errorf("unknown filter field %q", field)
		}
		tx = tx.Where(fmt.Sprintf("%s = ?", field), value)
	}
	return tx, nil
}
