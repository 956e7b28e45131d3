package usecase

import (
	"io"
	"testing"
	"time"

	"go-petclinic/internal/domain/entity"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// A single connection keeps every query on the same in-memory database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&entity.Owner{},
		&entity.PetType{},
		&entity.Pet{},
		&entity.Visit{},
		&entity.Vet{},
		&entity.Specialty{},
	))

	return db
}

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func date(value string) time.Time {
	d, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return d
}

// seedClinic loads the sample clinic dataset: ten owners (one Franklin, two
// Davis), six pet types, a handful of pets and six vets.
func seedClinic(t *testing.T, db *gorm.DB) {
	t.Helper()

	owners := []entity.Owner{
		{FirstName: "George", LastName: "Franklin", Address: "110 W. Liberty St.", City: "Madison", Telephone: "6085551023"},
		{FirstName: "Betty", LastName: "Davis", Address: "638 Cardinal Ave.", City: "Sun Prairie", Telephone: "6085551749"},
		{FirstName: "Eduardo", LastName: "Rodriquez", Address: "2693 Commerce St.", City: "McFarland", Telephone: "6085558763"},
		{FirstName: "Harold", LastName: "Davis", Address: "563 Friendly St.", City: "Windsor", Telephone: "6085553198"},
		{FirstName: "Peter", LastName: "McTavish", Address: "2387 S. Fair Way", City: "Madison", Telephone: "6085552765"},
		{FirstName: "Jean", LastName: "Coleman", Address: "105 N. Lake St.", City: "Monona", Telephone: "6085552654"},
		{FirstName: "Jeff", LastName: "Black", Address: "1450 Oak Blvd.", City: "Monona", Telephone: "6085555387"},
		{FirstName: "Maria", LastName: "Escobito", Address: "345 Maple St.", City: "Madison", Telephone: "6085557683"},
		{FirstName: "David", LastName: "Schroeder", Address: "2749 Blackhawk Trail", City: "Madison", Telephone: "6085559435"},
		{FirstName: "Carlos", LastName: "Estaban", Address: "2335 Independence La.", City: "Waunakee", Telephone: "6085555487"},
	}
	require.NoError(t, db.Create(&owners).Error)

	types := []entity.PetType{
		{Name: "cat"}, {Name: "dog"}, {Name: "lizard"},
		{Name: "snake"}, {Name: "bird"}, {Name: "hamster"},
	}
	require.NoError(t, db.Create(&types).Error)

	pets := []entity.Pet{
		{Name: "Leo", BirthDate: date("2010-09-07"), TypeID: types[0].ID, OwnerID: owners[0].ID},
		{Name: "Basil", BirthDate: date("2012-08-06"), TypeID: types[5].ID, OwnerID: owners[1].ID},
		{Name: "Samantha", BirthDate: date("2012-09-04"), TypeID: types[0].ID, OwnerID: owners[5].ID},
		{Name: "Max", BirthDate: date("2012-09-04"), TypeID: types[0].ID, OwnerID: owners[5].ID},
	}
	require.NoError(t, db.Create(&pets).Error)

	radiology := entity.Specialty{Name: "radiology"}
	surgery := entity.Specialty{Name: "surgery"}
	dentistry := entity.Specialty{Name: "dentistry"}

	vets := []entity.Vet{
		{FirstName: "James", LastName: "Carter"},
		{FirstName: "Helen", LastName: "Leary", Specialties: []entity.Specialty{radiology}},
		{FirstName: "Linda", LastName: "Douglas", Specialties: []entity.Specialty{surgery, dentistry}},
		{FirstName: "Rafael", LastName: "Ortega", Specialties: []entity.Specialty{surgery}},
		{FirstName: "Henry", LastName: "Stevens", Specialties: []entity.Specialty{radiology}},
		{FirstName: "Sharon", LastName: "Jenkins"},
	}
	require.NoError(t, db.Create(&vets).Error)
}
