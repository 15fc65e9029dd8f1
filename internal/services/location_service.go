package services

import (
	"database/sql"
	"errors"

	"github.com/megahand-az/megahand-be/internal/models"
)

// LocationInput carries the client-supplied fields for creating a location.
type LocationInput struct {
	Name             string
	Address          string
	ZipCode          *string
	Description      string
	ImageURL         *string
	PhoneNumber      *string
	InstagramAccount *string
	WhatsappNumber   *string
	Latitude         *string
	Longitude        *string
	Status           string
}

// LocationUpdate carries a partial update; nil fields are left untouched.
type LocationUpdate struct {
	Name             *string
	Address          *string
	ZipCode          *string
	Description      *string
	ImageURL         *string
	PhoneNumber      *string
	InstagramAccount *string
	WhatsappNumber   *string
	Latitude         *string
	Longitude        *string
	Status           *string
}

// LocationServiceProvider defines the interface for location services.
type LocationServiceProvider interface {
	GetAllLocations() ([]models.Location, error)
	GetLocationByID(id int64) (models.Location, error)
	CreateLocation(input LocationInput) (models.Location, error)
	UpdateLocation(id int64, update LocationUpdate) (models.Location, error)
	DeleteLocation(id int64) error
}

// LocationService provides business logic for store location management.
type LocationService struct {
	db *sql.DB
}

// NewLocationService creates a new LocationService.
func NewLocationService(db *sql.DB) *LocationService {
	return &LocationService{db: db}
}

const locationColumns = "id, name, address, zip_code, description, image_url, phone_number, instagram_account, whatsapp_number, latitude, longitude, status"

func scanLocation(row interface{ Scan(...any) error }) (models.Location, error) {
	var loc models.Location
	err := row.Scan(&loc.ID, &loc.Name, &loc.Address, &loc.ZipCode, &loc.Description,
		&loc.ImageURL, &loc.PhoneNumber, &loc.InstagramAccount, &loc.WhatsappNumber,
		&loc.Latitude, &loc.Longitude, &loc.Status)
	return loc, err
}

// GetAllLocations retrieves every location, newest first (descending id).
func (s *LocationService) GetAllLocations() ([]models.Location, error) {
	rows, err := s.db.Query("SELECT " + locationColumns + " FROM locations ORDER BY id DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	locations := []models.Location{}
	for rows.Next() {
		loc, err := scanLocation(rows)
		if err != nil {
			return nil, err
		}
		locations = append(locations, loc)
	}
	return locations, rows.Err()
}

// GetLocationByID retrieves a single location by its ID.
func (s *LocationService) GetLocationByID(id int64) (models.Location, error) {
	row := s.db.QueryRow("SELECT "+locationColumns+" FROM locations WHERE id = ?", id)
	loc, err := scanLocation(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Location{}, ErrNotFound
		}
		return models.Location{}, err
	}
	return loc, nil
}

// CreateLocation inserts a new location, assigning its id.
func (s *LocationService) CreateLocation(input LocationInput) (models.Location, error) {
	if input.Status == "" {
		input.Status = models.LocationStatusActive
	}

	stmt, err := s.db.Prepare(`INSERT INTO locations(name, address, zip_code, description, image_url,
		phone_number, instagram_account, whatsapp_number, latitude, longitude, status)
		VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return models.Location{}, err
	}
	defer stmt.Close()

	res, err := stmt.Exec(input.Name, input.Address, input.ZipCode, input.Description, input.ImageURL,
		input.PhoneNumber, input.InstagramAccount, input.WhatsappNumber, input.Latitude, input.Longitude, input.Status)
	if err != nil {
		return models.Location{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return models.Location{}, err
	}
	return s.GetLocationByID(id)
}

// UpdateLocation applies a partial update to an existing location.
func (s *LocationService) UpdateLocation(id int64, update LocationUpdate) (models.Location, error) {
	loc, err := s.GetLocationByID(id)
	if err != nil {
		return models.Location{}, err
	}

	if update.Name != nil {
		loc.Name = *update.Name
	}
	if update.Address != nil {
		loc.Address = *update.Address
	}
	if update.ZipCode != nil {
		loc.ZipCode = update.ZipCode
	}
	if update.Description != nil {
		loc.Description = *update.Description
	}
	if update.ImageURL != nil {
		loc.ImageURL = update.ImageURL
	}
	if update.PhoneNumber != nil {
		loc.PhoneNumber = update.PhoneNumber
	}
	if update.InstagramAccount != nil {
		loc.InstagramAccount = update.InstagramAccount
	}
	if update.WhatsappNumber != nil {
		loc.WhatsappNumber = update.WhatsappNumber
	}
	if update.Latitude != nil {
		loc.Latitude = update.Latitude
	}
	if update.Longitude != nil {
		loc.Longitude = update.Longitude
	}
	if update.Status != nil {
		loc.Status = *update.Status
	}

	stmt, err := s.db.Prepare(`UPDATE locations SET name = ?, address = ?, zip_code = ?, description = ?,
		image_url = ?, phone_number = ?, instagram_account = ?, whatsapp_number = ?,
		latitude = ?, longitude = ?, status = ? WHERE id = ?`)
	if err != nil {
		return models.Location{}, err
	}
	defer stmt.Close()

	if _, err := stmt.Exec(loc.Name, loc.Address, loc.ZipCode, loc.Description, loc.ImageURL,
		loc.PhoneNumber, loc.InstagramAccount, loc.WhatsappNumber, loc.Latitude, loc.Longitude,
		loc.Status, id); err != nil {
		return models.Location{}, err
	}
	return loc, nil
}

// DeleteLocation removes a location. Returns ErrNotFound if no row existed.
func (s *LocationService) DeleteLocation(id int64) error {
	res, err := s.db.Exec("DELETE FROM locations WHERE id = ?", id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
