package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/petshopsuite/petshop-api/internal/domain/appointment"
	"github.com/petshopsuite/petshop-api/internal/httperr"
	"github.com/petshopsuite/petshop-api/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// PetShop
// --------------------------------------------------

func (r *AppointmentGormRepository) GetPetShopByID(
	ctx context.Context,
	id uint,
) (*models.PetShop, error) {

	var shop models.PetShop
	if err := r.db.WithContext(ctx).First(&shop, id).Error; err != nil {
		return nil, err
	}
	return &shop, nil
}

// --------------------------------------------------
// Service
// --------------------------------------------------

func (r *AppointmentGormRepository) GetService(
	ctx context.Context,
	petShopID uint,
	serviceID uint,
) (*models.GroomService, error) {

	var svc models.GroomService
	if err := r.db.WithContext(ctx).
		Where("id = ? AND pet_shop_id = ?", serviceID, petShopID).
		First(&svc).Error; err != nil {
		return nil, err
	}
	return &svc, nil
}

// --------------------------------------------------
// Client / Pet
// --------------------------------------------------

func (r *AppointmentGormRepository) GetOrCreateClient(
	ctx context.Context,
	petShopID uint,
	name string,
	phone string,
	email string,
) (*models.Client, error) {

	var client models.Client
	err := r.db.WithContext(ctx).
		Where("pet_shop_id = ? AND phone = ?", petShopID, phone).
		First(&client).Error

	if err == nil {
		return &client, nil
	}

	client = models.Client{
		PetShopID: petShopID,
		Name:      name,
		Phone:     phone,
		Email:     email,
	}

	if err := r.db.WithContext(ctx).Create(&client).Error; err != nil {
		return nil, err
	}

	return &client, nil
}

func (r *AppointmentGormRepository) GetOrCreatePet(
	ctx context.Context,
	petShopID uint,
	clientID uint,
	name string,
	species string,
) (*models.Pet, error) {

	var pet models.Pet
	err := r.db.WithContext(ctx).
		Where("pet_shop_id = ? AND client_id = ? AND LOWER(name) = LOWER(?)", petShopID, clientID, name).
		First(&pet).Error

	if err == nil {
		return &pet, nil
	}

	pet = models.Pet{
		PetShopID: petShopID,
		ClientID:  clientID,
		Name:      name,
		Species:   species,
	}

	if err := r.db.WithContext(ctx).Create(&pet).Error; err != nil {
		return nil, err
	}

	return &pet, nil
}

// --------------------------------------------------
// Appointment
// --------------------------------------------------

func (r *AppointmentGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Create(ap).Error
}

func (r *AppointmentGormRepository) AssertNoTimeConflict(
	ctx context.Context,
	groomerID uint,
	start time.Time,
	end time.Time,
) error {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where(
			"groomer_id = ? AND status IN ('scheduled', 'confirmed') AND start_time < ? AND end_time > ?",
			groomerID,
			end,
			start,
		).
		Count(&count).Error; err != nil {
		return err
	}

	if count > 0 {
		return httperr.ErrBusiness("time_conflict")
	}

	return nil
}

// --------------------------------------------------
// Appointment (Cancel / Complete)
// --------------------------------------------------

func (r *AppointmentGormRepository) GetAppointmentForGroomer(
	ctx context.Context,
	appointmentID uint,
	groomerID uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Where("id = ? AND groomer_id = ?", appointmentID, groomerID).
		First(&ap).Error; err != nil {
		return nil, err
	}

	return &ap, nil
}

func (r *AppointmentGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Save(ap).Error
}

func (r *AppointmentGormRepository) SetCompleted(
	ctx context.Context,
	appointmentID uint,
	now time.Time,
) error {

	res := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("id = ? AND status IN ('scheduled', 'confirmed')", appointmentID).
		Updates(map[string]any{
			"status":       string(domain.StatusCompleted),
			"completed_at": now,
		})

	if res.Error != nil {
		return res.Error
	}

	if res.RowsAffected == 0 {
		return httperr.ErrBusiness("invalid_state")
	}

	return nil
}

// --------------------------------------------------
// Availability
// --------------------------------------------------

func (r *AppointmentGormRepository) GetWorkingHours(
	ctx context.Context,
	groomerID uint,
	weekday int,
) (*models.WorkingHours, error) {

	var wh models.WorkingHours
	if err := r.db.WithContext(ctx).
		Where("groomer_id = ? AND weekday = ?", groomerID, weekday).
		First(&wh).Error; err != nil {
		return nil, err
	}

	return &wh, nil
}

func (r *AppointmentGormRepository) ListAppointmentsForDay(
	ctx context.Context,
	groomerID uint,
	start time.Time,
	end time.Time,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Select("start_time", "end_time").
		Where(
			"groomer_id = ? AND status IN ('scheduled', 'confirmed') AND start_time >= ? AND start_time < ?",
			groomerID, start, end,
		).
		Order("start_time ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}

	return apps, nil
}

func (r *AppointmentGormRepository) IsWithinWorkingHours(
	ctx context.Context,
	groomerID uint,
	start time.Time,
	end time.Time,
) (bool, error) {

	weekday := int(start.Weekday())
	loc := start.Location()

	var wh models.WorkingHours
	if err := r.db.WithContext(ctx).
		Where("groomer_id = ? AND weekday = ?", groomerID, weekday).
		First(&wh).Error; err != nil {
		return false, nil
	}

	if !wh.Active || wh.StartTime == "" || wh.EndTime == "" {
		return false, nil
	}

	parseHM := func(hm string) time.Time {
		t, _ := time.Parse("15:04", hm)
		return time.Date(
			start.Year(), start.Month(), start.Day(),
			t.Hour(), t.Minute(), 0, 0,
			loc,
		)
	}

	workStart := parseHM(wh.StartTime)
	workEnd := parseHM(wh.EndTime)

	if start.Before(workStart) || end.After(workEnd) {
		return false, nil
	}

	if wh.LunchStart != "" && wh.LunchEnd != "" {
		lunchStart := parseHM(wh.LunchStart)
		lunchEnd := parseHM(wh.LunchEnd)
		if start.Before(lunchEnd) && end.After(lunchStart) {
			return false, nil
		}
	}

	return true, nil
}

func (r *AppointmentGormRepository) ListAppointmentsForPeriod(
	ctx context.Context,
	groomerID uint,
	start time.Time,
	end time.Time,
) ([]models.Appointment, error) {

	var apps []models.Appointment

	err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Pet").
		Preload("GroomService").
		Where(
			"groomer_id = ? AND start_time >= ? AND start_time < ?",
			groomerID,
			start,
			end,
		).
		Order("start_time ASC").
		Find(&apps).Error

	if err != nil {
		return nil, err
	}

	return apps, nil
}

// --------------------------------------------------
// Aggregates
// --------------------------------------------------

func (r *AppointmentGormRepository) CountActiveForDay(
	ctx context.Context,
	petShopID uint,
	start time.Time,
	end time.Time,
) (int64, error) {

	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where(
			"pet_shop_id = ? AND status <> 'cancelled' AND start_time >= ? AND start_time < ?",
			petShopID, start, end,
		).
		Count(&count).Error

	return count, err
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
