package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CarType string

const (
	CarTypeElectric CarType = "electric"
	CarTypeGas      CarType = "gas"
)

func (t CarType) Valid() bool {
	return t == CarTypeElectric || t == CarTypeGas
}

// TripStatus doubles as the car status column: the dashboard mirrors a
// car's state from the trip it is currently serving.
type TripStatus string

const (
	TripStatusIdle            TripStatus = "idle"
	TripStatusHeadingToPickup TripStatus = "heading_to_pickup"
	TripStatusOnHighway       TripStatus = "on_highway"
	TripStatusRestStop        TripStatus = "rest_stop"
	TripStatusCompleted       TripStatus = "completed"
)

func (s TripStatus) Valid() bool {
	switch s {
	case TripStatusIdle, TripStatusHeadingToPickup, TripStatusOnHighway, TripStatusRestStop, TripStatusCompleted:
		return true
	}
	return false
}

type Car struct {
	ID                   uuid.UUID  `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	PlateNumber          string     `gorm:"type:varchar(32);uniqueIndex;not null" json:"plate_number"`
	Model                string     `gorm:"type:varchar(128);not null" json:"model"`
	Year                 int        `gorm:"not null" json:"year"`
	CarType              CarType    `gorm:"type:car_type;not null;default:'gas'" json:"car_type"`
	Mileage              float64    `gorm:"not null;default:0" json:"mileage"`
	CurrentChargePercent *float64   `json:"current_charge_percent"`
	BatteryHealth        *float64   `json:"battery_health"`
	FuelLevel            *float64   `json:"fuel_level"`
	OilChangeMileage     *float64   `json:"oil_change_mileage"`
	LastOilChangeMileage *float64   `json:"last_oil_change_mileage"`
	HealthScore          *float64   `gorm:"default:100" json:"health_score"`
	Status               TripStatus `gorm:"type:trip_status;not null;default:'idle'" json:"status"`
	CreatedAt            time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt            time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Car) TableName() string {
	return "cars"
}

func (c *Car) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// ApplyTypeDefaults initializes the energy columns for a freshly
// registered car: electric cars start fully charged with a healthy
// battery, gas cars start with a full tank.
func (c *Car) ApplyTypeDefaults() {
	full := 100.0
	switch c.CarType {
	case CarTypeElectric:
		charge, health := full, full
		c.CurrentChargePercent = &charge
		c.BatteryHealth = &health
		c.FuelLevel = nil
	case CarTypeGas:
		fuel := full
		c.FuelLevel = &fuel
		c.CurrentChargePercent = nil
		c.BatteryHealth = nil
	}
}
