package service

import (
	"testing"

	"fleet-service/internal/model"
)

func TestApplyCarUpdateReinitializesEnergyOnTypeChange(t *testing.T) {
	car := &model.Car{
		PlateNumber: "123ABC01",
		Model:       "Toyota Camry",
		Year:        2021,
		CarType:     model.CarTypeGas,
	}
	car.ApplyTypeDefaults()
	if car.FuelLevel == nil {
		t.Fatalf("gas car must start with a fuel gauge")
	}

	if err := applyCarUpdate(car, CarInput{CarType: model.CarTypeElectric}); err != nil {
		t.Fatalf("apply update: %v", err)
	}

	if car.CarType != model.CarTypeElectric {
		t.Fatalf("car type = %s, want electric", car.CarType)
	}
	if car.FuelLevel != nil {
		t.Fatalf("converted car must drop the fuel gauge")
	}
	if car.CurrentChargePercent == nil || *car.CurrentChargePercent != 100 {
		t.Fatalf("converted car must start fully charged")
	}
	if car.BatteryHealth == nil || *car.BatteryHealth != 100 {
		t.Fatalf("converted car must start with a healthy battery")
	}
}

func TestApplyCarUpdateKeepsGaugesWhenTypeUnchanged(t *testing.T) {
	car := &model.Car{CarType: model.CarTypeGas}
	car.ApplyTypeDefaults()
	half := 47.5
	car.FuelLevel = &half

	if err := applyCarUpdate(car, CarInput{CarType: model.CarTypeGas, Mileage: 120500}); err != nil {
		t.Fatalf("apply update: %v", err)
	}

	if car.FuelLevel == nil || *car.FuelLevel != half {
		t.Fatalf("restating the same type must not reset the fuel gauge")
	}
	if car.Mileage != 120500 {
		t.Fatalf("mileage = %v, want 120500", car.Mileage)
	}
}

func TestApplyCarUpdateRejectsUnknownType(t *testing.T) {
	car := &model.Car{CarType: model.CarTypeGas}

	if err := applyCarUpdate(car, CarInput{CarType: model.CarType("steam")}); err != ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if car.CarType != model.CarTypeGas {
		t.Fatalf("rejected update must not change the car")
	}
}
