package model

import "testing"

func TestApplyTypeDefaultsElectric(t *testing.T) {
	car := Car{CarType: CarTypeElectric}
	car.ApplyTypeDefaults()

	if car.CurrentChargePercent == nil || *car.CurrentChargePercent != 100 {
		t.Fatalf("expected full charge, got %v", car.CurrentChargePercent)
	}
	if car.BatteryHealth == nil || *car.BatteryHealth != 100 {
		t.Fatalf("expected full battery health, got %v", car.BatteryHealth)
	}
	if car.FuelLevel != nil {
		t.Fatalf("expected no fuel level for electric car, got %v", *car.FuelLevel)
	}
}

func TestApplyTypeDefaultsGas(t *testing.T) {
	car := Car{CarType: CarTypeGas}
	car.ApplyTypeDefaults()

	if car.FuelLevel == nil || *car.FuelLevel != 100 {
		t.Fatalf("expected full tank, got %v", car.FuelLevel)
	}
	if car.CurrentChargePercent != nil || car.BatteryHealth != nil {
		t.Fatalf("expected no battery columns for gas car")
	}
}

func TestTripStatusValid(t *testing.T) {
	for _, status := range []TripStatus{
		TripStatusIdle, TripStatusHeadingToPickup, TripStatusOnHighway, TripStatusRestStop, TripStatusCompleted,
	} {
		if !status.Valid() {
			t.Fatalf("expected %s to be valid", status)
		}
	}
	if TripStatus("parked").Valid() {
		t.Fatalf("expected unknown status to be invalid")
	}
}

func TestEnergyLogLedgerCategory(t *testing.T) {
	if got := EnergyLogCharging.LedgerCategory(); got != CategoryCharging {
		t.Fatalf("expected charging category, got %s", got)
	}
	if got := EnergyLogFueling.LedgerCategory(); got != CategoryFuel {
		t.Fatalf("expected fuel category, got %s", got)
	}
}
