package acquire

import "testing"

func TestCalibratorEstablishesZeroFirst(t *testing.T) {
	c := NewCalibrator()

	if _, set := c.Offset(); set {
		t.Fatalf("fresh calibrator must have no offset")
	}

	offset, established := c.Apply(100.50)
	if !established {
		t.Fatalf("first value must establish the zero offset")
	}
	if offset != 100.50 {
		t.Fatalf("offset = %v; want 100.50", offset)
	}

	value, established := c.Apply(105.75)
	if established {
		t.Fatalf("second value must be a sample, not a zero")
	}
	if value != 105.75-100.50 {
		t.Fatalf("value = %v; want %v", value, 105.75-100.50)
	}
}

func TestCalibratorManualZero(t *testing.T) {
	c := NewCalibrator()
	c.Apply(100.0)

	c.ManualZero(102.0)
	if offset, set := c.Offset(); !set || offset != 102.0 {
		t.Fatalf("offset = %v, %v; want 102.0, true", offset, set)
	}

	value, established := c.Apply(102.0)
	if established || value != 0 {
		t.Fatalf("value after re-zero = %v (established=%v); want 0", value, established)
	}
}

func TestCalibratorManualZeroOnUncalibrated(t *testing.T) {
	c := NewCalibrator()
	c.ManualZero(50.0)

	value, established := c.Apply(51.0)
	if established {
		t.Fatalf("offset was set manually, Apply must not re-establish")
	}
	if value != 1.0 {
		t.Fatalf("value = %v; want 1.0", value)
	}
}

func TestCalibratorReset(t *testing.T) {
	c := NewCalibrator()
	c.Apply(10.0)
	c.Reset()

	if _, set := c.Offset(); set {
		t.Fatalf("offset must be unset after reset")
	}
	if _, established := c.Apply(20.0); !established {
		t.Fatalf("first value after reset must establish a new zero")
	}
}
