package services

import (
	"courier-route-service/internal/domain"
	"testing"
)

func TestFingerprint(t *testing.T) {
	segments := lineSegments()
	requests := []domain.DeliveryRequest{
		{ID: 1, Pickup: 2, Delivery: 3, Warehouse: 1, CourierID: courierID(1)},
	}
	couriers := []domain.Courier{{ID: 1, Name: "C1"}}

	base := Fingerprint(segments, requests, couriers)
	if len(base) != 16 {
		t.Fatalf("fingerprint %q has length %d, want 16", base, len(base))
	}
	if again := Fingerprint(lineSegments(), requests, couriers); again != base {
		t.Fatalf("fingerprint not stable: %s != %s", again, base)
	}

	// Names do not take part in planning.
	renamed := []domain.Courier{{ID: 1, Name: "other"}}
	if got := Fingerprint(segments, requests, renamed); got != base {
		t.Errorf("courier rename changed fingerprint")
	}

	longer := lineSegments()
	longer[1].Length = 6
	unassigned := []domain.DeliveryRequest{{ID: 1, Pickup: 2, Delivery: 3, Warehouse: 1}}
	reversed := []domain.Segment{segments[1], segments[0]}
	more := []domain.Courier{{ID: 1}, {ID: 2}}

	changes := map[string]string{
		"segment length": Fingerprint(longer, requests, couriers),
		"assignment":     Fingerprint(segments, unassigned, couriers),
		"segment order":  Fingerprint(reversed, requests, couriers),
		"courier added":  Fingerprint(segments, requests, more),
		"no segments":    Fingerprint(nil, requests, couriers),
	}
	for name, got := range changes {
		if got == base {
			t.Errorf("%s: fingerprint unchanged", name)
		}
	}
}
