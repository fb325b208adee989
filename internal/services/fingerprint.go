package services

import (
	"courier-route-service/internal/domain"
	"fmt"
	"math"
	"strconv"

	"github.com/cespare/xxhash/v2"
)

// Fingerprint identifies a planning input snapshot, for use as a route cache key.
//
// Order is significant: segment order decides which parallel segment wins and
// request order decides the warehouse, so reordered inputs hash differently.
func Fingerprint(
	segments []domain.Segment,
	requests []domain.DeliveryRequest,
	couriers []domain.Courier,
) string {
	d := xxhash.New()
	buf := make([]byte, 0, 64)

	write := func(parts ...int64) {
		buf = buf[:0]
		for _, p := range parts {
			buf = strconv.AppendInt(buf, p, 10)
			buf = append(buf, ',')
		}
		buf = append(buf, ';')
		_, _ = d.Write(buf)
	}

	_, _ = d.WriteString("segments:")
	for _, s := range segments {
		write(int64(s.Origin), int64(s.Destination), int64(math.Float64bits(s.Length)))
	}

	_, _ = d.WriteString("requests:")
	for _, r := range requests {
		courier := int64(-1)
		if r.CourierID != nil {
			courier = *r.CourierID
		}
		write(r.ID, int64(r.Pickup), int64(r.Delivery), int64(r.Warehouse), courier)
	}

	_, _ = d.WriteString("couriers:")
	for _, c := range couriers {
		write(c.ID)
	}

	return fmt.Sprintf("%016x", d.Sum64())
}
