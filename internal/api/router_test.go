package api

import (
	"bytes"
	"courier-route-service/internal/adapters/repositories"
	"courier-route-service/internal/api/dto"
	"courier-route-service/internal/domain"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func courierID(v int64) *int64 { return &v }

func newTestRouter(t *testing.T) (http.Handler, *repositories.Memory) {
	t.Helper()
	m := repositories.NewMemory()
	m.AddNodes(domain.Node{ID: 1}, domain.Node{ID: 2}, domain.Node{ID: 3}, domain.Node{ID: 9})
	m.AddSegments(
		domain.Segment{Origin: 1, Destination: 2, Length: 10, Name: "A"},
		domain.Segment{Origin: 2, Destination: 3, Length: 5, Name: "B"},
	)
	m.AddCouriers(domain.Courier{ID: 1, Name: "Alice"})
	m.AddDeliveryRequests(domain.DeliveryRequest{Pickup: 2, Delivery: 3, Warehouse: 1, CourierID: courierID(1)})

	return NewRouter(Dependencies{Map: m, Requests: m, Couriers: m, Cache: nil}), m
}

func do(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func TestHealth(t *testing.T) {
	h, _ := newTestRouter(t)

	rr := do(t, h, http.MethodGet, "/health", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("health: got %d", rr.Code)
	}
	if rr.Header().Get("X-Request-ID") == "" {
		t.Fatal("missing X-Request-ID response header")
	}

	rr = do(t, h, http.MethodPost, "/health", "")
	if rr.Code != http.StatusMethodNotAllowed {
		t.Fatalf("POST /health: got %d, want 405", rr.Code)
	}
}

func TestRequestIDPropagated(t *testing.T) {
	h, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if got := rr.Header().Get("X-Request-ID"); got != "abc-123" {
		t.Fatalf("X-Request-ID = %q, want abc-123", got)
	}
}

func TestPlans(t *testing.T) {
	h, _ := newTestRouter(t)

	rr := do(t, h, http.MethodPost, "/plans", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("plans: got %d body=%s", rr.Code, rr.Body)
	}

	var res dto.ListPlanResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(res.Routes) != 1 {
		t.Fatalf("expected 1 route, got %d", len(res.Routes))
	}
	r := res.Routes[0]
	if r.CourierID != 1 {
		t.Errorf("courier_id = %d, want 1", r.CourierID)
	}
	want := []int64{1, 2, 3, 2, 1}
	if len(r.Nodes) != len(want) {
		t.Fatalf("nodes = %v, want %v", r.Nodes, want)
	}
	for i := range want {
		if r.Nodes[i] != want[i] {
			t.Fatalf("nodes = %v, want %v", r.Nodes, want)
		}
	}
	if r.TotalLength == nil || *r.TotalLength != 30 {
		t.Errorf("total_length = %v, want 30", r.TotalLength)
	}
}

func TestPlansRejections(t *testing.T) {
	h, m := newTestRouter(t)
	m.AddDeliveryRequests(domain.DeliveryRequest{Pickup: 2, Delivery: 42, Warehouse: 1, CourierID: courierID(1)})

	rr := do(t, h, http.MethodPost, "/plans", "")
	if rr.Code != http.StatusUnprocessableEntity {
		t.Fatalf("incomplete graph: got %d, want 422", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "node 42") {
		t.Fatalf("body %s does not name the missing node", rr.Body)
	}

	empty := repositories.NewMemory()
	empty.AddDeliveryRequests(domain.DeliveryRequest{Pickup: 2, Delivery: 3, Warehouse: 1})
	h = NewRouter(Dependencies{Map: empty, Requests: empty, Couriers: empty})
	rr = do(t, h, http.MethodPost, "/plans", "")
	if rr.Code != http.StatusConflict {
		t.Fatalf("no couriers: got %d, want 409", rr.Code)
	}
}

func TestAssignCourier(t *testing.T) {
	h, _ := newTestRouter(t)

	rr := do(t, h, http.MethodPost, "/couriers", `{"name":""}`)
	if rr.Code != http.StatusCreated {
		t.Fatalf("create courier: got %d body=%s", rr.Code, rr.Body)
	}
	var c dto.CourierResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &c); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if c.ID != 2 || c.Name != "Courier 2" {
		t.Fatalf("courier = %+v, want id 2 named Courier 2", c)
	}

	rr = do(t, h, http.MethodPut, "/requests/1/courier", `{"courier_id":2}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("assign: got %d body=%s", rr.Code, rr.Body)
	}
	var got dto.DeliveryRequestResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.CourierID == nil || *got.CourierID != 2 {
		t.Fatalf("courier_id = %v, want 2", got.CourierID)
	}

	tests := []struct {
		name   string
		target string
		body   string
		want   int
	}{
		{"unknown courier", "/requests/1/courier", `{"courier_id":99}`, http.StatusNotFound},
		{"unknown request", "/requests/99/courier", `{"courier_id":1}`, http.StatusNotFound},
		{"missing courier id", "/requests/1/courier", `{}`, http.StatusBadRequest},
		{"unknown field", "/requests/1/courier", `{"courier":1}`, http.StatusBadRequest},
		{"bad id", "/requests/abc/courier", `{"courier_id":1}`, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := do(t, h, http.MethodPut, tt.target, tt.body)
			if rr.Code != tt.want {
				t.Fatalf("got %d, want %d (body=%s)", rr.Code, tt.want, rr.Body)
			}
		})
	}
}

func TestCreateCourierNameTooLong(t *testing.T) {
	h, _ := newTestRouter(t)

	rr := do(t, h, http.MethodPost, "/couriers", `{"name":"`+strings.Repeat("x", 65)+`"}`)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("got %d, want 400", rr.Code)
	}
}

func TestPaths(t *testing.T) {
	h, _ := newTestRouter(t)

	rr := do(t, h, http.MethodGet, "/paths?from=1&to=3", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("paths: got %d", rr.Code)
	}
	var res dto.PathResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if res.Distance == nil || *res.Distance != 15 {
		t.Fatalf("distance = %v, want 15", res.Distance)
	}
	if len(res.Nodes) != 3 {
		t.Fatalf("nodes = %v, want [1 2 3]", res.Nodes)
	}

	rr = do(t, h, http.MethodGet, "/paths?from=1&to=9", "")
	if !strings.Contains(rr.Body.String(), `"distance":null`) {
		t.Fatalf("unreachable body = %s, want null distance", rr.Body)
	}

	rr = do(t, h, http.MethodGet, "/paths?from=x&to=1", "")
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("bad query: got %d, want 400", rr.Code)
	}
}

func TestListings(t *testing.T) {
	h, _ := newTestRouter(t)

	for _, target := range []string{"/nodes", "/segments", "/requests", "/couriers", "/metrics"} {
		rr := do(t, h, http.MethodGet, target, "")
		if rr.Code != http.StatusOK {
			t.Errorf("GET %s: got %d", target, rr.Code)
		}
	}

	rr := do(t, h, http.MethodGet, "/segments", "")
	var res dto.ListSegmentsResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(res.Segments) != 2 || res.Segments[1].Name != "B" {
		t.Fatalf("segments = %+v", res.Segments)
	}
}

func TestRateLimit(t *testing.T) {
	m := repositories.NewMemory()
	h := NewRouter(Dependencies{Map: m, Requests: m, Couriers: m, RateLimit: 0.001, Burst: 2})

	for i := 0; i < 2; i++ {
		if rr := do(t, h, http.MethodGet, "/health", ""); rr.Code != http.StatusOK {
			t.Fatalf("request %d: got %d", i+1, rr.Code)
		}
	}
	if rr := do(t, h, http.MethodGet, "/health", ""); rr.Code != http.StatusTooManyRequests {
		t.Fatalf("third request: got %d, want 429", rr.Code)
	}
}
