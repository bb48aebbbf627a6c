package septa

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/mini-septa/poller/internal/septa/catalog"
)

// newTestServer serves body on path and records the query it was called with.
func newTestServer(t *testing.T, path, body string, query *url.Values) *Client {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != path {
			http.NotFound(w, r)
			return
		}
		if query != nil {
			*query = r.URL.Query()
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)

	return NewClient(server.URL, 5*time.Second)
}

func TestClient_TrainView(t *testing.T) {
	client := newTestServer(t, "/TrainView/index.php", trainViewPayload, nil)

	trains, err := client.TrainView(context.Background())
	if err != nil {
		t.Fatalf("TrainView failed: %v", err)
	}
	if len(trains) != 3 {
		t.Fatalf("got %d trains, expected 3", len(trains))
	}
	if trains[0].Source.Code != catalog.NorristownTC {
		t.Errorf("Source = %v, expected Norristown T.C.", trains[0].Source)
	}
}

func TestClient_TrainView_APIError(t *testing.T) {
	client := newTestServer(t, "/TrainView/index.php", trainViewDisabled, nil)

	_, err := client.TrainView(context.Background())
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error = %v, expected *APIError", err)
	}
}

func TestClient_Arrivals(t *testing.T) {
	var query url.Values
	client := newTestServer(t, "/Arrivals/index.php", templeNorthbound, &query)

	north := North
	result, err := client.Arrivals(context.Background(), ArrivalsRequest{
		Station:   catalog.StopFor(catalog.TempleUniversity),
		Direction: &north,
	})
	if err != nil {
		t.Fatalf("Arrivals failed: %v", err)
	}
	if len(result.Northbound) != 5 {
		t.Errorf("Northbound has %d arrivals, expected 5", len(result.Northbound))
	}

	expected := url.Values{"station": {"Temple University"}, "direction": {"N"}}
	if query.Encode() != expected.Encode() {
		t.Errorf("query = %q, expected %q", query.Encode(), expected.Encode())
	}
}

func TestClient_NextToArrive(t *testing.T) {
	var query url.Values
	body := `[{"orig_train":"2565","orig_line":"Paoli/Thorndale","orig_departure_time":"11:49PM","orig_arrival_time":"12:33AM","orig_delay":"On time","isdirect":"true"}]`
	client := newTestServer(t, "/NextToArrive/index.php", body, &query)

	connections, err := client.NextToArrive(context.Background(), NextToArriveRequest{
		From: catalog.StopFor(catalog.TempleUniversity),
		To:   catalog.StopFor(catalog.StDavids),
	})
	if err != nil {
		t.Fatalf("NextToArrive failed: %v", err)
	}
	if len(connections) != 1 || connections[0].OriginTrain != "2565" {
		t.Errorf("connections = %+v", connections)
	}
	if query.Encode() != "req1=Temple+University&req2=St.+Davids" {
		t.Errorf("query = %q", query.Encode())
	}
}

func TestClient_RailSchedule(t *testing.T) {
	var query url.Values
	body := `[{"station":"Elwyn Station","sched_tm":"9:13 pm","est_tm":"9:14 pm","act_tm":"na"}]`
	client := newTestServer(t, "/RRSchedules/index.php", body, &query)

	stops, err := client.RailSchedule(context.Background(), RailScheduleRequest{TrainNumber: "3236"})
	if err != nil {
		t.Fatalf("RailSchedule failed: %v", err)
	}
	if len(stops) != 1 || stops[0].Station.Code != catalog.Elwyn || stops[0].ActualTime != nil {
		t.Errorf("stops = %+v", stops)
	}
	if query.Get("req1") != "3236" {
		t.Errorf("req1 = %q", query.Get("req1"))
	}
}

func TestClient_TransportErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)
	_, err := client.TrainView(context.Background())

	var transportErr *TransportError
	if !errors.As(err, &transportErr) {
		t.Fatalf("error = %v, expected *TransportError", err)
	}
	if transportErr.StatusCode != http.StatusInternalServerError {
		t.Errorf("StatusCode = %d", transportErr.StatusCode)
	}
}

func TestClient_DecodeError(t *testing.T) {
	client := newTestServer(t, "/TrainView/index.php", `{"unexpected":true}`, nil)

	_, err := client.TrainView(context.Background())
	if err == nil {
		t.Fatal("expected a decode error")
	}
	var apiErr *APIError
	var transportErr *TransportError
	if errors.As(err, &apiErr) || errors.As(err, &transportErr) {
		t.Errorf("error = %v, expected a decode failure", err)
	}
}

func TestRequestParams(t *testing.T) {
	south := South
	tests := []struct {
		name     string
		params   url.Values
		expected string
	}{
		{
			name:     "arrivals defaults",
			params:   ArrivalsRequest{Station: catalog.StopFor(catalog.TempleUniversity)}.Params(),
			expected: "station=Temple+University",
		},
		{
			name: "arrivals with results and direction",
			params: ArrivalsRequest{
				Station:   catalog.StopFor(catalog.Gray30thStreet),
				Results:   2,
				Direction: &south,
			}.Params(),
			expected: "direction=S&results=2&station=Gray+30th+Street",
		},
		{
			name: "next to arrive with results",
			params: NextToArriveRequest{
				From:    catalog.StopFor(catalog.SuburbanStation),
				To:      catalog.StopFor(catalog.Malvern),
				Results: 3,
			}.Params(),
			expected: "req1=Suburban+Station&req2=Malvern&req3=3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.params.Encode(); got != tt.expected {
				t.Errorf("Encode() = %q, expected %q", got, tt.expected)
			}
		})
	}
}
