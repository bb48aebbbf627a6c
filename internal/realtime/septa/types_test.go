package septa

import (
	"errors"
	"reflect"
	"testing"

	"github.com/mini-septa/poller/internal/septa/catalog"
	"github.com/mini-septa/poller/internal/septa/decode"
)

const trainViewPayload = `
[
	{
		"lat":"39.954174265",
		"lon":"-75.16763361",
		"trainno":"2333",
		"service":"LOCAL",
		"dest":"Wawa",
		"currentstop":"Suburban Station",
		"nextstop":"Gray 30th Street",
		"line":"Media\/Wawa",
		"consist":"872,871,858,857",
		"heading":189.8775840187919,
		"late":0,
		"SOURCE":"Norristown",
		"TRACK":"",
		"TRACK_CHANGE":""
	},
	{
		"lat":"40.200600166667",
		"lon":"-75.270441",
		"trainno":"2530",
		"service":"LOCAL",
		"dest":"Lansdale",
		"currentstop":"Gwynedd Valley",
		"nextstop":"North Wales",
		"line":"Lansdale\/Doylestown",
		"consist":"415,366,367,126,125",
		"heading":326.98421204774684,
		"late":0,
		"SOURCE":"Newark",
		"TRACK":"",
		"TRACK_CHANGE":""
	},
	{
		"lat":"39.953094545",
		"lon":"-75.162311045",
		"trainno":"3236",
		"service":"LOCAL",
		"dest":"Norristown",
		"currentstop":"Suburban Station",
		"nextstop":"Jefferson Station",
		"line":"Manayunk\/Norristown",
		"consist":"705,716,861,862",
		"heading":101.50453615740082,
		"late":0,
		"SOURCE":"Wawa",
		"TRACK":"1A",
		"TRACK_CHANGE":""
	}
]`

const trainViewDisabled = `
[
	{
		"error": "We apologize for the inconvenience, but we are experiencing difficulties at this time.  TrainView has been disabled."
	}
]`

func TestDecodeTrains(t *testing.T) {
	resp, err := DecodeTrains([]byte(trainViewPayload))
	if err != nil {
		t.Fatalf("DecodeTrains failed: %v", err)
	}
	trains, err := resp.Result()
	if err != nil {
		t.Fatalf("Result failed: %v", err)
	}
	if len(trains) != 3 {
		t.Fatalf("decoded %d trains, expected 3", len(trains))
	}

	tests := []struct {
		name    string
		train   Train
		number  string
		line    catalog.Line
		dest    catalog.StopCode
		current catalog.StopCode
		next    catalog.StopCode
		source  catalog.StopCode
		consist []int
		heading float64
		track   string
	}{
		{
			name: "media wawa", train: trains[0], number: "2333", line: catalog.LineMediaWawa,
			dest: catalog.Wawa, current: catalog.SuburbanStation, next: catalog.Gray30thStreet,
			source: catalog.NorristownTC, consist: []int{872, 871, 858, 857}, heading: 189.8775840187919,
		},
		{
			name: "lansdale doylestown", train: trains[1], number: "2530", line: catalog.LineLansdaleDoylestown,
			dest: catalog.Lansdale, current: catalog.GwyneddValley, next: catalog.NorthWales,
			source: catalog.Newark, consist: []int{415, 366, 367, 126, 125}, heading: 326.98421204774684,
		},
		{
			name: "manayunk norristown", train: trains[2], number: "3236", line: catalog.LineManayunkNorristown,
			dest: catalog.NorristownTC, current: catalog.SuburbanStation, next: catalog.JeffersonStation,
			source: catalog.Wawa, consist: []int{705, 716, 861, 862}, heading: 101.50453615740082, track: "1A",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := tt.train
			if tr.TrainNumber != tt.number {
				t.Errorf("TrainNumber = %q, expected %q", tr.TrainNumber, tt.number)
			}
			if tr.Line != tt.line {
				t.Errorf("Line = %v, expected %v", tr.Line, tt.line)
			}
			if tr.Service != catalog.ServiceLocal {
				t.Errorf("Service = %q", tr.Service)
			}
			if tr.Destination.Code != tt.dest || tr.CurrentStop.Code != tt.current ||
				tr.NextStop.Code != tt.next || tr.Source.Code != tt.source {
				t.Errorf("stops = %v/%v/%v/%v", tr.Destination, tr.CurrentStop, tr.NextStop, tr.Source)
			}
			if !reflect.DeepEqual(tr.Consist, tt.consist) {
				t.Errorf("Consist = %v, expected %v", tr.Consist, tt.consist)
			}
			if tr.Heading == nil || *tr.Heading != tt.heading {
				t.Errorf("Heading = %v, expected %v", tr.Heading, tt.heading)
			}
			if tr.Late == nil || *tr.Late != 0 {
				t.Errorf("Late = %v, expected 0", tr.Late)
			}
			if tr.Track != tt.track || tr.TrackChange != "" {
				t.Errorf("Track/TrackChange = %q/%q", tr.Track, tr.TrackChange)
			}
		})
	}

	if trains[0].Latitude != 39.954174265 || trains[0].Longitude != -75.16763361 {
		t.Errorf("position = %v,%v", trains[0].Latitude, trains[0].Longitude)
	}
}

func TestDecodeTrains_ErrorEnvelope(t *testing.T) {
	resp, err := DecodeTrains([]byte(trainViewDisabled))
	if err != nil {
		t.Fatalf("DecodeTrains failed: %v", err)
	}
	if resp.OK() {
		t.Fatal("expected an error response")
	}

	_, err = resp.Result()
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("Result error = %v, expected *APIError", err)
	}
	expected := "We apologize for the inconvenience, but we are experiencing difficulties at this time.  TrainView has been disabled."
	if apiErr.Message != expected {
		t.Errorf("Message = %q", apiErr.Message)
	}
}

func TestDiscriminate(t *testing.T) {
	tests := []struct {
		name        string
		payload     string
		wantFailure string
		wantErr     bool
	}{
		{name: "empty list is success", payload: `[]`},
		{name: "single error", payload: `[{"error":"down"}]`, wantFailure: "down"},
		{name: "error after other elements", payload: `[{"note":"x"},{"error":"down"}]`, wantFailure: "down"},
		{name: "two errors", payload: `[{"error":"a"},{"error":"b"}]`, wantErr: true},
		{name: "element after error", payload: `[{"error":"a"},{"note":"x"}]`, wantErr: true},
		{name: "not json", payload: `<html>`, wantErr: true},
		{name: "object", payload: `{"error":"down"}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := DecodeNextToArrive([]byte(tt.payload))
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected an error, got %+v", resp)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.wantFailure == "" {
				if !resp.OK() {
					t.Errorf("expected success, got failure %q", resp.Failure.Message)
				}
				return
			}
			if resp.OK() || resp.Failure.Message != tt.wantFailure {
				t.Errorf("Failure = %+v, expected %q", resp.Failure, tt.wantFailure)
			}
		})
	}
}

func TestDecodeTrains_FieldErrors(t *testing.T) {
	tests := []struct {
		name      string
		payload   string
		wantField string
	}{
		{
			name:      "missing trainno",
			payload:   `[{"lat":"1","lon":"2"}]`,
			wantField: "[0].trainno",
		},
		{
			name:      "unknown line",
			payload:   `[{"lat":"1","lon":"2","trainno":"1","service":"LOCAL","dest":"Wawa","currentstop":"Wawa","nextstop":"Wawa","line":"Broad Street Line"}]`,
			wantField: "[0].line",
		},
		{
			name:      "bad latitude",
			payload:   `[{"lat":"north","lon":"2"}]`,
			wantField: "[0].lat",
		},
		{
			name:      "null string",
			payload:   `[{"lat":"1","lon":"2","trainno":null}]`,
			wantField: "[0].trainno",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeTrains([]byte(tt.payload))
			var de *decode.Error
			if !errors.As(err, &de) {
				t.Fatalf("error = %v, expected *decode.Error", err)
			}
			if de.Field != tt.wantField {
				t.Errorf("Field = %q, expected %q", de.Field, tt.wantField)
			}
		})
	}
}

func TestDecodeTrains_OptionalNumbers(t *testing.T) {
	payload := `[{
		"lat":"39.95","lon":"-75.16","trainno":"9999","service":"EXPRESS",
		"dest":"Atlantis","currentstop":"Suburban Station","nextstop":"Jefferson",
		"line":"Paoli/Thorndale","consist":"","heading":null,
		"SOURCE":"Thorndale","TRACK":"","TRACK_CHANGE":""
	}]`

	resp, err := DecodeTrains([]byte(payload))
	if err != nil {
		t.Fatalf("DecodeTrains failed: %v", err)
	}
	tr := resp.Value[0]
	if tr.Heading != nil || tr.Late != nil {
		t.Errorf("Heading/Late = %v/%v, expected nil", tr.Heading, tr.Late)
	}
	if len(tr.Consist) != 0 {
		t.Errorf("Consist = %v, expected empty", tr.Consist)
	}
	if tr.Destination.Recognized() || tr.Destination.Raw != "Atlantis" {
		t.Errorf("Destination = %+v, expected unrecognized Atlantis", tr.Destination)
	}
	if tr.Service != catalog.ServiceExpress {
		t.Errorf("Service = %q", tr.Service)
	}
}

func TestDecodeNextToArrive(t *testing.T) {
	payload := `
	[
		{
			"orig_train": "2565",
			"orig_line": "Paoli/Thorndale",
			"orig_departure_time": "11:49PM",
			"orig_arrival_time": "12:33AM",
			"orig_delay": "On time",
			"isdirect": "true"
		}
	]`

	resp, err := DecodeNextToArrive([]byte(payload))
	if err != nil {
		t.Fatalf("DecodeNextToArrive failed: %v", err)
	}
	if len(resp.Value) != 1 {
		t.Fatalf("decoded %d connections, expected 1", len(resp.Value))
	}

	n := resp.Value[0]
	if n.OriginTrain != "2565" || n.OriginLine != catalog.LinePaoliThorndale {
		t.Errorf("train/line = %q/%v", n.OriginTrain, n.OriginLine)
	}
	if n.OriginDepartureTime != decode.NewTimeOfDay(23, 49, 0) {
		t.Errorf("OriginDepartureTime = %v", n.OriginDepartureTime)
	}
	if n.OriginArrivalTime != decode.NewTimeOfDay(0, 33, 0) {
		t.Errorf("OriginArrivalTime = %v", n.OriginArrivalTime)
	}
	if n.OriginDelay != "On time" || !n.IsDirect {
		t.Errorf("delay/direct = %q/%v", n.OriginDelay, n.IsDirect)
	}
}

func TestDecodeRailSchedule(t *testing.T) {
	payload := `[
		{"station": "Wawa", "sched_tm": "9:08 pm", "est_tm": "9:09 pm", "act_tm": "9:09 pm"},
		{"station": "Elwyn Station", "sched_tm": "9:13 pm", "est_tm": "9:14 pm", "act_tm": "9:14 pm"},
		{"station": "Moylan-Rose Valley", "sched_tm": "9:18 pm", "est_tm": "9:18 pm", "act_tm": "9:18 pm"},
		{"station": "Fernwood-Yeadon", "sched_tm": "9:39 pm", "est_tm": "9:37 pm", "act_tm": "9:37 pm"},
		{"station": "49th Street", "sched_tm": "9:44 pm", "est_tm": "9:43 pm", "act_tm": "na"},
		{"station": "Jefferson Station", "sched_tm": "10:02 pm", "est_tm": "10:00 pm", "act_tm": "na"}
	]`

	resp, err := DecodeRailSchedule([]byte(payload))
	if err != nil {
		t.Fatalf("DecodeRailSchedule failed: %v", err)
	}
	stops := resp.Value
	if len(stops) != 6 {
		t.Fatalf("decoded %d stops, expected 6", len(stops))
	}

	if stops[1].Station.Code != catalog.Elwyn {
		t.Errorf("Station = %v, expected Elwyn", stops[1].Station)
	}
	if id, err := stops[1].Station.ID(); err != nil || id != 90301 {
		t.Errorf("Elwyn ID = %d, %v", id, err)
	}
	if stops[2].Station.Code != catalog.MoylanRoseValley || stops[3].Station.Code != catalog.FernwoodYeadon {
		t.Errorf("stations = %v, %v", stops[2].Station, stops[3].Station)
	}

	first := stops[0]
	if first.ScheduledTime != decode.NewTimeOfDay(21, 8, 0) || first.EstimatedTime != decode.NewTimeOfDay(21, 9, 0) {
		t.Errorf("times = %v/%v", first.ScheduledTime, first.EstimatedTime)
	}
	if first.ActualTime == nil || *first.ActualTime != decode.NewTimeOfDay(21, 9, 0) {
		t.Errorf("ActualTime = %v", first.ActualTime)
	}

	if stops[4].ActualTime != nil {
		t.Errorf("ActualTime = %v, expected nil for na", stops[4].ActualTime)
	}
	if stops[5].ScheduledTime != decode.NewTimeOfDay(22, 2, 0) {
		t.Errorf("ScheduledTime = %v", stops[5].ScheduledTime)
	}
}
