package septa

import (
	"encoding/json"
	"errors"
)

const errorKey = "error"

// Response is the outcome of decoding one payload: either the decoded value
// or the message from the upstream error envelope.
type Response[T any] struct {
	Value T
	// Failure is set when the payload was an upstream error envelope.
	Failure *APIError
}

// OK reports whether the payload decoded as a success.
func (r Response[T]) OK() bool {
	return r.Failure == nil
}

// Result returns the value, or the *APIError for a failed response.
func (r Response[T]) Result() (T, error) {
	if r.Failure != nil {
		var zero T
		return zero, r.Failure
	}
	return r.Value, nil
}

// Discriminate decodes data with decodeSuccess and, if that fails, tries the
// error envelope: an array of objects with exactly one carrying an "error"
// key. If neither matches, the success decoder's error is returned.
func Discriminate[T any](data []byte, decodeSuccess func([]byte) (T, error)) (Response[T], error) {
	value, successErr := decodeSuccess(data)
	if successErr == nil {
		return Response[T]{Value: value}, nil
	}

	message, err := decodeErrorEnvelope(data)
	if err != nil {
		return Response[T]{}, successErr
	}
	return Response[T]{Failure: &APIError{Message: message}}, nil
}

var (
	errNoErrorElement = errors.New("expected an error")
	errMultipleErrors = errors.New("expected only one error")
)

// decodeErrorEnvelope reads [{"error": "..."}]. Elements before the one
// carrying the error are tolerated; any element after it is not.
func decodeErrorEnvelope(data []byte) (string, error) {
	var elements []map[string]string
	if err := json.Unmarshal(data, &elements); err != nil {
		return "", err
	}

	var message *string
	for _, element := range elements {
		if message != nil {
			return "", errMultipleErrors
		}
		if text, ok := element[errorKey]; ok {
			message = &text
		}
	}

	if message == nil {
		return "", errNoErrorElement
	}
	return *message, nil
}

// DecodeTrains decodes a TrainView payload.
func DecodeTrains(data []byte) (Response[[]Train], error) {
	return Discriminate(data, decodeList[Train])
}

// DecodeArrivalsResponse decodes an Arrivals payload.
func DecodeArrivalsResponse(data []byte) (Response[ArrivalsResult], error) {
	return Discriminate(data, DecodeArrivals)
}

// DecodeNextToArrive decodes a NextToArrive payload.
func DecodeNextToArrive(data []byte) (Response[[]NextToArrive], error) {
	return Discriminate(data, decodeList[NextToArrive])
}

// DecodeRailSchedule decodes an RRSchedules payload.
func DecodeRailSchedule(data []byte) (Response[[]ScheduleStop], error) {
	return Discriminate(data, decodeList[ScheduleStop])
}
